// Package bot wires the domain services onto the Telegram transport:
// commands, menu callbacks, flow routing, and the manager approval
// surface.
package bot

import (
	"context"
	"log/slog"
	"sync"

	"github.com/benuhq/benubot/core/bootstrap"
	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/commands"
	"github.com/benuhq/benubot/core/telegram/helpers"
	"github.com/benuhq/benubot/core/telegram/middleware"
	"github.com/benuhq/benubot/internal/approval"
	"github.com/benuhq/benubot/internal/catalog"
	"github.com/benuhq/benubot/internal/config"
	"github.com/benuhq/benubot/internal/flow"
	"github.com/benuhq/benubot/internal/inference"
	"github.com/benuhq/benubot/internal/sheets"

	tele "gopkg.in/telebot.v4"
)

// Callback namespaces carried in inline-button data.
const (
	cbLang    = "lang"
	cbCmd     = "cmd"
	cbFilter  = "filter"
	cbModule  = "module"
	cbQuiz    = "quiz"
	cbProfile = "profile"
	cbCat     = "cat"
	cbDesc    = "desc"
	cbTrain   = "train"
	cbPage    = "page"
	cbApprove = "approve"
	cbReject  = "reject"
)

// App owns the bot's services and registers its handlers.
type App struct {
	cfg    *config.Config
	rt     *bootstrap.Runtime
	store  sheets.Store
	engine *flow.Engine
	queue  *approval.Queue
	infer  *inference.Client

	catMu sync.RWMutex
	cat   *catalog.Catalog
}

// New assembles the application on top of the transport runtime.
func New(cfg *config.Config, rt *bootstrap.Runtime, store sheets.Store) *App {
	return &App{
		cfg:    cfg,
		rt:     rt,
		store:  store,
		engine: flow.NewEngine(),
		queue:  approval.New(store, cfg.Manager.ChatID),
		infer:  inference.New(cfg.Inference.URL, cfg.Inference.APIKey),
		cat:    catalog.Default(),
	}
}

// catalog returns the current content snapshot.
func (a *App) catalog() *catalog.Catalog {
	a.catMu.RLock()
	defer a.catMu.RUnlock()
	return a.cat
}

// adoptCategory swaps in a new catalog version with the category added.
func (a *App) adoptCategory(name string) *catalog.Catalog {
	a.catMu.Lock()
	defer a.catMu.Unlock()
	a.cat = a.cat.WithCategory(name)
	logger.SVCCatalog.LogAttrs(context.Background(), slog.LevelInfo, "catalog.category.adopted",
		slog.String("category", name),
		slog.Int("version", a.cat.Version()),
	)
	return a.cat
}

// Register installs all commands and callbacks on the runtime registry.
func (a *App) Register() {
	reg := a.rt.Registry

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Begin and pick a language",
	})
	reg.RegisterCommand("/start_over", commands.Command{
		Handler:     a.handleStartOver,
		Description: "Forget everything and begin again",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     middleware.ManagerOnly(a.cfg.Manager.ChatID, a.handleStats),
		Description: "Show process counters",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbLang, a.cbSelectLanguage)
	_ = reg.RegisterCallback(cbCmd, a.cbMenuCommand)
	_ = reg.RegisterCallback(cbFilter, a.cbResourceFilter)
	_ = reg.RegisterCallback(cbModule, a.cbOpenModule)
	_ = reg.RegisterCallback(cbQuiz, a.cbQuizAnswer)
	_ = reg.RegisterCallback(cbProfile, a.cbProfileField)
	_ = reg.RegisterCallback(cbCat, a.cbCategory)
	_ = reg.RegisterCallback(cbDesc, a.cbDescription)
	_ = reg.RegisterCallback(cbTrain, a.cbTrainingPick)
	_ = reg.RegisterCallback(cbPage, a.cbNetworkPage)
	_ = reg.RegisterCallback(cbApprove, a.cbApprove)
	_ = reg.RegisterCallback(cbReject, a.cbReject)

	reg.SetTextFallback(a.onText)
	reg.SetCallbackNotFound(func(c tele.Context) error {
		b := a.msgs(chatOf(c))
		_ = c.Respond(&tele.CallbackResponse{Text: b.StaleButton})
		return nil
	})
}

func ctxOf(c tele.Context) context.Context {
	return helpers.Ctx(c)
}

func chatOf(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}

func senderOf(c tele.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
