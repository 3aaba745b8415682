package bot

import (
	"fmt"
	"strings"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/helpers"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/flow"
	"github.com/benuhq/benubot/internal/i18n"

	tele "gopkg.in/telebot.v4"
)

// handleStart greets in both languages and offers the choice.
func (a *App) handleStart(c tele.Context) error {
	markup := keyboard.Rows([]keyboard.Button{
		{Text: "English", Unique: cbLang, Payload: string(domain.LangEnglish)},
		{Text: "አማርኛ", Unique: cbLang, Payload: string(domain.LangAmharic)},
	})
	en := i18n.Messages(domain.LangEnglish)
	am := i18n.Messages(domain.LangAmharic)
	text := deco(en.Welcome) + "\n" + en.ChooseLanguage + "\n\n" +
		am.Welcome + "\n" + am.ChooseLanguage
	return c.Send(text, markup, tele.ModeMarkdown)
}

// handleStartOver wipes the conversation and restarts.
func (a *App) handleStartOver(c tele.Context) error {
	a.engine.Reset(chatOf(c))
	return a.handleStart(c)
}

// handleStats reports process counters. Access is restricted to the
// manager chat at registration time.
func (a *App) handleStats(c tele.Context) error {
	snap := a.rt.Counters.Snapshot()
	text := fmt.Sprintf(
		"messages: %d\ncallbacks: %d\nerrors: %d\npending approvals: %d\ncatalog version: %d\nhandlers: %s",
		snap.Messages, snap.Callbacks, snap.Errors,
		a.queue.PendingCount(), a.catalog().Version(),
		strings.Join(a.rt.Registry.ListCallbacks(), " "),
	)
	return c.Send(text)
}

// cbSelectLanguage stores the choice and opens the personal
// registration flow, the first thing a new user walks through.
func (a *App) cbSelectLanguage(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	lang := domain.ParseLanguage(callbacks.PayloadOf(c.Callback()))
	a.engine.SetLanguage(chatID, lang)

	res, err := a.engine.Start(chatID, flow.KindPersonal, nil)
	if err != nil {
		return err
	}
	b := a.msgs(chatID)
	return c.Edit(deco(res.Prompt(b)), keyboard.Rows(cancelRow(b)), tele.ModeMarkdown)
}

// showMenu renders the main option grid.
func (a *App) showMenu(c tele.Context) error {
	b := a.msgs(chatOf(c))
	markup := keyboard.Rows(
		[]keyboard.Button{
			{Text: b.Ask, Unique: cbCmd, Payload: "ask"},
			{Text: b.Resources, Unique: cbCmd, Payload: "resources"},
		},
		[]keyboard.Button{
			{Text: b.TrainingEvents, Unique: cbCmd, Payload: "training_events"},
			{Text: b.Networking, Unique: cbCmd, Payload: "networking"},
		},
		[]keyboard.Button{
			{Text: b.News, Unique: cbCmd, Payload: "news"},
			{Text: b.Contact, Unique: cbCmd, Payload: "contact"},
		},
		[]keyboard.Button{
			{Text: b.SubscribeNews, Unique: cbCmd, Payload: "subscribenews"},
			{Text: b.LearnStartupSkills, Unique: cbCmd, Payload: "learn_startup_skills"},
		},
		[]keyboard.Button{
			{Text: b.UpdateProfile, Unique: cbCmd, Payload: "update_profile"},
		},
	)
	return helpers.EditOrSend(c, deco(b.Options), markup, tele.ModeMarkdown)
}

// cbMenuCommand dispatches the cmd namespace.
func (a *App) cbMenuCommand(c tele.Context) error {
	answerCallback(c)
	switch callbacks.PayloadOf(c.Callback()) {
	case "main_menu":
		return a.showMenu(c)
	case "cancel":
		a.engine.Cancel(chatOf(c))
		return a.showMenu(c)
	case "start_over":
		return a.handleStartOver(c)
	case "ask", "ask_again":
		return a.startAsk(c)
	case "resources":
		return a.showResources(c, filterAll)
	case "all_resources":
		return a.showResources(c, filterAll)
	case "training_events":
		return a.showTrainingEvents(c)
	case "networking":
		return a.showNetworking(c)
	case "network_list":
		return a.showNetworkList(c, 0)
	case "news":
		return a.showNews(c)
	case "contact":
		return a.showContact(c)
	case "subscribenews":
		return a.subscribeNews(c)
	case "learn_startup_skills":
		return a.showModules(c)
	case "update_profile":
		return a.startProfileEdit(c)
	case "signup":
		return a.startSignup(c)
	case "register":
		return a.startCompanyRegistration(c)
	case "suggest_category":
		return a.startCategorySuggestion(c)
	}
	b := a.msgs(chatOf(c))
	return c.Send(deco(b.Options), a.keyboardFor(flow.KeyboardNone, b), tele.ModeMarkdown)
}

func formatThanks(tmpl, arg string) string {
	return deco(fmt.Sprintf(tmpl, arg))
}
