// Package flow drives the multi-step conversational forms. The engine
// owns per-chat state and decides what to prompt next; rendering and
// transport stay with the caller.
package flow

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/domain"
)

// conversation is the mutable per-chat state. It lives for the life of
// the process; an abandoned flow keeps it populated until Cancel.
type conversation struct {
	lang      domain.Language
	kind      Kind
	stepIdx   int
	prefilled map[string]bool

	signup       *domain.SignupDraft
	personal     *domain.PersonalDraft
	company      *domain.CompanyDraft
	profileField ProfileField
	profileValue string
	question     string
	surveyStage  SurveyStage
	surveyRating int

	quiz      *quizState
	completed map[int]bool
}

func (c *conversation) clearFlow() {
	c.kind = KindNone
	c.stepIdx = 0
	c.prefilled = nil
	c.signup = nil
	c.personal = nil
	c.company = nil
	c.profileField = ""
	c.profileValue = ""
	c.question = ""
	c.surveyStage = SurveyNone
	c.surveyRating = 0
	c.quiz = nil
}

// Engine holds all conversations keyed by chat id.
type Engine struct {
	mu    sync.Mutex
	convs map[int64]*conversation
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{convs: make(map[int64]*conversation)}
}

func (e *Engine) conv(chatID int64) *conversation {
	c, ok := e.convs[chatID]
	if !ok {
		c = &conversation{lang: domain.LangEnglish, kind: KindNone, completed: make(map[int]bool)}
		e.convs[chatID] = c
	}
	return c
}

// SetLanguage records the chat's language choice.
func (e *Engine) SetLanguage(chatID int64, lang domain.Language) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conv(chatID).lang = lang
}

// Language returns the chat's language, defaulting to English.
func (e *Engine) Language(chatID int64) domain.Language {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.conv(chatID).lang
}

// InFlow reports whether a flow is active, so the text router knows
// whether free text belongs to the engine.
func (e *Engine) InFlow(chatID int64) bool {
	return e.ActiveKind(chatID) != KindNone
}

// ActiveKind returns the chat's active flow kind, or KindNone.
func (e *Engine) ActiveKind(chatID int64) Kind {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.convs[chatID]
	if !ok {
		return KindNone
	}
	return c.kind
}

// Start resets any active flow and begins kind at its first step.
// Prefilled fields (for example a phone number already on record) are
// assigned up front and their steps skipped. The returned Result holds
// the first prompt to send.
func (e *Engine) Start(chatID int64, kind Kind, prefill map[string]string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.conv(chatID)
	c.clearFlow()
	c.kind = kind
	switch kind {
	case KindSignup:
		c.signup = &domain.SignupDraft{}
	case KindPersonal:
		c.personal = &domain.PersonalDraft{}
	case KindCompany:
		c.company = &domain.CompanyDraft{}
	}

	steps := stepsFor(kind)
	if len(steps) == 0 {
		c.clearFlow()
		return Result{}, ErrNoActiveFlow
	}

	if len(prefill) > 0 {
		c.prefilled = make(map[string]bool, len(prefill))
		for _, step := range steps {
			if v, ok := prefill[step.Field]; ok && v != "" && step.Assign != nil {
				step.Assign(c, v)
				c.prefilled[step.Field] = true
			}
		}
	}

	logger.SVCFlow.LogAttrs(context.Background(), slog.LevelInfo, "flow.started",
		slog.Int64("chat_id", chatID),
		slog.String("flow", string(kind)),
	)
	return e.promptAt(c, chatID, steps), nil
}

// promptAt returns the prompt for the current step, skipping prefilled
// steps, or completes the flow when none remain. Callers hold the lock.
func (e *Engine) promptAt(c *conversation, chatID int64, steps []Step) Result {
	for c.stepIdx < len(steps) && c.prefilled[steps[c.stepIdx].Field] {
		c.stepIdx++
	}
	if c.stepIdx < len(steps) {
		step := steps[c.stepIdx]
		return Result{Prompt: step.Prompt, Keyboard: step.Keyboard}
	}
	return Result{Done: e.complete(c, chatID)}
}

// Advance feeds one input to the active flow. Invalid input repeats the
// current step with a format hint and mutates nothing.
func (e *Engine) Advance(chatID int64, input string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.convs[chatID]
	if !ok || c.kind == KindNone {
		return Result{}, ErrNoActiveFlow
	}
	steps := stepsFor(c.kind)
	if c.stepIdx >= len(steps) {
		return Result{}, ErrWrongStep
	}

	step := steps[c.stepIdx]
	input = strings.TrimSpace(input)
	if step.Validate != nil && !step.Validate(input) {
		logger.SVCFlow.LogAttrs(context.Background(), slog.LevelDebug, "step.rejected",
			slog.Int64("chat_id", chatID),
			slog.String("flow", string(c.kind)),
			slog.String("field", step.Field),
		)
		return Result{Prompt: step.Invalid, Keyboard: step.Keyboard, Invalid: true}, nil
	}
	if step.Assign != nil {
		step.Assign(c, input)
	}
	c.stepIdx++
	return e.promptAt(c, chatID, steps), nil
}

func (e *Engine) complete(c *conversation, chatID int64) *Completion {
	done := &Completion{
		Kind:   c.kind,
		ChatID: chatID,
		Lang:   c.lang,

		Signup:   c.signup,
		Personal: c.personal,
		Company:  c.company,

		ProfileField: c.profileField,
		ProfileValue: c.profileValue,
		SurveyStage:  c.surveyStage,
		SurveyRating: c.surveyRating,
		Question:     c.question,
	}
	logger.SVCFlow.LogAttrs(context.Background(), slog.LevelInfo, "flow.completed",
		slog.Int64("chat_id", chatID),
		slog.String("flow", string(done.Kind)),
	)
	c.clearFlow()
	return done
}

// Cancel aborts the active flow and drops its partial data. Language
// and completed modules survive; Reset wipes those too.
func (e *Engine) Cancel(chatID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.convs[chatID]; ok {
		c.clearFlow()
	}
}

// Reset forgets everything about the chat.
func (e *Engine) Reset(chatID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.convs, chatID)
}

// AddCategory appends one category to the active company draft without
// advancing the step; the step repeats until Done.
func (e *Engine) AddCategory(chatID int64, category string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.convs[chatID]
	if !ok || c.kind != KindCompany || c.company == nil {
		return ErrNoActiveFlow
	}
	if stepsFor(c.kind)[c.stepIdx].Field != fieldCategories {
		return ErrWrongStep
	}
	c.company.Categories = append(c.company.Categories, category)
	return nil
}

// SelectProfileField fixes which cell the profile edit targets.
func (e *Engine) SelectProfileField(chatID int64, field ProfileField) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.convs[chatID]
	if !ok || c.kind != KindProfile {
		return ErrNoActiveFlow
	}
	switch field {
	case ProfileName, ProfilePhone, ProfileEmail, ProfileCompany:
		c.profileField = field
		return nil
	}
	return ErrWrongStep
}

// StartSurvey begins the satisfaction survey for the given stage.
func (e *Engine) StartSurvey(chatID int64, stage SurveyStage) (Result, error) {
	res, err := e.Start(chatID, KindSurvey, nil)
	if err != nil {
		return Result{}, err
	}
	e.mu.Lock()
	e.conv(chatID).surveyStage = stage
	e.mu.Unlock()
	return res, nil
}

// CompletedModules returns a copy of the chat's completed module ids.
func (e *Engine) CompletedModules(chatID int64) map[int]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.convs[chatID]
	if !ok {
		return map[int]bool{}
	}
	out := make(map[int]bool, len(c.completed))
	for id := range c.completed {
		out[id] = true
	}
	return out
}
