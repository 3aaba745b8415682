package flow

import (
	"errors"

	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/i18n"
)

// Kind names an active flow. A chat runs at most one flow at a time.
type Kind string

const (
	KindNone     Kind = "none"
	KindSignup   Kind = "signup"
	KindPersonal Kind = "register-personal"
	KindCompany  Kind = "register-company"
	KindQuiz     Kind = "quiz"
	KindProfile  Kind = "profile-edit"
	KindSurvey   Kind = "survey"
	KindAsk      Kind = "ask"
	KindSuggest  Kind = "suggest-category"
)

// ProfileField selects which registrant cell a profile edit overwrites.
type ProfileField string

const (
	ProfileName    ProfileField = "name"
	ProfilePhone   ProfileField = "phone"
	ProfileEmail   ProfileField = "email"
	ProfileCompany ProfileField = "company"
)

// SurveyStage marks which satisfaction survey a rating belongs to.
type SurveyStage string

const (
	SurveyNone SurveyStage = ""
	SurveyMid  SurveyStage = "mid"
	SurveyEnd  SurveyStage = "end"
)

// Keyboard tells the caller which inline keyboard to render with a
// prompt. The engine never builds transport widgets itself.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardTrainings
	KeyboardCategories
	KeyboardDescriptions
	KeyboardProfileFields
)

// Step is one prompt/response pair in a flow sequence.
type Step struct {
	Field    string
	Prompt   i18n.Text
	Invalid  i18n.Text
	Validate func(string) bool
	Assign   func(*conversation, string)
	Keyboard Keyboard
}

// Completion carries a finished flow's data to the caller. Exactly the
// fields matching Kind are set.
type Completion struct {
	Kind   Kind
	ChatID int64
	Lang   domain.Language

	Signup   *domain.SignupDraft
	Personal *domain.PersonalDraft
	Company  *domain.CompanyDraft

	ProfileField ProfileField
	ProfileValue string

	SurveyStage  SurveyStage
	SurveyRating int

	Question string
}

// Result is the outcome of one Advance call.
type Result struct {
	// Prompt to show next: either the following step's prompt, or the
	// repeated current step's format hint when Invalid is set.
	Prompt   i18n.Text
	Keyboard Keyboard
	Invalid  bool
	Done     *Completion
}

// Engine errors.
var (
	ErrNoActiveFlow  = errors.New("flow: no active flow for chat")
	ErrNoActiveQuiz  = errors.New("flow: no active quiz for chat")
	ErrPrerequisites = errors.New("flow: module prerequisites not met")
	ErrUnknownModule = errors.New("flow: unknown module id")
	ErrWrongStep     = errors.New("flow: input does not match current step")
)
