package bot

import (
	"fmt"
	"strconv"

	"github.com/benuhq/benubot/core/telegram/helpers"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/core/telegram/sender"
	"github.com/benuhq/benubot/internal/flow"
	"github.com/benuhq/benubot/internal/i18n"

	tele "gopkg.in/telebot.v4"
)

// deco applies the house style around a message.
func deco(text string) string {
	return "🌟 *" + text + "* 🌟"
}

func (a *App) msgs(chatID int64) *i18n.Bundle {
	return i18n.Messages(a.engine.Language(chatID))
}

func backRow(b *i18n.Bundle) []keyboard.Button {
	return []keyboard.Button{{Text: b.BackToMenu, Unique: cbCmd, Payload: "main_menu"}}
}

func cancelRow(b *i18n.Bundle) []keyboard.Button {
	return []keyboard.Button{{Text: b.CancelButton, Unique: cbCmd, Payload: "cancel"}}
}

// keyboardFor maps an engine keyboard hint onto inline buttons.
func (a *App) keyboardFor(kind flow.Keyboard, b *i18n.Bundle) *tele.ReplyMarkup {
	switch kind {
	case flow.KeyboardTrainings:
		var row []keyboard.Button
		for _, t := range a.catalog().Upcoming() {
			row = append(row, keyboard.Button{Text: t.Name, Unique: cbTrain, Payload: t.Name})
		}
		return keyboard.Rows(row, backRow(b))

	case flow.KeyboardCategories:
		return keyboard.Inline(2, a.categoryButtons(cbCat),
			[]keyboard.Button{{Text: b.DoneButton, Unique: cbCat, Payload: "done"}},
			backRow(b),
		)

	case flow.KeyboardDescriptions:
		return keyboard.Inline(2, a.categoryButtons(cbDesc),
			[]keyboard.Button{{Text: "Other", Unique: cbDesc, Payload: "Other"}},
			cancelRow(b),
		)

	case flow.KeyboardProfileFields:
		return keyboard.Rows(
			[]keyboard.Button{
				{Text: "Name", Unique: cbProfile, Payload: "name"},
				{Text: "Phone", Unique: cbProfile, Payload: "phone"},
			},
			[]keyboard.Button{
				{Text: "Email", Unique: cbProfile, Payload: "email"},
				{Text: "Company", Unique: cbProfile, Payload: "company"},
			},
			backRow(b),
		)
	}
	return keyboard.Rows(backRow(b))
}

// categoryButtons lists the current catalog categories under one
// callback namespace.
func (a *App) categoryButtons(unique string) []keyboard.Button {
	cats := a.catalog().Categories()
	btns := make([]keyboard.Button, 0, len(cats))
	for _, cat := range cats {
		btns = append(btns, keyboard.Button{Text: cat, Unique: unique, Payload: cat})
	}
	return btns
}

// renderResult sends the next prompt of a flow, or finishes it.
func (a *App) renderResult(c tele.Context, res flow.Result) error {
	if res.Done != nil {
		return a.finishFlow(c, res.Done)
	}
	chatID := chatOf(c)
	b := a.msgs(chatID)
	text := deco(res.Prompt(b))
	return c.Send(text, a.keyboardFor(res.Keyboard, b), tele.ModeMarkdown)
}

func quizKeyboard(options []string, b *i18n.Bundle) *tele.ReplyMarkup {
	var rows [][]keyboard.Button
	for _, opt := range options {
		rows = append(rows, []keyboard.Button{{Text: opt, Unique: cbQuiz, Payload: opt}})
	}
	rows = append(rows, backRow(b))
	return keyboard.Rows(rows...)
}

func decisionKeyboard(regID string) *tele.ReplyMarkup {
	return keyboard.Rows([]keyboard.Button{
		{Text: "✅ Approve", Unique: cbApprove, Payload: regID},
		{Text: "❌ Reject", Unique: cbReject, Payload: regID},
	})
}

func quizQuestionText(b *i18n.Bundle, num int, prompt string) string {
	return deco(fmt.Sprintf(b.QuizQuestion, num, prompt))
}

func chatRecipient(chatID int64) tele.Recipient {
	return recipient(strconv.FormatInt(chatID, 10))
}

type recipient string

func (r recipient) Recipient() string { return string(r) }

// senderJob builds an async outbound job for the dispatcher.
func senderJob(chatID int64, text string, markup *tele.ReplyMarkup) sender.Job {
	job := sender.Job{To: chatRecipient(chatID), Text: text}
	if markup != nil {
		job.Opts = append(job.Opts, markup)
	}
	return job
}

func answerCallback(c tele.Context) {
	helpers.Answer(c, "")
}
