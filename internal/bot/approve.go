package bot

import (
	"errors"
	"fmt"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/approval"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/i18n"

	tele "gopkg.in/telebot.v4"
)

// cbApprove finalizes a pending registration. The queue enforces both
// the manager check and replay idempotency.
func (a *App) cbApprove(c tele.Context) error {
	answerCallback(c)
	id := callbacks.PayloadOf(c.Callback())

	reg, err := a.queue.Approve(ctxOf(c), id, senderOf(c))
	if err != nil {
		return a.decisionError(c, err)
	}

	switch reg.Kind {
	case domain.KindPersonal:
		_ = c.Edit(fmt.Sprintf("✅ Approved: %s registered!", reg.DisplayName()))
		rb := i18n.Messages(reg.Language)
		a.notifyChat(reg.ChatID, "🌟 "+rb.RegApproved+" 🌟", keyboard.Rows(backRow(rb)))

	case domain.KindCompany:
		_ = c.Edit(fmt.Sprintf("✅ Approved: %s added to network!", reg.DisplayName()))
		rb := i18n.Messages(reg.Language)
		markup := keyboard.Rows(
			[]keyboard.Button{
				backRow(rb)[0],
				{Text: "📋 See Network List", Unique: cbCmd, Payload: "network_list"},
			},
		)
		a.notifyChat(reg.ChatID, "🌟 "+fmt.Sprintf(rb.RegisterThanks, reg.DisplayName())+" 🌟", markup)

	case domain.KindCategory:
		cat := a.adoptCategory(reg.Category)
		_ = c.Edit(fmt.Sprintf("✅ Approved: category %q added (catalog v%d).", reg.Category, cat.Version()))
		rb := i18n.Messages(reg.Language)
		a.notifyChat(reg.ChatID, "🌟 "+rb.CatApproved+" 🌟", keyboard.Rows(backRow(rb)))
	}
	return nil
}

// cbReject drops a pending registration and tells the requester.
func (a *App) cbReject(c tele.Context) error {
	answerCallback(c)
	id := callbacks.PayloadOf(c.Callback())

	reg, err := a.queue.Reject(ctxOf(c), id, senderOf(c))
	if err != nil {
		return a.decisionError(c, err)
	}

	_ = c.Edit(fmt.Sprintf("❌ Rejected: %s not added.", reg.DisplayName()))
	rb := i18n.Messages(reg.Language)
	a.notifyChat(reg.ChatID,
		"⚠️ "+fmt.Sprintf(rb.RegRejected, reg.DisplayName()),
		keyboard.Rows(backRow(rb)),
	)
	return nil
}

func (a *App) decisionError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, approval.ErrNotManager):
		return c.Edit("⚠️ Only the manager can decide registrations.")
	case errors.Is(err, approval.ErrNotPending):
		return c.Edit("⚠️ Registration no longer pending.")
	}
	return err
}
