package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/flow"
	"github.com/benuhq/benubot/internal/sheets"

	tele "gopkg.in/telebot.v4"
)

// usersRowPrefill pulls phone and email from an existing Users row so
// returning users skip those steps.
func (a *App) usersRowPrefill(c tele.Context) map[string]string {
	chatID := chatOf(c)
	_, row, err := a.store.FindRow(ctxOf(c), sheets.Users, strconv.FormatInt(chatID, 10))
	if err != nil {
		return nil
	}
	prefill := make(map[string]string)
	if len(row) > 3 && row[3] != "" {
		prefill["phone"] = row[3]
	}
	if len(row) > 4 && row[4] != "" {
		prefill["email"] = row[4]
	}
	return prefill
}

func (a *App) startSignup(c tele.Context) error {
	res, err := a.engine.Start(chatOf(c), flow.KindSignup, a.usersRowPrefill(c))
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}

func (a *App) startCompanyRegistration(c tele.Context) error {
	res, err := a.engine.Start(chatOf(c), flow.KindCompany, a.usersRowPrefill(c))
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}

func (a *App) startProfileEdit(c tele.Context) error {
	res, err := a.engine.Start(chatOf(c), flow.KindProfile, nil)
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}

func (a *App) startAsk(c tele.Context) error {
	res, err := a.engine.Start(chatOf(c), flow.KindAsk, nil)
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}

func (a *App) startCategorySuggestion(c tele.Context) error {
	res, err := a.engine.Start(chatOf(c), flow.KindSuggest, nil)
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}

// onText routes free text to whichever flow is active.
func (a *App) onText(c tele.Context) error {
	chatID := chatOf(c)
	if !a.engine.InFlow(chatID) {
		return nil
	}
	if a.engine.ActiveKind(chatID) == flow.KindQuiz {
		return a.gradeQuizAnswer(c, c.Text())
	}
	res, err := a.engine.Advance(chatID, c.Text())
	if err != nil {
		if errors.Is(err, flow.ErrNoActiveFlow) {
			return nil
		}
		return err
	}
	return a.renderResult(c, res)
}

// cbTrainingPick answers the training-selection step of the signup flow.
func (a *App) cbTrainingPick(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	if a.engine.ActiveKind(chatID) != flow.KindSignup {
		return a.staleButton(c)
	}
	res, err := a.engine.Advance(chatID, callbacks.PayloadOf(c.Callback()))
	if err != nil {
		return a.staleButton(c)
	}
	return a.renderResult(c, res)
}

// cbCategory handles the add-one-then-Done category loop.
func (a *App) cbCategory(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	b := a.msgs(chatID)
	payload := callbacks.PayloadOf(c.Callback())

	if payload == "done" {
		res, err := a.engine.Advance(chatID, "done")
		if err != nil {
			return a.staleButton(c)
		}
		return a.renderResult(c, res)
	}

	if !a.catalog().HasCategory(payload) {
		return a.staleButton(c)
	}
	if err := a.engine.AddCategory(chatID, payload); err != nil {
		return a.staleButton(c)
	}
	text := deco(fmt.Sprintf(b.CatAdded, payload))
	return c.Edit(text, a.keyboardFor(flow.KeyboardCategories, b), tele.ModeMarkdown)
}

// cbDescription answers the description step of the personal flow; the
// Other button switches it to free text.
func (a *App) cbDescription(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	b := a.msgs(chatID)
	payload := callbacks.PayloadOf(c.Callback())

	if a.engine.ActiveKind(chatID) != flow.KindPersonal {
		return a.staleButton(c)
	}
	if payload == "Other" {
		return c.Edit(deco(b.DescriptionPrompt), keyboard.Rows(cancelRow(b)), tele.ModeMarkdown)
	}
	res, err := a.engine.Advance(chatID, payload)
	if err != nil {
		return a.staleButton(c)
	}
	return a.renderResult(c, res)
}

// cbProfileField narrows the profile edit to one field and prompts for
// the new value.
func (a *App) cbProfileField(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	b := a.msgs(chatID)

	field := flow.ProfileField(callbacks.PayloadOf(c.Callback()))
	if err := a.engine.SelectProfileField(chatID, field); err != nil {
		return a.staleButton(c)
	}
	var prompt string
	switch field {
	case flow.ProfileName:
		prompt = b.ProfileName
	case flow.ProfilePhone:
		prompt = b.ProfilePhone
	case flow.ProfileEmail:
		prompt = b.ProfileEmail
	case flow.ProfileCompany:
		prompt = b.ProfileCompany
	}
	return c.Send(deco(prompt), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
}

func (a *App) staleButton(c tele.Context) error {
	b := a.msgs(chatOf(c))
	return c.Send(deco(b.StaleButton), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
}

// finishFlow persists or parks a completed flow and confirms to the
// user.
func (a *App) finishFlow(c tele.Context, done *flow.Completion) error {
	b := a.msgs(done.ChatID)
	ctx := ctxOf(c)
	now := time.Now().UTC()

	switch done.Kind {
	case flow.KindSignup:
		s := done.Signup
		row := []string{s.Username, s.Name, s.Phone, s.Training, now.Format(time.RFC3339Nano)}
		if err := a.store.AppendRow(ctx, sheets.TrainingSignups, row); err != nil {
			return fmt.Errorf("store signup: %w", err)
		}
		a.notifyManager(fmt.Sprintf("New Training Signup: %s (%s) for %s", s.Name, s.Phone, s.Training), nil)
		return c.Send(formatThanks(b.SignupThanks, s.Name), keyboard.Rows(backRow(b)), tele.ModeMarkdown)

	case flow.KindPersonal:
		reg := domain.PendingRegistration{
			ChatID:    done.ChatID,
			Kind:      domain.KindPersonal,
			Language:  done.Lang,
			Submitted: now,
			Personal:  done.Personal,
		}
		id := a.queue.Enqueue(reg)
		p := done.Personal
		a.notifyManager(fmt.Sprintf(
			"New User Registration Pending Approval:\nName: %s\nPhone: %s\nEmail: %s\nCompany: %s\nDescription: %s",
			p.Name, p.Phone, p.Email, p.Company, p.Description,
		), decisionKeyboard(id))
		return c.Send(deco(b.RegSubmitted), keyboard.Rows(backRow(b)), tele.ModeMarkdown)

	case flow.KindCompany:
		reg := domain.PendingRegistration{
			ChatID:    done.ChatID,
			Kind:      domain.KindCompany,
			Language:  done.Lang,
			Submitted: now,
			Company:   done.Company,
		}
		id := a.queue.Enqueue(reg)
		co := done.Company
		a.notifyManager(fmt.Sprintf(
			"New Network Registration Pending Approval:\nCompany: %s\nPhone: %s\nEmail: %s\nCategories: %s",
			co.Company, co.Phone, co.Email, strings.Join(co.Categories, ","),
		), decisionKeyboard(id))
		markup := keyboard.Rows(
			[]keyboard.Button{
				backRow(b)[0],
				{Text: "📋 See Network List", Unique: cbCmd, Payload: "network_list"},
			},
		)
		return c.Send(formatThanks(b.RegisterThanks, co.Company), markup, tele.ModeMarkdown)

	case flow.KindProfile:
		return a.applyProfileEdit(c, done)

	case flow.KindSurvey:
		row := []string{
			strconv.FormatInt(done.ChatID, 10),
			"survey:" + string(done.SurveyStage),
			strconv.Itoa(done.SurveyRating),
			now.Format(time.RFC3339Nano),
		}
		if err := a.store.AppendRow(ctx, sheets.Collaborations, row); err != nil {
			return fmt.Errorf("store survey rating: %w", err)
		}
		return c.Send(deco(b.SurveyThanks), keyboard.Rows(backRow(b)), tele.ModeMarkdown)

	case flow.KindAsk:
		return a.answerQuestion(c, done.Question)

	case flow.KindSuggest:
		reg := domain.PendingRegistration{
			ChatID:    done.ChatID,
			Kind:      domain.KindCategory,
			Language:  done.Lang,
			Submitted: now,
			Category:  done.Question,
		}
		id := a.queue.Enqueue(reg)
		a.notifyManager("New Category Suggestion Pending Approval: "+done.Question, decisionKeyboard(id))
		return c.Send(deco(b.CatSubmitted), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
	}
	return nil
}

// applyProfileEdit overwrites one cell of the chat's Users row.
func (a *App) applyProfileEdit(c tele.Context, done *flow.Completion) error {
	b := a.msgs(done.ChatID)
	cols := map[flow.ProfileField]int{
		flow.ProfileName:    3,
		flow.ProfilePhone:   4,
		flow.ProfileEmail:   5,
		flow.ProfileCompany: 6,
	}
	col, ok := cols[done.ProfileField]
	if !ok {
		return a.staleButton(c)
	}

	ctx := ctxOf(c)
	key := strconv.FormatInt(done.ChatID, 10)
	rowIdx, _, err := a.store.FindRow(ctx, sheets.Users, key)
	if err != nil {
		if errors.Is(err, sheets.ErrRowNotFound) {
			return c.Send(deco(b.ProfileMissing), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
		}
		return fmt.Errorf("find profile row: %w", err)
	}
	if err := a.store.UpdateCell(ctx, sheets.Users, rowIdx, col, done.ProfileValue); err != nil {
		return fmt.Errorf("update profile cell: %w", err)
	}
	return c.Send(deco(b.ProfileUpdated), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
}

// notifyManager sends through the async dispatcher so handler latency
// stays independent of the manager chat.
func (a *App) notifyManager(text string, markup *tele.ReplyMarkup) {
	job := senderJob(a.cfg.Manager.ChatID, text, markup)
	a.rt.Dispatcher.Enqueue(job)
}

func (a *App) notifyChat(chatID int64, text string, markup *tele.ReplyMarkup) {
	a.rt.Dispatcher.Enqueue(senderJob(chatID, text, markup))
}
