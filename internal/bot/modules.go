package bot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/flow"

	tele "gopkg.in/telebot.v4"
)

// showModules lists the skill modules.
func (a *App) showModules(c tele.Context) error {
	b := a.msgs(chatOf(c))
	var rows [][]keyboard.Button
	for _, m := range a.catalog().Modules() {
		rows = append(rows, []keyboard.Button{
			{Text: "📚 " + m.Name, Unique: cbModule, Payload: strconv.Itoa(m.ID)},
		})
	}
	rows = append(rows, backRow(b))
	return c.Send(deco(b.ModulesTitle), keyboard.Rows(rows...), tele.ModeMarkdown)
}

// cbOpenModule serves a module's content and starts its quiz, unless
// prerequisites are missing.
func (a *App) cbOpenModule(c tele.Context) error {
	answerCallback(c)
	chatID := chatOf(c)
	b := a.msgs(chatID)

	id, err := strconv.Atoi(callbacks.PayloadOf(c.Callback()))
	if err != nil {
		return a.staleButton(c)
	}
	mod, ok := a.catalog().Module(id)
	if !ok {
		return a.staleButton(c)
	}

	first, err := a.engine.StartQuiz(chatID, mod)
	if err != nil {
		if errors.Is(err, flow.ErrPrerequisites) {
			return c.Send(deco(b.PrereqError), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
		}
		return a.staleButton(c)
	}

	study := deco(fmt.Sprintf(b.ModuleStudy, mod.Name, mod.Content))
	if err := c.Send(study, keyboard.Rows(backRow(b)), tele.ModeMarkdown); err != nil {
		return err
	}
	if err := c.Send(deco(fmt.Sprintf(b.QuizStart, mod.Name)), tele.ModeMarkdown); err != nil {
		return err
	}
	return c.Send(quizQuestionText(b, 1, first.Prompt), quizKeyboard(first.Options, b), tele.ModeMarkdown)
}

// cbQuizAnswer grades a button answer.
func (a *App) cbQuizAnswer(c tele.Context) error {
	answerCallback(c)
	return a.gradeQuizAnswer(c, callbacks.PayloadOf(c.Callback()))
}

// gradeQuizAnswer handles both button and typed answers.
func (a *App) gradeQuizAnswer(c tele.Context, answer string) error {
	chatID := chatOf(c)
	b := a.msgs(chatID)

	out, err := a.engine.AnswerQuiz(chatID, answer)
	if err != nil {
		return a.staleButton(c)
	}

	var verdict string
	if out.Correct {
		verdict = fmt.Sprintf(b.QuizCorrect, out.Explain)
	} else {
		verdict = fmt.Sprintf(b.QuizWrong, out.Answer, out.Explain)
	}
	if err := c.Send(deco(verdict), keyboard.Rows(backRow(b)), tele.ModeMarkdown); err != nil {
		return err
	}

	if !out.Done {
		return c.Send(
			quizQuestionText(b, out.NextNum, out.Next.Prompt),
			quizKeyboard(out.Next.Options, b),
			tele.ModeMarkdown,
		)
	}

	summary := deco(fmt.Sprintf(b.QuizDone, out.Score, out.Total))
	if err := c.Send(summary, keyboard.Rows(backRow(b)), tele.ModeMarkdown); err != nil {
		return err
	}
	return a.maybeStartSurvey(c, out.CompletedCount)
}

// maybeStartSurvey opens the satisfaction survey after the second and
// the final completed module.
func (a *App) maybeStartSurvey(c tele.Context, completedCount int) error {
	var stage flow.SurveyStage
	switch completedCount {
	case 2:
		stage = flow.SurveyMid
	case len(a.catalog().Modules()):
		stage = flow.SurveyEnd
	default:
		return nil
	}
	res, err := a.engine.StartSurvey(chatOf(c), stage)
	if err != nil {
		return err
	}
	return a.renderResult(c, res)
}
