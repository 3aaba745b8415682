package bot

import (
	"fmt"

	"github.com/benuhq/benubot/core/telegram/format"
	"github.com/benuhq/benubot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// answerLimit keeps the rendered reply under Telegram's message cap
// with room for the surrounding template.
const answerLimit = 3500

// answerQuestion proxies one question to the inference endpoint. A
// failure of any kind becomes the generic try-again message.
func (a *App) answerQuestion(c tele.Context, question string) error {
	b := a.msgs(chatOf(c))

	answer, err := a.infer.Ask(ctxOf(c), question)
	if err != nil {
		markup := keyboard.Rows(
			[]keyboard.Button{
				{Text: "Try Again", Unique: cbCmd, Payload: "ask_again"},
				backRow(b)[0],
			},
		)
		return c.Send("⚠️ *"+b.AskError+"* ⚠️", markup, tele.ModeMarkdown)
	}

	text := fmt.Sprintf(
		"🌟 *Your Answer* 🌟\n➡️ *Question:* %s\n📝 *Answer:* _%s_\n🎉 Powered by BenuBot!",
		format.EscapeMarkdown(format.Truncate(question, 300)),
		format.EscapeMarkdown(format.Truncate(answer, answerLimit)),
	)
	markup := keyboard.Rows(
		[]keyboard.Button{
			{Text: "Ask Another Question", Unique: cbCmd, Payload: "ask_again"},
			backRow(b)[0],
		},
	)
	return c.Send(text, markup, tele.ModeMarkdown)
}
