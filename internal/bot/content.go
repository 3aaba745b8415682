package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/catalog"
	"github.com/benuhq/benubot/internal/sheets"

	tele "gopkg.in/telebot.v4"
)

type resourceFilter int

const (
	filterAll resourceFilter = iota
	filterVideos
	filterDocs
)

func formatTrainingSection(t catalog.Training) string {
	var links []string
	if t.Video != "" {
		links = append(links, fmt.Sprintf("📹 [Watch](%s)", t.Video))
	}
	if t.Docs != "" {
		links = append(links, fmt.Sprintf("📄 [Read](%s)", t.Docs))
	}
	return fmt.Sprintf("✨ *%s* _(%s)_\n%s\n_%s_", t.Name, t.Date, strings.Join(links, " | "), t.Description)
}

// showResources lists past trainings with their materials, filterable
// by media type.
func (a *App) showResources(c tele.Context, filter resourceFilter) error {
	b := a.msgs(chatOf(c))

	var sections []string
	for _, t := range a.catalog().Past() {
		switch filter {
		case filterVideos:
			if t.Video == "" {
				continue
			}
		case filterDocs:
			if t.Docs == "" {
				continue
			}
		}
		sections = append(sections, formatTrainingSection(t))
	}

	var text string
	if len(sections) > 0 {
		text = deco(b.ResourcesTitle) + "\n\n" + strings.Join(sections, "\n🌟====🌟\n")
	} else {
		text = deco(b.ResourcesTitle) + "\n" + b.NoResources
	}

	markup := keyboard.Rows(
		[]keyboard.Button{
			{Text: "🎥 Videos Only", Unique: cbFilter, Payload: "videos"},
			{Text: "📜 Docs Only", Unique: cbFilter, Payload: "resources"},
		},
		[]keyboard.Button{
			{Text: "⬇️ Get All Resources", Unique: cbCmd, Payload: "all_resources"},
			backRow(b)[0],
		},
	)
	return c.Send(text, markup, tele.ModeMarkdown, tele.NoPreview)
}

// cbResourceFilter narrows the resources view in place.
func (a *App) cbResourceFilter(c tele.Context) error {
	answerCallback(c)
	switch callbacks.PayloadOf(c.Callback()) {
	case "videos":
		return a.showResources(c, filterVideos)
	case "resources":
		return a.showResources(c, filterDocs)
	}
	return a.showResources(c, filterAll)
}

// showTrainingEvents lists past and upcoming events.
func (a *App) showTrainingEvents(c tele.Context) error {
	b := a.msgs(chatOf(c))
	cat := a.catalog()

	var past []string
	for _, t := range cat.Past() {
		past = append(past, fmt.Sprintf("🌟 *%s* _(%s)_\n_%s_", t.Name, t.Date, t.Description))
	}
	var upcoming []string
	for _, t := range cat.Upcoming() {
		upcoming = append(upcoming, fmt.Sprintf("📅 *%s* _(%s)_", t.Name, t.Date))
	}

	text := deco(b.TrainingsPast) + "\n\n" + strings.Join(past, "\n-----\n") +
		"\n\n✨ *" + b.TrainingsUpcoming + "* ✨\n\n" + strings.Join(upcoming, "\n")

	markup := keyboard.Rows(
		[]keyboard.Button{
			{Text: "📚 Resources", Unique: cbCmd, Payload: "resources"},
			{Text: "✍️ Sign Up", Unique: cbCmd, Payload: "signup"},
		},
		backRow(b),
	)
	return c.Send(text, markup, tele.ModeMarkdown)
}

var newsItems = []string{
	"🌟 *March 12, 2025*: _Benu secured ETB 2.9M from SWR Ethiopia._",
	"🌟 *April 10, 2025*: _First training held—29 saleswomen trained! See Training Events._",
	"🌟 *May 2025*: _New production line launches._",
	"🌟 *May 15, 2025*: _Networking Event—register under Join the network._",
}

func (a *App) showNews(c tele.Context) error {
	b := a.msgs(chatOf(c))
	text := deco(b.NewsTitle) + "\n\n" + strings.Join(newsItems, "\n")
	markup := keyboard.Rows(
		[]keyboard.Button{{Text: "🔔 Subscribe", Unique: cbCmd, Payload: "subscribenews"}},
		backRow(b),
	)
	return c.Send(text, markup, tele.ModeMarkdown)
}

func (a *App) showContact(c tele.Context) error {
	b := a.msgs(chatOf(c))
	text := deco(strings.SplitN(b.ContactInfo, ":", 2)[0]) + "\n\n" +
		"✉️ *Email:* benu@example.com\n" +
		"📞 *Phone:* +251921756683\n" +
		"🏢 *Address:* Addis Ababa, Bole Sub city, Woreda 03, H.N. 4/10/A5/FL8"
	return c.Send(text, keyboard.Rows(backRow(b)), tele.ModeMarkdown)
}

// subscribeNews appends a bare subscriber row once per chat.
func (a *App) subscribeNews(c tele.Context) error {
	chatID := chatOf(c)
	b := a.msgs(chatID)
	ctx := ctxOf(c)

	key := strconv.FormatInt(chatID, 10)
	if _, _, err := a.store.FindRow(ctx, sheets.TrainingSignups, key); err != nil {
		row := []string{key, "", "", "", time.Now().UTC().Format(time.RFC3339Nano)}
		if err := a.store.AppendRow(ctx, sheets.TrainingSignups, row); err != nil {
			return fmt.Errorf("subscribe %d: %w", chatID, err)
		}
	}
	return c.Send(deco(b.Subscribed), keyboard.Rows(backRow(b)), tele.ModeMarkdown)
}
