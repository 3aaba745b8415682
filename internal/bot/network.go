package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/helpers"
	"github.com/benuhq/benubot/core/telegram/keyboard"
	"github.com/benuhq/benubot/internal/sheets"

	tele "gopkg.in/telebot.v4"
)

const networkPageSize = 3

// directoryEntry is one company in the networking directory.
type directoryEntry struct {
	Name        string
	Description string
	Contact     string
}

// seedDirectory lists the companies shown before any registrations.
var seedDirectory = map[string][]directoryEntry{
	"Biscuit Production": {
		{Name: "EthioBiscuit Co.", Description: "Produces fortified biscuits", Contact: "+251912345678"},
		{Name: "Benu Biscuits", Description: "Specializes in local biscuit varieties", Contact: "Private"},
	},
	"Agriculture": {
		{Name: "AgriGrow Ethiopia", Description: "Supplies wheat and grains", Contact: "+251987654321"},
		{Name: "FarmTech Ltd.", Description: "Organic farming solutions", Contact: "Private"},
	},
}

// directory merges the seed entries, operator-curated Companies rows,
// and approved registrations, grouped by category.
func (a *App) directory(c tele.Context) (map[string][]directoryEntry, error) {
	byCat := make(map[string][]directoryEntry, len(seedDirectory))
	for cat, entries := range seedDirectory {
		byCat[cat] = append([]directoryEntry(nil), entries...)
	}

	curated, err := a.store.Rows(ctxOf(c), sheets.Companies)
	if err != nil {
		return nil, fmt.Errorf("load curated companies: %w", err)
	}
	for _, row := range curated {
		// Curated row: category, name, description, contact.
		if len(row) < 4 || row[1] == "" {
			continue
		}
		cat := row[0]
		if cat == "" {
			cat = "Uncategorized"
		}
		byCat[cat] = append(byCat[cat], directoryEntry{
			Name:        row[1],
			Description: row[2],
			Contact:     row[3],
		})
	}

	rows, err := a.store.Rows(ctxOf(c), sheets.NetworkRegs)
	if err != nil {
		return nil, fmt.Errorf("load network registrations: %w", err)
	}
	for _, row := range rows {
		entry, cats, ok := parseNetworkRow(row)
		if !ok {
			continue
		}
		for _, cat := range cats {
			byCat[cat] = append(byCat[cat], entry)
		}
	}
	return byCat, nil
}

// parseNetworkRow reads one NetworkingRegistrations row:
// chat_id, company, phone, email, description, manager, categories,
// timestamp, public, status.
func parseNetworkRow(row []string) (directoryEntry, []string, bool) {
	if len(row) < 9 {
		return directoryEntry{}, nil, false
	}
	contact := "Private"
	if row[8] == "Yes" {
		contact = row[2]
	}
	cats := strings.Split(row[6], ",")
	if len(cats) == 1 && cats[0] == "" {
		cats = []string{"Uncategorized"}
	}
	return directoryEntry{Name: row[1], Description: row[4], Contact: contact}, cats, true
}

func formatCategorySection(cat string, entries []directoryEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("🏢 *%s*\n_%s_\n📞 Contact: %s", e.Name, e.Description, e.Contact))
	}
	return fmt.Sprintf("🌟 *%s* 🌟\n%s", cat, strings.Join(lines, "\n"))
}

// showNetworking shows the caller's own profile when registered, then
// the directory.
func (a *App) showNetworking(c tele.Context) error {
	chatID := chatOf(c)
	b := a.msgs(chatID)

	var header string
	_, row, err := a.store.FindRow(ctxOf(c), sheets.NetworkRegs, strconv.FormatInt(chatID, 10))
	if err == nil && len(row) >= 9 {
		contact := "Private"
		if row[8] == "Yes" {
			contact = row[2]
		}
		header = fmt.Sprintf(
			"🌟 *Your Network Profile* 🌟\n\n🏢 *%s*\n📋 *Description:* %s\n📞 *Contact:* %s\n📊 *Categories:* %s\n👤 *Manager:* %s\n",
			row[1], row[4], contact, row[6], row[5],
		)
	} else {
		header = deco(b.NetworkingTitle) + "\n\n" + b.NotRegisteredYet
	}

	byCat, err := a.directory(c)
	if err != nil {
		return err
	}
	var sections []string
	for _, cat := range sortedCategories(byCat) {
		sections = append(sections, formatCategorySection(cat, byCat[cat]))
	}

	text := header + "\n\n" + strings.Join(sections, "\n🌟----🌟\n")
	markup := keyboard.Rows(
		[]keyboard.Button{{Text: "📝 Register", Unique: cbCmd, Payload: "register"}},
		[]keyboard.Button{{Text: "💡 Suggest Category", Unique: cbCmd, Payload: "suggest_category"}},
		backRow(b),
	)
	return c.Send(text, markup, tele.ModeMarkdown)
}

// showNetworkList pages through registered companies grouped by
// category.
func (a *App) showNetworkList(c tele.Context, page int) error {
	b := a.msgs(chatOf(c))

	byCat, err := a.directory(c)
	if err != nil {
		return err
	}
	cats := sortedCategories(byCat)

	totalPages := (len(cats) + networkPageSize - 1) / networkPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * networkPageSize
	end := start + networkPageSize
	if end > len(cats) {
		end = len(cats)
	}

	var sections []string
	for _, cat := range cats[start:end] {
		entries := byCat[cat]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		sections = append(sections, formatCategorySection(cat, entries))
	}

	body := b.NoCompaniesYet
	if len(sections) > 0 {
		body = strings.Join(sections, "\n🌟----🌟\n")
	}
	var nav []keyboard.Button
	if page > 0 {
		nav = append(nav, keyboard.Button{Text: "⬅️ Prev", Unique: cbPage, Payload: strconv.Itoa(page - 1)})
	}
	if page < totalPages-1 {
		nav = append(nav, keyboard.Button{Text: "Next ➡️", Unique: cbPage, Payload: strconv.Itoa(page + 1)})
	}
	rows := [][]keyboard.Button{}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, backRow(b))

	text := deco(b.NetworkListTitle) + "\n\n" + body
	return helpers.EditOrSend(c, text, keyboard.Rows(rows...), tele.ModeMarkdown)
}

// cbNetworkPage flips the directory page in place.
func (a *App) cbNetworkPage(c tele.Context) error {
	answerCallback(c)
	page, err := strconv.Atoi(callbacks.PayloadOf(c.Callback()))
	if err != nil {
		page = 0
	}
	return a.showNetworkList(c, page)
}

func sortedCategories(byCat map[string][]directoryEntry) []string {
	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
