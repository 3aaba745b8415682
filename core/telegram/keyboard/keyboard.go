// Package keyboard builds inline keyboards from flat button lists.
package keyboard

import (
	tele "gopkg.in/telebot.v4"
)

// Button describes a single inline button before layout.
type Button struct {
	Text    string
	Unique  string
	Payload string
	URL     string
}

// Inline chunks buttons into rows of the given width, then appends the
// extra rows as given. A width below 1 defaults to 1.
func Inline(width int, buttons []Button, extra ...[]Button) *tele.ReplyMarkup {
	if width < 1 {
		width = 1
	}
	markup := &tele.ReplyMarkup{}

	var rows []tele.Row
	var row []tele.Btn
	for _, b := range buttons {
		row = append(row, asBtn(markup, b))
		if len(row) == width {
			rows = append(rows, markup.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, markup.Row(row...))
	}
	for _, group := range extra {
		if r := asRow(markup, group); len(r) > 0 {
			rows = append(rows, markup.Row(r...))
		}
	}
	markup.Inline(rows...)
	return markup
}

// Rows builds a markup from explicit row groupings, one slice per row.
func Rows(rows ...[]Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var out []tele.Row
	for _, group := range rows {
		if row := asRow(markup, group); len(row) > 0 {
			out = append(out, markup.Row(row...))
		}
	}
	markup.Inline(out...)
	return markup
}

func asRow(markup *tele.ReplyMarkup, group []Button) []tele.Btn {
	var row []tele.Btn
	for _, b := range group {
		row = append(row, asBtn(markup, b))
	}
	return row
}

func asBtn(markup *tele.ReplyMarkup, b Button) tele.Btn {
	if b.URL != "" {
		return markup.URL(b.Text, b.URL)
	}
	return markup.Data(b.Text, b.Unique, b.Payload)
}
