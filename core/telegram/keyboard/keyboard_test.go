package keyboard

import "testing"

func TestInlineChunksRows(t *testing.T) {
	markup := Inline(2,
		[]Button{
			{Text: "A", Unique: "cat", Payload: "A"},
			{Text: "B", Unique: "cat", Payload: "B"},
			{Text: "C", Unique: "cat", Payload: "C"},
		},
		[]Button{{Text: "Done", Unique: "cat", Payload: "done"}},
	)

	rows := markup.InlineKeyboard
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("chunk widths = %d,%d, want 2,1", len(rows[0]), len(rows[1]))
	}
	if rows[1][0].Text != "C" {
		t.Fatalf("overflow button = %q, want C", rows[1][0].Text)
	}
	if len(rows[2]) != 1 || rows[2][0].Text != "Done" {
		t.Fatalf("extra row not appended as given: %+v", rows[2])
	}
}

func TestInlineWidthDefaultsToOne(t *testing.T) {
	markup := Inline(0, []Button{
		{Text: "A", Unique: "x", Payload: "a"},
		{Text: "B", Unique: "x", Payload: "b"},
	})
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want one per button", len(markup.InlineKeyboard))
	}
}

func TestInlineSkipsEmptyExtraRows(t *testing.T) {
	markup := Inline(2,
		[]Button{{Text: "A", Unique: "x", Payload: "a"}},
		nil,
		[]Button{{Text: "Back", Unique: "cmd", Payload: "main_menu"}},
	)
	rows := markup.InlineKeyboard
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1][0].Text != "Back" {
		t.Fatalf("last row = %q, want Back", rows[1][0].Text)
	}
}

func TestRowsKeepsGrouping(t *testing.T) {
	markup := Rows(
		[]Button{{Text: "A", Unique: "x", Payload: "a"}, {Text: "B", Unique: "x", Payload: "b"}},
		nil,
		[]Button{{Text: "C", URL: "https://example.com"}},
	)
	rows := markup.InlineKeyboard
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Fatalf("first row width = %d, want 2", len(rows[0]))
	}
	if rows[1][0].URL == "" {
		t.Fatalf("URL button lost its link")
	}
}
