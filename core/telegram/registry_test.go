package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestRegistryCallbackLookup(t *testing.T) {
	r := NewRegistry()
	noop := func(c tele.Context) error { return nil }

	for _, key := range []string{"page", "approve", "lang"} {
		if err := r.RegisterCallback(key, noop); err != nil {
			t.Fatalf("register %q: %v", key, err)
		}
	}

	if _, ok := r.GetCallback("approve"); !ok {
		t.Fatalf("registered callback not found")
	}
	if _, ok := r.GetCallback("missing"); ok {
		t.Fatalf("unregistered callback found")
	}

	got := r.ListCallbacks()
	want := []string{"approve", "lang", "page"}
	if len(got) != len(want) {
		t.Fatalf("ListCallbacks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListCallbacks[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
