// Package callbacks parses inline-button callback data of the form
// "namespace|payload" as produced by telebot's markup.Data helper.
package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Parsed is a decoded callback: the namespace key it routes on and the
// payload carried by the pressed button.
type Parsed struct {
	Key     string
	Payload string
}

// Parse extracts the namespace and payload from a callback update.
// Telebot prefixes unique callbacks with "\f"; the payload follows the
// first "|" and may itself contain "|" characters.
func Parse(cb *tele.Callback) (Parsed, bool) {
	if cb == nil {
		return Parsed{}, false
	}
	data := strings.TrimPrefix(cb.Data, "\f")
	data = strings.TrimSpace(data)
	if data == "" {
		return Parsed{}, false
	}
	key, payload, found := strings.Cut(data, "|")
	if !found {
		// Bare unique without payload still routes.
		return Parsed{Key: data}, true
	}
	return Parsed{Key: key, Payload: payload}, true
}

// PayloadOf returns just the payload portion of a callback, if any.
func PayloadOf(cb *tele.Callback) string {
	p, ok := Parse(cb)
	if !ok {
		return ""
	}
	return p.Payload
}
