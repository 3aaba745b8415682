// Package commands defines the metadata a bot command registers with.
package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command pairs a handler with how the command is listed. Hidden and
// AdminOnly commands stay out of the public command menu; Aliases bind
// extra slash names to the same handler.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
	Aliases     []string
}
