package telekit

import "slices"

// HandlerFunc is the function signature for event handlers.
type HandlerFunc func(ctx *Context) error

// ErrorFunc receives every error returned by, or panic raised in, a handler.
// It runs after the failure was logged.
type ErrorFunc func(ctx *Context, err error)

// Filter defines conditions for when a handler should be invoked.
type Filter struct {
	// Chats filters by chat IDs (channels, groups, users).
	// Empty means all chats.
	Chats []int64

	// Users filters by user IDs.
	// Empty means all users.
	Users []int64

	// Incoming filters for incoming messages only.
	Incoming bool

	// Outgoing filters for outgoing messages only.
	Outgoing bool

	// Private filters for private chats only.
	Private bool

	// Custom is a custom filter function.
	// Return true to process the message, false to skip.
	Custom func(ctx *Context) bool
}

// HasMedia is a Custom filter matching messages that carry any media.
func HasMedia(ctx *Context) bool {
	return ctx.Media() != nil
}

type handler struct {
	fn     HandlerFunc
	filter Filter
}

type commandHandler struct {
	name        string
	description string
	fn          HandlerFunc
	filter      Filter
	locked      bool
	scope       CommandScope
	langCode    string
}

func (f *Filter) matches(ctx *Context) bool {
	if len(f.Chats) > 0 && !slices.Contains(f.Chats, ctx.ChatID()) {
		return false
	}

	if len(f.Users) > 0 && !slices.Contains(f.Users, ctx.SenderID()) {
		return false
	}

	if f.Incoming && ctx.IsOutgoing() {
		return false
	}
	if f.Outgoing && !ctx.IsOutgoing() {
		return false
	}

	if f.Private && !ctx.IsPrivate() {
		return false
	}

	if f.Custom != nil && !f.Custom(ctx) {
		return false
	}

	return true
}
