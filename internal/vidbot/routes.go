package vidbot

import (
	"github.com/en9inerd/vidzipbot/internal/telekit"
)

// RouteKind is the kind of event a route reacts to.
type RouteKind int

const (
	RouteCommand RouteKind = iota
	RouteMessage
	RouteAlbum
)

// Route binds one event kind to a handler.
type Route struct {
	Kind RouteKind

	// Command and Description are set for RouteCommand.
	Command     string
	Description string
	Locked      bool

	// Filter applies to RouteMessage and RouteAlbum.
	Filter telekit.Filter

	Handle telekit.HandlerFunc
}

// Registrar is the subset of *telekit.Bot used to install routes.
type Registrar interface {
	CommandWithDesc(def telekit.CommandDef, fn telekit.HandlerFunc)
	LockedCommandWithDesc(def telekit.CommandDef, fn telekit.HandlerFunc)
	OnMessage(filter telekit.Filter, fn telekit.HandlerFunc)
	OnAlbum(filter telekit.Filter, fn telekit.HandlerFunc)
	OnError(fn telekit.ErrorFunc)
}

// Routes returns the handler table of the bot.
func (h *Handlers) Routes() []Route {
	media := telekit.Filter{Incoming: true, Private: true, Custom: telekit.HasMedia}

	return []Route{
		{
			Kind:        RouteCommand,
			Command:     "start",
			Description: "Show instructions and start a new collection",
			Handle:      func(c *telekit.Context) error { return h.Start(c) },
		},
		{
			Kind:        RouteCommand,
			Command:     "zip",
			Description: "Get all collected videos as one zip file",
			Locked:      true,
			Handle:      func(c *telekit.Context) error { return h.Zip(c) },
		},
		{
			Kind:   RouteMessage,
			Filter: media,
			Handle: func(c *telekit.Context) error { return h.Video(c) },
		},
		{
			Kind:   RouteAlbum,
			Filter: media,
			Handle: func(c *telekit.Context) error {
				items := c.Items()
				events := make([]Event, len(items))
				for i, item := range items {
					events[i] = item
				}
				return h.Album(events)
			},
		},
	}
}

// Register installs the route table and the error hook on r.
func (h *Handlers) Register(r Registrar) {
	for _, rt := range h.Routes() {
		switch rt.Kind {
		case RouteCommand:
			def := telekit.CommandDef{Name: rt.Command, Description: rt.Description}
			if rt.Locked {
				r.LockedCommandWithDesc(def, rt.Handle)
			} else {
				r.CommandWithDesc(def, rt.Handle)
			}
		case RouteMessage:
			r.OnMessage(rt.Filter, rt.Handle)
		case RouteAlbum:
			r.OnAlbum(rt.Filter, rt.Handle)
		}
	}

	r.OnError(func(c *telekit.Context, err error) { h.Error(c, err) })
}

