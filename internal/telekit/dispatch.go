package telekit

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/gotd/td/tg"
)

func (b *Bot) registerDispatcherHandlers() {
	b.dispatcher.OnNewMessage(func(ctx context.Context, e tg.Entities, u *tg.UpdateNewMessage) error {
		msg, ok := u.Message.(*tg.Message)
		if !ok {
			return nil
		}
		return b.handleMessage(ctx, msg, e)
	})

	b.dispatcher.OnNewChannelMessage(func(ctx context.Context, e tg.Entities, u *tg.UpdateNewChannelMessage) error {
		msg, ok := u.Message.(*tg.Message)
		if !ok {
			return nil
		}
		return b.handleMessage(ctx, msg, e)
	})
}

func (b *Bot) handleMessage(ctx context.Context, msg *tg.Message, entities tg.Entities) error {
	if msg.Out {
		return nil
	}

	if b.albumCollector.add(ctx, msg, entities) {
		return nil
	}

	botCtx := &Context{
		Context:  ctx,
		bot:      b,
		message:  msg,
		entities: entities,
	}

	// Media captions live in msg.Message too; only plain text is a command.
	if msg.Media == nil && strings.HasPrefix(msg.Message, "/") {
		b.handleCommand(botCtx)
		return nil
	}

	b.mu.RLock()
	handlers := b.messageHandlers
	b.mu.RUnlock()

	b.enqueue(botCtx, func(c *Context) {
		for _, h := range handlers {
			if h.filter.matches(c) {
				b.invoke(c, "message", h.fn)
			}
		}
	})

	return nil
}

// enqueue runs fn on the sender's queue with a copy of ctx bound to the
// task context.
func (b *Bot) enqueue(ctx *Context, fn func(c *Context)) {
	b.queue.push(ctx.Context, ctx.SenderID(), func(taskCtx context.Context) {
		c := *ctx
		c.Context = taskCtx
		fn(&c)
	})
}

func (b *Bot) handleCommand(ctx *Context) {
	text := ctx.Text()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}

	cmdName := strings.TrimPrefix(parts[0], "/")
	// Handle commands like /cmd@botname
	if idx := strings.Index(cmdName, "@"); idx > 0 {
		cmdName = cmdName[:idx]
	}

	b.config.Logger.Debug("received command",
		"command", cmdName,
		"sender_id", ctx.SenderID(),
		"chat_id", ctx.ChatID())

	userID := ctx.SenderID()

	b.mu.RLock()
	handlers := b.commandHandlers
	b.mu.RUnlock()

	for _, h := range handlers {
		if h.name != cmdName {
			continue
		}
		if !h.filter.matches(ctx) {
			b.config.Logger.Debug("command filter not matched",
				"command", cmdName,
				"sender_id", userID)
			continue
		}

		// The lock is taken before queueing so a repeat sent while the
		// first one waits or runs is dropped, not queued behind it.
		locked := h.locked && userID != 0
		if locked && !b.busy.tryEnter(userID) {
			b.config.Logger.Debug("command blocked by lock",
				"command", cmdName,
				"sender_id", userID)
			return
		}

		b.enqueue(ctx, func(c *Context) {
			if locked {
				defer b.busy.leave(userID)
			}
			b.invoke(c, "command", h.fn)
		})
		return
	}
}

func (b *Bot) handleAlbum(ctx context.Context, messages []*tg.Message, entities tg.Entities) {
	if len(messages) == 0 {
		return
	}

	botCtx := &Context{
		Context:  ctx,
		bot:      b,
		message:  messages[0],
		messages: messages,
		entities: entities,
	}

	b.mu.RLock()
	handlers := b.albumHandlers
	b.mu.RUnlock()

	b.enqueue(botCtx, func(c *Context) {
		for _, h := range handlers {
			if h.filter.matches(c) {
				b.invoke(c, "album", h.fn)
			}
		}
	})
}

// invoke runs a handler, turning a returned error or a panic into a call
// to the error hook. Nothing escapes to the update loop.
func (b *Bot) invoke(ctx *Context, kind string, fn HandlerFunc) {
	defer func() {
		if r := recover(); r != nil {
			b.config.Logger.Debug("handler panic stack", "stack", string(debug.Stack()))
			b.fail(ctx, kind, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(ctx); err != nil {
		b.fail(ctx, kind, err)
	}
}

func (b *Bot) fail(ctx *Context, kind string, err error) {
	b.config.Logger.Error(kind+" handler error",
		"error", err,
		"sender_id", ctx.SenderID(),
		"chat_id", ctx.ChatID())

	b.mu.RLock()
	onError := b.onError
	b.mu.RUnlock()

	if onError != nil {
		onError(ctx, err)
	}
}
