package telekit

import (
	"context"

	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/tg"
)

// Context provides access to the current update and utility methods.
type Context struct {
	context.Context

	bot      *Bot
	message  *tg.Message
	entities tg.Entities

	// For album handling
	messages []*tg.Message
}

// Message returns the current message.
func (c *Context) Message() *tg.Message {
	return c.message
}

// Items returns one Context per message of an album, in message ID order.
// For a single message it returns the Context itself.
func (c *Context) Items() []*Context {
	if len(c.messages) == 0 {
		return []*Context{c}
	}

	items := make([]*Context, 0, len(c.messages))
	for _, msg := range c.messages {
		items = append(items, &Context{
			Context:  c.Context,
			bot:      c.bot,
			message:  msg,
			entities: c.entities,
		})
	}
	return items
}

// Text returns the message text.
func (c *Context) Text() string {
	if c.message != nil {
		return c.message.Message
	}
	return ""
}

// Caption returns the text attached to a media message.
// MTProto carries captions in the message text.
func (c *Context) Caption() string {
	if c.Media() == nil {
		return ""
	}
	return c.Text()
}

// MessageID returns the message ID.
func (c *Context) MessageID() int {
	if c.message != nil {
		return c.message.ID
	}
	return 0
}

// ChatID returns the chat ID where the message was sent.
func (c *Context) ChatID() int64 {
	if c.message == nil {
		return 0
	}
	switch peer := c.message.PeerID.(type) {
	case *tg.PeerChannel:
		return peer.ChannelID
	case *tg.PeerChat:
		return peer.ChatID
	case *tg.PeerUser:
		return peer.UserID
	}
	return 0
}

// SenderID returns the sender's user ID.
func (c *Context) SenderID() int64 {
	if c.message == nil {
		return 0
	}
	// FromID is set in groups and channels
	if c.message.FromID != nil {
		if user, ok := c.message.FromID.(*tg.PeerUser); ok {
			return user.UserID
		}
	}
	// Private chats leave FromID empty
	if user, ok := c.message.PeerID.(*tg.PeerUser); ok {
		return user.UserID
	}
	return 0
}

// IsOutgoing returns true if this is an outgoing message.
func (c *Context) IsOutgoing() bool {
	if c.message != nil {
		return c.message.Out
	}
	return false
}

// IsPrivate returns true if the message is from a private chat.
func (c *Context) IsPrivate() bool {
	if c.message != nil {
		_, ok := c.message.PeerID.(*tg.PeerUser)
		return ok
	}
	return false
}

// Media returns the message media (photo, video, etc.).
func (c *Context) Media() tg.MessageMediaClass {
	if c.message != nil {
		return c.message.Media
	}
	return nil
}

// Reply sends a reply to the current message.
func (c *Context) Reply(text string) error {
	if c.message == nil {
		return ErrNoMessage
	}
	_, err := c.sender().Reply(c.entities, c.updateToMessage()).Text(c, text)
	return err
}

func (c *Context) sender() *message.Sender {
	return message.NewSender(c.bot.api)
}

// updateToMessage converts the update to a message interface for reply.
func (c *Context) updateToMessage() *tg.UpdateNewMessage {
	return &tg.UpdateNewMessage{Message: c.message}
}
