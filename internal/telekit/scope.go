package telekit

import "github.com/gotd/td/tg"

// CommandScope defines where a command should be available.
type CommandScope interface {
	toTG() tg.BotCommandScopeClass
}

// ScopeDefault makes the command available wherever no narrower scope applies.
type ScopeDefault struct{}

func (ScopeDefault) toTG() tg.BotCommandScopeClass {
	return &tg.BotCommandScopeDefault{}
}

// ScopeAllPrivate makes the command available in all private chats.
type ScopeAllPrivate struct{}

func (ScopeAllPrivate) toTG() tg.BotCommandScopeClass {
	return &tg.BotCommandScopeUsers{}
}

// ScopeAllGroups makes the command available in all group chats.
type ScopeAllGroups struct{}

func (ScopeAllGroups) toTG() tg.BotCommandScopeClass {
	return &tg.BotCommandScopeChats{}
}

// ScopeUser makes the command available to a specific user in private chat.
type ScopeUser struct {
	UserID     int64
	AccessHash int64
}

func (s ScopeUser) toTG() tg.BotCommandScopeClass {
	return &tg.BotCommandScopePeer{
		Peer: &tg.InputPeerUser{UserID: s.UserID, AccessHash: s.AccessHash},
	}
}
