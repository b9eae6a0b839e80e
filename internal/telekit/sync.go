package telekit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gotd/td/tg"
)

// SyncCommands publishes every command registered with a description to the
// bot menu, grouped by scope and language. Scopes published by a previous
// run are reset first so removed commands disappear from the menu.
func (b *Bot) SyncCommands(ctx context.Context) error {
	if b.api == nil {
		return ErrBotNotRunning
	}

	grouped, scopes := b.menuCommands()
	if len(grouped) == 0 {
		b.config.Logger.Debug("no commands with descriptions to sync")
		return nil
	}

	if err := b.ResetCommands(ctx); err != nil {
		b.config.Logger.Warn("failed to reset previous commands", "error", err)
	}

	var published []string
	for key, commands := range grouped {
		_, err := b.api.BotsSetBotCommands(ctx, &tg.BotsSetBotCommandsRequest{
			Scope:    scopes[key].toTG(),
			LangCode: extractLangCode(key),
			Commands: commands,
		})
		if err != nil {
			b.config.Logger.Error("failed to set commands", "scope", key, "error", err)
			continue
		}
		published = append(published, key)
		b.config.Logger.Debug("set commands for scope", "scope", key, "count", len(commands))
	}

	if err := b.saveCommandScopes(published); err != nil {
		b.config.Logger.Warn("failed to save command scopes", "error", err)
	}

	b.config.Logger.Info("synced commands to Telegram", "scopes", len(published))
	return nil
}

// menuCommands groups described commands by scope key, dropping duplicates
// within a scope.
func (b *Bot) menuCommands() (map[string][]tg.BotCommand, map[string]CommandScope) {
	b.mu.RLock()
	handlers := b.commandHandlers
	b.mu.RUnlock()

	grouped := make(map[string][]tg.BotCommand)
	scopes := make(map[string]CommandScope)

	for _, h := range handlers {
		if h.description == "" {
			continue
		}

		scope := h.scope
		if scope == nil {
			scope = ScopeDefault{}
		}

		key := scopeKeyString(scope, h.langCode)
		scopes[key] = scope

		exists := slices.ContainsFunc(grouped[key], func(c tg.BotCommand) bool {
			return c.Command == h.name
		})
		if !exists {
			grouped[key] = append(grouped[key], tg.BotCommand{
				Command:     h.name,
				Description: h.description,
			})
		}
	}

	return grouped, scopes
}

// ResetCommands removes the bot commands published by the previous sync.
// Without a saved state it resets the broad scopes.
func (b *Bot) ResetCommands(ctx context.Context) error {
	if b.api == nil {
		return ErrBotNotRunning
	}

	keys := b.loadCommandScopes()
	if len(keys) == 0 {
		keys = []string{
			scopeKeyString(ScopeDefault{}, ""),
			scopeKeyString(ScopeAllPrivate{}, ""),
			scopeKeyString(ScopeAllGroups{}, ""),
		}
	}

	for _, key := range keys {
		scope, langCode := parseScopeKey(key)
		if scope == nil {
			b.config.Logger.Debug("skipping invalid scope key", "key", key)
			continue
		}

		_, err := b.api.BotsResetBotCommands(ctx, &tg.BotsResetBotCommandsRequest{
			Scope:    scope.toTG(),
			LangCode: langCode,
		})
		if err != nil {
			b.config.Logger.Debug("failed to reset scope", "key", key, "error", err)
		}
	}

	b.config.Logger.Debug("reset bot commands", "count", len(keys))
	return nil
}

func (b *Bot) commandScopesFile() string {
	return filepath.Join(b.config.SessionDir, "command_scopes.json")
}

func (b *Bot) loadCommandScopes() []string {
	data, err := os.ReadFile(b.commandScopesFile())
	if err != nil {
		return nil
	}

	var scopes []string
	if err := json.Unmarshal(data, &scopes); err != nil {
		b.config.Logger.Debug("failed to parse command scopes file", "error", err)
		return nil
	}

	return scopes
}

func (b *Bot) saveCommandScopes(scopes []string) error {
	data, err := json.Marshal(scopes)
	if err != nil {
		return err
	}

	return os.WriteFile(b.commandScopesFile(), data, 0600)
}

func scopeKeyString(scope CommandScope, langCode string) string {
	var scopeName string
	switch s := scope.(type) {
	case nil, ScopeDefault:
		scopeName = "default"
	case ScopeAllPrivate:
		scopeName = "users"
	case ScopeAllGroups:
		scopeName = "chats"
	case ScopeUser:
		scopeName = fmt.Sprintf("user:%d:%d", s.UserID, s.AccessHash)
	default:
		scopeName = "unknown"
	}

	return scopeName + "|" + langCode
}

func extractLangCode(key string) string {
	if i := strings.LastIndexByte(key, '|'); i >= 0 {
		return key[i+1:]
	}
	return ""
}

func parseScopeKey(key string) (CommandScope, string) {
	scopeStr, langCode, ok := strings.Cut(key, "|")
	if !ok {
		return nil, ""
	}

	switch {
	case scopeStr == "default":
		return ScopeDefault{}, langCode
	case scopeStr == "users":
		return ScopeAllPrivate{}, langCode
	case scopeStr == "chats":
		return ScopeAllGroups{}, langCode
	case strings.HasPrefix(scopeStr, "user:"):
		var userID, accessHash int64
		if n, _ := fmt.Sscanf(scopeStr, "user:%d:%d", &userID, &accessHash); n != 2 {
			return nil, ""
		}
		return ScopeUser{UserID: userID, AccessHash: accessHash}, langCode
	default:
		return nil, ""
	}
}
