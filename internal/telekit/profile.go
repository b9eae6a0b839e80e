package telekit

import (
	"context"
	"fmt"

	"github.com/gotd/td/tg"
)

// BotInfo holds bot profile information.
type BotInfo struct {
	// Name is the bot's display name.
	Name string

	// About is the short description shown in the bot's profile.
	About string

	// Description is the longer description shown before /start.
	Description string

	// LangCode is the language code for this info.
	// Empty string means default language.
	LangCode string
}

// merge fills empty fields from current and reports whether anything differs.
func (i BotInfo) merge(current *tg.BotsBotInfo) (BotInfo, bool) {
	if i.Name == "" {
		i.Name = current.Name
	}
	if i.About == "" {
		i.About = current.About
	}
	if i.Description == "" {
		i.Description = current.Description
	}

	changed := i.Name != current.Name || i.About != current.About || i.Description != current.Description
	return i, changed
}

// UpdateBotInfo updates the bot's profile information.
// Only non-empty fields are updated.
func (b *Bot) UpdateBotInfo(ctx context.Context, info BotInfo) error {
	if b.api == nil {
		return ErrBotNotRunning
	}

	current, err := b.api.BotsGetBotInfo(ctx, &tg.BotsGetBotInfoRequest{
		LangCode: info.LangCode,
	})
	if err != nil {
		return fmt.Errorf("failed to get bot info: %w", err)
	}

	next, changed := info.merge(current)
	if !changed {
		b.config.Logger.Debug("bot info unchanged, skipping update")
		return nil
	}

	_, err = b.api.BotsSetBotInfo(ctx, &tg.BotsSetBotInfoRequest{
		Name:        next.Name,
		About:       next.About,
		Description: next.Description,
		LangCode:    next.LangCode,
	})
	if err != nil {
		return fmt.Errorf("failed to set bot info: %w", err)
	}

	b.config.Logger.Info("updated bot info", "name", next.Name, "lang", next.LangCode)
	return nil
}
