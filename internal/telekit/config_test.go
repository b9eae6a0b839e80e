package telekit

import (
	"errors"
	"testing"
	"time"

	"github.com/gotd/td/tg"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing api id", Config{APIHash: "h", BotToken: "t"}, ErrMissingAPIID},
		{"missing api hash", Config{APIID: 1, BotToken: "t"}, ErrMissingAPIHash},
		{"missing token", Config{APIID: 1, APIHash: "h"}, ErrMissingBotToken},
		{"complete", Config{APIID: 1, APIHash: "h", BotToken: "t"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.validate(); !errors.Is(err, tt.want) {
				t.Errorf("validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.setDefaults()

	if cfg.SessionDir != "./session" {
		t.Errorf("SessionDir = %q, want ./session", cfg.SessionDir)
	}
	if cfg.Logger == nil {
		t.Error("Logger not defaulted")
	}
	if cfg.AlbumTimeout != 500*time.Millisecond {
		t.Errorf("AlbumTimeout = %v, want 500ms", cfg.AlbumTimeout)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{SessionDir: t.TempDir()}); !errors.Is(err, ErrMissingAPIID) {
		t.Errorf("New() error = %v, want ErrMissingAPIID", err)
	}
}

func TestBotInfoMerge(t *testing.T) {
	current := &tg.BotsBotInfo{Name: "Bot", About: "old about", Description: "desc"}

	next, changed := BotInfo{About: "new about"}.merge(current)
	if !changed {
		t.Error("merge() changed = false, want true")
	}
	if next.Name != "Bot" || next.About != "new about" || next.Description != "desc" {
		t.Errorf("merge() = %+v", next)
	}

	if _, changed := (BotInfo{Description: "desc"}).merge(current); changed {
		t.Error("merge() with identical fields reported a change")
	}
}
