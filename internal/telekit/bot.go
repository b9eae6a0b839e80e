package telekit

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/updates"
	updhook "github.com/gotd/td/telegram/updates/hook"
	"github.com/gotd/td/tg"
)

// Bot is the main Telegram bot client.
type Bot struct {
	config     Config
	client     *telegram.Client
	api        *tg.Client
	dispatcher tg.UpdateDispatcher
	gaps       *updates.Manager

	// Handlers
	mu              sync.RWMutex
	messageHandlers []handler
	commandHandlers []commandHandler
	albumHandlers   []handler
	onError         ErrorFunc

	// Users with a locked command in flight
	busy *busySet

	albumCollector *albumCollector

	// Per-sender handler queues
	queue *senderQueue

	running atomic.Bool
}

// New creates a new Bot with the given configuration.
func New(cfg Config) (*Bot, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.SessionDir, 0700); err != nil {
		return nil, err
	}

	bot := newBot(cfg)

	sessionStorage := &session.FileStorage{
		Path: filepath.Join(cfg.SessionDir, "session"),
	}

	bot.gaps = updates.New(updates.Config{
		Handler: &bot.dispatcher,
	})

	bot.client = telegram.NewClient(cfg.APIID, cfg.APIHash, telegram.Options{
		Logger:        cfg.zapLogger(),
		UpdateHandler: bot.gaps,
		Middlewares: []telegram.Middleware{
			updhook.UpdateHook(bot.gaps.Handle),
			floodWaitMiddleware{},
		},
		Device: telegram.DeviceConfig{
			DeviceModel:    cfg.DeviceModel,
			SystemVersion:  cfg.SystemVersion,
			AppVersion:     cfg.AppVersion,
			LangCode:       cfg.LangCode,
			SystemLangCode: cfg.SystemLangCode,
		},
		SessionStorage: sessionStorage,
	})

	bot.registerDispatcherHandlers()

	return bot, nil
}

// newBot builds the routing half of a Bot without any network client.
func newBot(cfg Config) *Bot {
	bot := &Bot{
		config:     cfg,
		dispatcher: tg.NewUpdateDispatcher(),
		busy:       newBusySet(),
		queue:      newSenderQueue(),
	}
	bot.albumCollector = newAlbumCollector(cfg.AlbumTimeout, bot.handleAlbum)
	return bot
}

// OnError sets the hook that receives handler errors and panics.
func (b *Bot) OnError(fn ErrorFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onError = fn
}

// OnMessage registers a handler for new messages.
func (b *Bot) OnMessage(filter Filter, fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messageHandlers = append(b.messageHandlers, handler{fn: fn, filter: filter})
}

// OnAlbum registers a handler for albums (grouped media).
func (b *Bot) OnAlbum(filter Filter, fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.albumHandlers = append(b.albumHandlers, handler{fn: fn, filter: filter})
}

// CommandDef defines a command with its metadata.
type CommandDef struct {
	// Name is the command name without the leading slash.
	Name string

	// Description is shown in the bot's command menu.
	Description string

	// Locked enables mutual exclusion for this command.
	// While it runs, other locked commands from the same user are dropped.
	Locked bool

	// Scope defines where the command is available (default: ScopeDefault).
	Scope CommandScope

	// LangCode is the language code for this command's description.
	LangCode string
}

// Command registers a command handler.
func (b *Bot) Command(name string, fn HandlerFunc) {
	b.CommandWithFilter(CommandDef{Name: name}, Filter{Incoming: true}, fn)
}

// CommandWithDesc registers a command with description (for menu sync).
func (b *Bot) CommandWithDesc(def CommandDef, fn HandlerFunc) {
	b.CommandWithFilter(def, Filter{Incoming: true}, fn)
}

// LockedCommandWithDesc registers a locked command with description.
func (b *Bot) LockedCommandWithDesc(def CommandDef, fn HandlerFunc) {
	def.Locked = true
	b.CommandWithFilter(def, Filter{Incoming: true}, fn)
}

// CommandWithFilter registers a command handler with a custom filter.
func (b *Bot) CommandWithFilter(def CommandDef, filter Filter, fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commandHandlers = append(b.commandHandlers, commandHandler{
		name:        def.Name,
		description: def.Description,
		fn:          fn,
		filter:      filter,
		locked:      def.Locked,
		scope:       def.Scope,
		langCode:    def.LangCode,
	})
}

// Run starts the bot and blocks until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer b.running.Store(false)

	b.queue = newSenderQueue()

	return b.client.Run(ctx, func(ctx context.Context) error {
		// Album flushes feed the queue, so they stop first.
		defer func() {
			b.albumCollector.stop()
			b.queue.close()
		}()

		status, err := b.client.Auth().Status(ctx)
		if err != nil {
			return err
		}
		if !status.Authorized {
			if _, err := b.client.Auth().Bot(ctx, b.config.BotToken); err != nil {
				return err
			}
		}

		self, err := b.client.Self(ctx)
		if err != nil {
			return err
		}
		b.api = tg.NewClient(b.client)

		if b.config.BotInfo != nil {
			if err := b.UpdateBotInfo(ctx, *b.config.BotInfo); err != nil {
				b.config.Logger.Warn("failed to update bot info", "error", err)
			}
		}

		if b.config.SyncCommands {
			if err := b.SyncCommands(ctx); err != nil {
				b.config.Logger.Warn("failed to sync commands", "error", err)
			}
		}

		b.config.Logger.Info("bot started", "id", self.ID, "username", self.Username)

		return b.gaps.Run(ctx, b.api, self.ID, updates.AuthOptions{
			OnStart: func(ctx context.Context) {
				b.config.Logger.Info("listening for updates")
			},
		})
	})
}
