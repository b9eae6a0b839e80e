package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/en9inerd/vidzipbot/internal/collector"
	"github.com/en9inerd/vidzipbot/internal/telekit"
	"github.com/en9inerd/vidzipbot/internal/vidbot"
)

const (
	FlagSessionDir   = "session-dir"
	FlagVerbose      = "verbose"
	FlagSyncCommands = "sync-commands"
	FlagEnvFile      = "env-file"

	DefaultSessionDir = "./session"
	DefaultEnvFile    = ".env"
)

var version = "dev"

// settings is everything the bot needs from flags and environment.
type settings struct {
	BotToken     string
	AppID        int
	AppHash      string
	SessionDir   string
	Verbose      bool
	SyncCommands bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("VIDZIPBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("bot_token", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("app_id", "TELEGRAM_APP_ID")
	_ = v.BindEnv("app_hash", "TELEGRAM_APP_HASH")

	return v
}

// loadEnvFile loads path into the process environment. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func readSettings(v *viper.Viper) (settings, error) {
	s := settings{
		BotToken:     v.GetString("bot_token"),
		AppHash:      v.GetString("app_hash"),
		SessionDir:   v.GetString(FlagSessionDir),
		Verbose:      v.GetBool(FlagVerbose),
		SyncCommands: v.GetBool(FlagSyncCommands),
	}

	if raw := v.GetString("app_id"); raw != "" {
		id := v.GetInt("app_id")
		if id == 0 {
			return s, fmt.Errorf("invalid TELEGRAM_APP_ID %q", raw)
		}
		s.AppID = id
	}

	return s, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// RootCmd builds the vidzipbot command, which runs the bot until SIGINT or SIGTERM.
func RootCmd() *cobra.Command {
	v := newViper()

	r := &cobra.Command{
		Use:           "vidzipbot",
		Short:         "Telegram bot that bundles captioned videos into a zip file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(v.GetString(FlagEnvFile)); err != nil {
				return err
			}

			s, err := readSettings(v)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, s)
		},
	}

	r.PersistentFlags().String(FlagSessionDir, DefaultSessionDir, "directory for the MTProto session")
	r.PersistentFlags().Bool(FlagVerbose, false, "enable debug logging")
	r.PersistentFlags().Bool(FlagSyncCommands, true, "publish /start and /zip to the bot menu on startup")
	r.PersistentFlags().String(FlagEnvFile, DefaultEnvFile, "dotenv file with TELEGRAM_* variables")

	if err := v.BindPFlags(r.PersistentFlags()); err != nil {
		panic(err)
	}

	r.AddCommand(VersionCmd())

	return r
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the vidzipbot version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
		},
	}
}

func run(ctx context.Context, s settings) error {
	logger := newLogger(s.Verbose)
	slog.SetDefault(logger)

	ws, err := collector.NewWorkspace()
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Purge(); err != nil {
			logger.Warn("failed to remove workspace", "dir", ws.Dir(), "error", err)
			return
		}
		logger.Info("workspace removed", "dir", ws.Dir())
	}()
	logger.Info("workspace created", "dir", ws.Dir())

	bot, err := telekit.New(telekit.Config{
		APIID:        s.AppID,
		APIHash:      s.AppHash,
		BotToken:     s.BotToken,
		SessionDir:   s.SessionDir,
		Logger:       logger,
		DeviceModel:  "vidzipbot",
		AppVersion:   version,
		SyncCommands: s.SyncCommands,
		Verbose:      s.Verbose,
		BotInfo: &telekit.BotInfo{
			About:       vidbot.About,
			Description: vidbot.Description,
		},
	})
	if err != nil {
		return err
	}

	h := vidbot.New(collector.NewStore(), ws, logger)
	h.Register(bot)

	logger.Info("starting vidzipbot", "version", version)

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("vidzipbot stopped")
	return nil
}
