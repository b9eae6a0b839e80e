package vidbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/en9inerd/vidzipbot/internal/collector"
	"github.com/en9inerd/vidzipbot/internal/telekit"
)

// Event is the part of a telekit.Context the handlers use.
type Event interface {
	context.Context

	SenderID() int64
	Caption() string
	Attachment() (*telekit.Attachment, bool)
	Download(a *telekit.Attachment, path string) error
	Reply(text string) error
	ReplyDocument(path, filename, caption string) error
}

// Handlers implements the video collector on top of a session store and a
// temporary workspace.
type Handlers struct {
	store  *collector.Store
	ws     *collector.Workspace
	logger *slog.Logger
}

// New creates the handlers. A nil logger means slog.Default().
func New(store *collector.Store, ws *collector.Workspace, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:  store,
		ws:     ws,
		logger: logger,
	}
}

// Start sends the instructions and starts a fresh session.
func (h *Handlers) Start(ev Event) error {
	h.reset(ev.SenderID())
	return ev.Reply(msgInstructions)
}

// Video downloads a captioned video into the workspace and adds it to the
// sender's collection.
func (h *Handlers) Video(ev Event) error {
	att, ok := ev.Attachment()
	if !ok || !att.Video {
		return ev.Reply(msgInvalidVideo)
	}

	caption := ev.Caption()
	if strings.TrimSpace(caption) == "" {
		return ev.Reply(msgMissingCaption)
	}

	userID := ev.SenderID()
	path := h.ws.VideoPath(userID, att.ID)

	if err := ev.Download(att, path); err != nil {
		if rmErr := h.ws.Remove(path); rmErr != nil {
			h.logger.Warn("failed to remove partial download", "path", path, "error", rmErr)
		}
		return fmt.Errorf("download video: %w", err)
	}

	name := collector.SanitizeName(caption)
	total := h.store.Add(userID, collector.Record{Path: path, Name: name})

	h.logger.Debug("video collected",
		"sender_id", userID,
		"attachment_id", att.ID,
		"file_name", att.FileName,
		"size", att.Size,
		"name", name,
		"total", total)

	return ev.Reply(msgSaved(name, total))
}

// Album ingests every video of a media group in order. A failed item does
// not stop the rest; all failures are returned together.
func (h *Handlers) Album(items []Event) error {
	var errs []error
	for _, item := range items {
		if err := h.Video(item); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Zip builds the archive of everything the sender collected and sends it
// back. The collection and every temp file are gone afterwards whether the
// build worked or not.
func (h *Handlers) Zip(ev Event) error {
	userID := ev.SenderID()

	records := h.store.Take(userID)
	if len(records) == 0 {
		return ev.Reply(msgNoVideos)
	}

	buildID := uuid.NewString()
	archivePath := h.ws.ArchivePath(userID)
	filename := collector.ArchiveName(records[0].Name)

	log := h.logger.With("build_id", buildID, "sender_id", userID)
	log.Info("building archive", "videos", len(records), "filename", filename)

	defer h.cleanup(log, records, archivePath)

	if err := h.build(ev, archivePath, filename, records); err != nil {
		log.Warn("archive build failed", "error", err)
		return ev.Reply(msgArchiveFailed(err))
	}

	log.Info("archive sent")
	return nil
}

func (h *Handlers) build(ev Event, archivePath, filename string, records []collector.Record) error {
	if err := collector.WriteArchive(archivePath, records); err != nil {
		return err
	}
	return ev.ReplyDocument(archivePath, filename, msgArchiveCaption)
}

// Error is the lifecycle hook for failures nothing else handled. It drops
// the sender's collection and files.
func (h *Handlers) Error(ev Event, err error) {
	userID := ev.SenderID()
	h.logger.Error("error while processing update", "sender_id", userID, "error", err)

	if userID == 0 {
		return
	}
	h.reset(userID)
}

// reset empties the session and deletes its files.
func (h *Handlers) reset(userID int64) {
	records := h.store.Take(userID)
	h.cleanup(h.logger.With("sender_id", userID), records, h.ws.ArchivePath(userID))
}

func (h *Handlers) cleanup(log *slog.Logger, records []collector.Record, archivePath string) {
	paths := make([]string, 0, len(records)+1)
	for _, r := range records {
		paths = append(paths, r.Path)
	}
	paths = append(paths, archivePath)

	if err := h.ws.Remove(paths...); err != nil {
		log.Warn("failed to remove temp files", "error", err)
	}
}
