package telekit

import (
	"context"
	"errors"
	"testing"

	"github.com/gotd/td/tg"
)

func TestAttachmentFromMedia(t *testing.T) {
	tests := []struct {
		name      string
		media     tg.MessageMediaClass
		wantOK    bool
		wantVideo bool
		wantName  string
	}{
		{
			name:   "no media",
			media:  nil,
			wantOK: false,
		},
		{
			name:   "photo",
			media:  &tg.MessageMediaPhoto{},
			wantOK: false,
		},
		{
			name:   "empty document",
			media:  &tg.MessageMediaDocument{Document: &tg.DocumentEmpty{ID: 1}},
			wantOK: false,
		},
		{
			name: "video by mime type",
			media: &tg.MessageMediaDocument{Document: &tg.Document{
				ID:       5,
				MimeType: "video/quicktime",
			}},
			wantOK:    true,
			wantVideo: true,
		},
		{
			name: "video by attribute",
			media: &tg.MessageMediaDocument{Document: &tg.Document{
				ID:       6,
				MimeType: "application/octet-stream",
				Attributes: []tg.DocumentAttributeClass{
					&tg.DocumentAttributeVideo{W: 640, H: 480},
					&tg.DocumentAttributeFilename{FileName: "clip.bin"},
				},
			}},
			wantOK:    true,
			wantVideo: true,
			wantName:  "clip.bin",
		},
		{
			name: "plain file",
			media: &tg.MessageMediaDocument{Document: &tg.Document{
				ID:       7,
				MimeType: "application/pdf",
				Attributes: []tg.DocumentAttributeClass{
					&tg.DocumentAttributeFilename{FileName: "doc.pdf"},
				},
			}},
			wantOK:   true,
			wantName: "doc.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := attachmentFromMedia(tt.media)
			if ok != tt.wantOK {
				t.Fatalf("attachmentFromMedia() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if a.Video != tt.wantVideo {
				t.Errorf("Video = %v, want %v", a.Video, tt.wantVideo)
			}
			if a.FileName != tt.wantName {
				t.Errorf("FileName = %q, want %q", a.FileName, tt.wantName)
			}
			if a.location == nil {
				t.Error("location not set")
			}
		})
	}
}

func TestContextCaption(t *testing.T) {
	ctx := &Context{message: videoMessage(1, 7, "My Trip")}
	if got := ctx.Caption(); got != "My Trip" {
		t.Errorf("Caption() = %q, want %q", got, "My Trip")
	}

	ctx = &Context{message: textMessage(2, 7, "plain text")}
	if got := ctx.Caption(); got != "" {
		t.Errorf("Caption() on text message = %q, want empty", got)
	}
}

func TestDownloadRequiresRunningBot(t *testing.T) {
	ctx := &Context{Context: context.Background(), bot: newTestBot(), message: videoMessage(1, 7, "clip")}

	a, ok := ctx.Attachment()
	if !ok {
		t.Fatal("Attachment() ok = false")
	}

	if err := ctx.Download(a, t.TempDir()+"/x.mp4"); !errors.Is(err, ErrBotNotRunning) {
		t.Errorf("Download() error = %v, want ErrBotNotRunning", err)
	}
	if err := ctx.Download(&Attachment{}, "x"); !errors.Is(err, ErrNotDocument) {
		t.Errorf("Download() without location error = %v, want ErrNotDocument", err)
	}
	if err := ctx.ReplyDocument("x.zip", "x.zip", ""); !errors.Is(err, ErrBotNotRunning) {
		t.Errorf("ReplyDocument() error = %v, want ErrBotNotRunning", err)
	}
}

func TestMimeByName(t *testing.T) {
	tests := map[string]string{
		"videos.zip": "application/zip",
		"clip.mp4":   "video/mp4",
		"notes":      "application/octet-stream",
	}
	for name, want := range tests {
		if got := mimeByName(name); got != want {
			t.Errorf("mimeByName(%q) = %q, want %q", name, got, want)
		}
	}
}
