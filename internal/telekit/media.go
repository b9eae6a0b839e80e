package telekit

import (
	"fmt"
	"strings"

	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/styling"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
)

// Attachment describes a document attached to a message.
type Attachment struct {
	// ID is the document ID. It is stable for the same file.
	ID int64

	MimeType string
	FileName string
	Size     int64

	// Video is true for documents with a video MIME type or video attribute.
	Video bool

	location tg.InputFileLocationClass
}

// Attachment returns the document attached to the message, if any.
// Videos sent as video or as file both arrive as documents over MTProto.
func (c *Context) Attachment() (*Attachment, bool) {
	return attachmentFromMedia(c.Media())
}

func attachmentFromMedia(media tg.MessageMediaClass) (*Attachment, bool) {
	m, ok := media.(*tg.MessageMediaDocument)
	if !ok {
		return nil, false
	}
	doc, ok := m.Document.(*tg.Document)
	if !ok {
		return nil, false
	}

	a := &Attachment{
		ID:       doc.ID,
		MimeType: doc.MimeType,
		Size:     doc.Size,
		Video:    strings.HasPrefix(doc.MimeType, "video/"),
		location: &tg.InputDocumentFileLocation{
			ID:            doc.ID,
			AccessHash:    doc.AccessHash,
			FileReference: doc.FileReference,
		},
	}

	for _, attr := range doc.Attributes {
		switch at := attr.(type) {
		case *tg.DocumentAttributeVideo:
			a.Video = true
		case *tg.DocumentAttributeFilename:
			a.FileName = at.FileName
		}
	}

	return a, true
}

// Download saves the attachment to path.
func (c *Context) Download(a *Attachment, path string) error {
	if a == nil || a.location == nil {
		return ErrNotDocument
	}
	if c.bot == nil || c.bot.api == nil {
		return ErrBotNotRunning
	}

	if _, err := downloader.NewDownloader().Download(c.bot.api, a.location).ToPath(c, path); err != nil {
		return fmt.Errorf("failed to download document %d: %w", a.ID, err)
	}
	return nil
}

// ReplyDocument uploads the file at path and sends it as a reply to the
// current message under the given file name.
func (c *Context) ReplyDocument(path, filename, caption string) error {
	if c.message == nil {
		return ErrNoMessage
	}
	if c.bot == nil || c.bot.api == nil {
		return ErrBotNotRunning
	}

	file, err := uploader.NewUploader(c.bot.api).FromPath(c, path)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	doc := message.UploadedDocument(file, styling.Plain(caption)).
		Filename(filename).
		MIME(mimeByName(filename))

	if _, err := c.sender().Reply(c.entities, c.updateToMessage()).Media(c, doc); err != nil {
		return fmt.Errorf("failed to send %s: %w", filename, err)
	}
	return nil
}

func mimeByName(name string) string {
	switch {
	case strings.HasSuffix(name, ".zip"):
		return "application/zip"
	case strings.HasSuffix(name, ".mp4"):
		return "video/mp4"
	}
	return "application/octet-stream"
}
