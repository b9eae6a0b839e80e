package collector

import (
	"path/filepath"
	"strings"
)

// File extensions used for collected videos and generated archives.
const (
	VideoExt   = ".mp4"
	ArchiveExt = ".zip"
)

// SanitizeName turns a caption into a file name. Only ASCII letters, digits,
// spaces, hyphens and underscores are kept, surrounding spaces are trimmed,
// inner spaces become underscores and VideoExt is appended.
//
// An empty (or fully stripped) caption yields just VideoExt; callers are
// expected to reject empty captions before getting here.
func SanitizeName(caption string) string {
	var b strings.Builder
	b.Grow(len(caption) + len(VideoExt))

	for _, r := range caption {
		if isNameRune(r) {
			b.WriteRune(r)
		}
	}

	name := strings.TrimSpace(b.String())
	return strings.ReplaceAll(name, " ", "_") + VideoExt
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '_':
		return true
	}
	return false
}

// BaseName returns name without its extension.
func BaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ArchiveName returns the external file name of an archive whose first
// entry is named first.
func ArchiveName(first string) string {
	return BaseName(first) + ArchiveExt
}
