package collector

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
	}{
		{"punctuation stripped", "My Trip! (2024)", "My_Trip_2024.mp4"},
		{"plain word", "holiday", "holiday.mp4"},
		{"allowed symbols kept", "a-b_c", "a-b_c.mp4"},
		{"surrounding spaces trimmed", "  hello world  ", "hello_world.mp4"},
		{"double space kept as two underscores", "a  b", "a__b.mp4"},
		{"tabs and newlines dropped", "line\tone\ntwo", "lineonetwo.mp4"},
		{"non-ascii letters dropped", "Видео 1", "1.mp4"},
		{"emoji dropped", "🎬 clip", "clip.mp4"},
		{"empty caption", "", ".mp4"},
		{"nothing survives", "!!!", ".mp4"},
		{"path separators dropped", "../etc/passwd", "etcpasswd.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.caption); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.caption, got, tt.want)
			}
		})
	}
}

func TestSanitizeNameAlphabet(t *testing.T) {
	check := func(caption string) bool {
		got := SanitizeName(caption)
		if !strings.HasSuffix(got, VideoExt) {
			return false
		}
		for _, r := range strings.TrimSuffix(got, VideoExt) {
			if !isNameRune(r) || r == ' ' {
				return false
			}
		}
		return true
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestSanitizeNameIdentityOnSafeInput(t *testing.T) {
	const alphabet = "abcXYZ019 -_"

	check := func(picks []uint8) bool {
		var b strings.Builder
		for _, p := range picks {
			b.WriteByte(alphabet[int(p)%len(alphabet)])
		}
		caption := strings.TrimSpace(b.String())
		want := strings.ReplaceAll(caption, " ", "_") + VideoExt
		return SanitizeName(caption) == want
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestArchiveName(t *testing.T) {
	tests := []struct {
		first string
		want  string
	}{
		{"My_Trip_2024.mp4", "My_Trip_2024.zip"},
		{"clip.v2.mp4", "clip.v2.zip"},
		{"noext", "noext.zip"},
	}

	for _, tt := range tests {
		if got := ArchiveName(tt.first); got != tt.want {
			t.Errorf("ArchiveName(%q) = %q, want %q", tt.first, got, tt.want)
		}
	}
}
