package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkspacePathsAreDisjoint(t *testing.T) {
	ws, err := OpenWorkspace(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]string)
	add := func(label, p string) {
		if other, ok := seen[p]; ok {
			t.Errorf("%s and %s share path %s", label, other, p)
		}
		seen[p] = label
	}

	for _, user := range []int64{1, 2, 11} {
		for _, att := range []int64{1, 2, 12} {
			add("video", ws.VideoPath(user, att))
		}
		add("archive", ws.ArchivePath(user))
	}

	if got := filepath.Base(ws.VideoPath(7, 99)); got != "temp_7_99.mp4" {
		t.Errorf("VideoPath() base = %q, want temp_7_99.mp4", got)
	}
	if got := filepath.Base(ws.ArchivePath(7)); got != "videos_7.zip" {
		t.Errorf("ArchivePath() base = %q, want videos_7.zip", got)
	}
}

func TestWorkspaceRemove(t *testing.T) {
	ws, err := OpenWorkspace(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	existing := ws.VideoPath(1, 1)
	if err := os.WriteFile(existing, []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ws.Remove(existing, ws.VideoPath(1, 2), ws.ArchivePath(1)); err != nil {
		t.Fatalf("Remove() error = %v, want nil for missing files", err)
	}

	if _, err := os.Stat(existing); !os.IsNotExist(err) {
		t.Errorf("file %s still exists after Remove()", existing)
	}
}

func TestNewWorkspaceAndPurge(t *testing.T) {
	ws, err := NewWorkspace()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(filepath.Base(ws.Dir()), WorkspacePrefix) {
		t.Errorf("workspace dir %q lacks prefix %q", ws.Dir(), WorkspacePrefix)
	}

	if err := os.WriteFile(ws.ArchivePath(3), []byte("zip"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ws.Purge(); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if _, err := os.Stat(ws.Dir()); !os.IsNotExist(err) {
		t.Errorf("workspace %s still exists after Purge()", ws.Dir())
	}
}
