package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WorkspacePrefix is the name prefix of the process-wide temporary directory.
const WorkspacePrefix = "video_bot_"

// Workspace is the directory holding every downloaded video and generated
// archive for the lifetime of the process. File names embed the user ID
// (and the attachment ID for videos), so sessions never share a path.
type Workspace struct {
	dir string
}

// NewWorkspace creates a fresh workspace under the OS temp directory.
func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", WorkspacePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// OpenWorkspace uses dir as the workspace, creating it if needed.
func OpenWorkspace(dir string) (*Workspace, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// VideoPath returns the download path for a user's attachment.
func (w *Workspace) VideoPath(userID, attachmentID int64) string {
	return filepath.Join(w.dir, fmt.Sprintf("temp_%d_%d%s", userID, attachmentID, VideoExt))
}

// ArchivePath returns the path of a user's archive.
func (w *Workspace) ArchivePath(userID int64) string {
	return filepath.Join(w.dir, fmt.Sprintf("videos_%d%s", userID, ArchiveExt))
}

// Remove deletes the given files. Missing files are not an error; other
// failures are collected and returned together after every path was tried.
func (w *Workspace) Remove(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Purge removes the workspace and everything in it.
func (w *Workspace) Purge() error {
	return os.RemoveAll(w.dir)
}
