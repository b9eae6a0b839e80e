package collector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// ErrNoRecords is returned when an archive is requested for an empty collection.
var ErrNoRecords = errors.New("collector: no records to archive")

// WriteArchive writes every record into a new zip file at path, each under
// its sanitized name and in collection order. Videos are stored as-is since
// they are already compressed.
//
// Names are not deduplicated: two records with the same name produce two
// entries and the later one wins when the archive is extracted.
func WriteArchive(path string, records []Record) (err error) {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(f)
	for _, r := range records {
		if err := addFile(zw, r); err != nil {
			_ = zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, r Record) error {
	src, err := os.Open(r.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.Name, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", r.Name, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", r.Name, err)
	}
	header.Name = r.Name
	header.Method = zip.Store

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", r.Name, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.Name, err)
	}
	return nil
}
