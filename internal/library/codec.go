package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	BackupFilePrefix = "pile-a-lire-backup-"
	BackupFileExt    = ".json"
)

// ExportData renders data as 2-space indented JSON without a trailing newline.
func ExportData(data AppData) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data.Normalize()); err != nil {
		// AppData holds only strings, ints and slices of them.
		panic(fmt.Sprintf("library: encode AppData: %v", err))
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

type importDocument struct {
	Books    []Book         `json:"books"`
	Comments []Comment      `json:"comments"`
	Stats    []ReadingStats `json:"stats"`
}

// ImportData parses an exported document. Missing sections become empty
// lists; anything that is not JSON, or that breaks the book invariants,
// fails with ErrMalformedImport.
func ImportData(text string) (AppData, error) {
	raw := []byte(text)
	if !json.Valid(raw) {
		return AppData{}, fmt.Errorf("%w: not a JSON document", ErrMalformedImport)
	}

	var doc importDocument
	switch firstByte(raw) {
	case '{':
		if err := json.Unmarshal(raw, &doc); err != nil {
			return AppData{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
		}
	case 'n':
		return AppData{}, fmt.Errorf("%w: document is null", ErrMalformedImport)
	default:
		// Arrays and scalars carry no sections.
	}

	data := AppData{Books: doc.Books, Comments: doc.Comments, Stats: doc.Stats}.Normalize()
	if err := Validate(data); err != nil {
		return AppData{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	return data, nil
}

func firstByte(b []byte) byte {
	b = bytes.TrimLeft(b, " \t\r\n")
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

// DownloadJSON writes the ExportData payload to w unchanged.
func DownloadJSON(w io.Writer, data AppData) error {
	_, err := io.WriteString(w, ExportData(data))
	return err
}

// BackupFileName returns pile-a-lire-backup-<YYYY-MM-DD>.json for t's UTC date.
func BackupFileName(t time.Time) string {
	return BackupFilePrefix + t.UTC().Format("2006-01-02") + BackupFileExt
}

// WriteBackup stores the export payload in dir under BackupFileName(t) and
// returns the file path. An existing backup for the same day is replaced.
func WriteBackup(dir string, data AppData, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(dir, BackupFileName(t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	if err := DownloadJSON(f, data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write backup file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close backup file: %w", err)
	}
	return path, nil
}
