// Package upload validates and stores complaint attachments on local disk.
package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Mohd-obaidullah/complaint-box/internal/config"
)

// ErrDisallowedExtension rejects files outside the extension allow-list.
var ErrDisallowedExtension = errors.New("file type not allowed")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store saves attachments into Dir, creating it on demand.
type Store struct {
	Dir string
}

// NewStore creates an attachment store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Allowed reports whether the filename carries an allow-listed extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && config.AllowedUploadExtensions[ext]
}

// SanitizeFilename strips any directory components and collapses
// everything outside [A-Za-z0-9._-] to underscores.
func SanitizeFilename(filename string) string {
	base := filepath.Base(filepath.Clean(filename))
	base = unsafeChars.ReplaceAllString(base, "_")
	return strings.Trim(base, "._")
}

// StoredName builds the on-disk name: a second-resolution timestamp prefix
// plus the sanitized original name. Best-effort collision avoidance, not
// collision-proof.
func StoredName(filename string, now time.Time) string {
	return now.Format(config.UploadTimestampLayout) + SanitizeFilename(filename)
}

// Save writes the uploaded file under Dir and returns the stored filename.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if !Allowed(file.Filename) {
		return "", ErrDisallowedExtension
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	name := StoredName(file.Filename, time.Now())
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := writeFile(filepath.Join(s.Dir, name), src); err != nil {
		return "", err
	}
	return name, nil
}

// writeFile copies src into path, removing the partial file if the copy
// fails so failed uploads leave no orphan behind.
func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}

// Path resolves a stored filename inside Dir, refusing anything that would
// escape it.
func (s *Store) Path(filename string) (string, error) {
	clean := SanitizeFilename(filename)
	if clean == "" || clean != filename {
		return "", os.ErrNotExist
	}
	return filepath.Join(s.Dir, clean), nil
}
