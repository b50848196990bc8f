package assessment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sacarias/enrollment-system/internal/models"
)

// Store writes assessment reports into a directory and finds them again by
// email, first by filename and then by scanning file contents.
type Store struct {
	dir string
	log *logrus.Logger
}

// NewStore initializes a store over the given directory.
func NewStore(dir string, log *logrus.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Save renders the record and writes its assessment file, overwriting any
// previous report with the same derived name. The filename is returned.
func (s *Store) Save(rec *models.StudentRecord) (string, error) {
	name := Filename(rec)
	content := Render(rec, time.Now())
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write assessment file %s: %w", name, err)
	}
	return name, nil
}

// FindByName looks for an assessment file whose name starts with the
// sanitized email.
func (s *Store) FindByName(email string) (string, bool) {
	if email == "" {
		return "", false
	}
	prefix := filePrefix + SafeName(email)
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warnf("failed to list assessment directory: %v", err)
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, fileSuffix) {
			return name, true
		}
	}
	return "", false
}

// FindByContent scans every assessment file for a case-insensitive
// occurrence of the email. Unreadable files are logged and skipped.
func (s *Store) FindByContent(email string) (string, bool) {
	if email == "" {
		return "", false
	}
	needle := strings.ToLower(email)
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warnf("failed to list assessment directory: %v", err)
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, strings.ToLower(filePrefix)) || !strings.HasSuffix(lower, fileSuffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.log.Warnf("failed to scan assessment file %s: %v", name, err)
			continue
		}
		if strings.Contains(strings.ToLower(string(data)), needle) {
			return name, true
		}
	}
	return "", false
}

// Read returns the contents of a previously found assessment file.
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read assessment file %s: %w", name, err)
	}
	return string(data), nil
}
