// Package repository provides the process-wide stores: the file-backed
// credential map and the in-memory student record directory. The process
// serves one interactive session at a time, so no locking is involved.
package repository

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sacarias/enrollment-system/internal/prompt"
)

// CredentialStore keeps email/password pairs, loaded from and appended to
// an `email|password` line-oriented file. Passwords are stored verbatim;
// the file format is fixed.
type CredentialStore struct {
	path  string
	log   *logrus.Logger
	creds map[string]string
}

// NewCredentialStore initializes a store over the given file path.
func NewCredentialStore(path string, log *logrus.Logger) *CredentialStore {
	return &CredentialStore{
		path:  path,
		log:   log,
		creds: make(map[string]string),
	}
}

// Load reads the credential file. A missing file is not an error. Malformed
// lines and invalid emails are skipped and logged; on duplicate emails the
// first occurrence wins.
func (s *CredentialStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open credential file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			s.log.Warnf("malformed credential line %d: %s", lineNo, line)
			continue
		}
		email := strings.ToLower(strings.TrimSpace(parts[0]))
		if !prompt.IsValidEmail(email) {
			s.log.Warnf("invalid email on credential line %d: %s", lineNo, email)
			continue
		}
		if _, exists := s.creds[email]; !exists {
			s.creds[email] = parts[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read credential file: %w", err)
	}
	return nil
}

// Get returns the stored password for an email.
func (s *CredentialStore) Get(email string) (string, bool) {
	pwd, ok := s.creds[strings.ToLower(email)]
	return pwd, ok
}

// Has reports whether the email is already registered.
func (s *CredentialStore) Has(email string) bool {
	_, ok := s.creds[strings.ToLower(email)]
	return ok
}

// PutIfAbsent registers a new credential pair, appending it to the file.
// The in-memory map is updated even when the file append fails, so a
// completed registration survives a persistence failure for the rest of
// the process lifetime; the write error is returned for the caller to
// surface.
func (s *CredentialStore) PutIfAbsent(email, password string) error {
	email = strings.ToLower(email)
	if _, exists := s.creds[email]; exists {
		return fmt.Errorf("email %s is already registered", email)
	}
	s.creds[email] = password

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open credential file for append: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s|%s\n", email, password); err != nil {
		return fmt.Errorf("failed to append credential: %w", err)
	}
	return nil
}

// List returns all registered emails sorted ascending.
func (s *CredentialStore) List() []string {
	emails := make([]string, 0, len(s.creds))
	for email := range s.creds {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// Count returns the number of registered accounts.
func (s *CredentialStore) Count() int {
	return len(s.creds)
}
