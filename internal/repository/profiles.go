package repository

import (
	"strings"

	"github.com/sacarias/enrollment-system/internal/models"
)

// ProfileStore is the in-memory directory of finalized student records,
// keyed by lowercased email. Records live for the process lifetime and are
// never deleted.
type ProfileStore struct {
	records map[string]*models.StudentRecord
}

// NewProfileStore initializes an empty directory.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{records: make(map[string]*models.StudentRecord)}
}

// Put stores a record under its email.
func (s *ProfileStore) Put(rec *models.StudentRecord) {
	s.records[strings.ToLower(rec.Email)] = rec
}

// Get returns the record for an email, if one was registered this run.
func (s *ProfileStore) Get(email string) (*models.StudentRecord, bool) {
	rec, ok := s.records[strings.ToLower(email)]
	return rec, ok
}
