// Package service implements the enrollment, login and admin flows on top
// of the stores, the curriculum catalog and the pricing engine.
package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/sacarias/enrollment-system/internal/assessment"
	"github.com/sacarias/enrollment-system/internal/config"
	"github.com/sacarias/enrollment-system/internal/curriculum"
	"github.com/sacarias/enrollment-system/internal/models"
	"github.com/sacarias/enrollment-system/internal/repository"
)

// Flow errors. These abort only the current flow; the menu continues.
var (
	ErrUnknownEmail       = errors.New("no account found for that email")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrWrongAdminPassword = errors.New("incorrect admin password")
)

// AssessmentLocator finds saved assessment files for an email without
// exposing the directory layout: first by derived filename, then by
// scanning file contents.
type AssessmentLocator interface {
	FindByName(email string) (string, bool)
	FindByContent(email string) (string, bool)
}

// AssessmentStore persists assessment reports and reads them back.
type AssessmentStore interface {
	AssessmentLocator
	Save(rec *models.StudentRecord) (string, error)
	Read(name string) (string, error)
}

// Service handles the business logic behind the console menu.
type Service struct {
	creds    *repository.CredentialStore
	profiles *repository.ProfileStore
	files    AssessmentStore
	catalog  *curriculum.Catalog
	cfg      *config.Config
	log      *logrus.Logger
}

// NewService initializes a new service.
func NewService(creds *repository.CredentialStore, profiles *repository.ProfileStore,
	files AssessmentStore, catalog *curriculum.Catalog, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		creds:    creds,
		profiles: profiles,
		files:    files,
		catalog:  catalog,
		cfg:      cfg,
		log:      log,
	}
}

// Login checks the credential map. Passwords are compared verbatim; the
// credential file format stores them as entered.
func (s *Service) Login(email, password string) error {
	stored, ok := s.creds.Get(strings.ToLower(email))
	if !ok {
		return ErrUnknownEmail
	}
	if stored != password {
		return ErrWrongPassword
	}
	s.log.Infof("user logged in: %s", strings.ToLower(email))
	return nil
}

// VerifyAdmin checks the admin panel password against the configured hash.
func (s *Service) VerifyAdmin(password string) error {
	if err := bcrypt.CompareHashAndPassword(s.cfg.AdminHash, []byte(password)); err != nil {
		return ErrWrongAdminPassword
	}
	return nil
}

// AssessmentFor returns the display text for an account's assessment: the
// in-memory record if this run registered it, otherwise the contents of a
// saved assessment file found by name or by content scan.
func (s *Service) AssessmentFor(email string) (string, bool) {
	if rec, ok := s.profiles.Get(email); ok {
		return assessment.RenderConsole(rec), true
	}

	name, ok := s.files.FindByName(email)
	if !ok {
		name, ok = s.files.FindByContent(email)
	}
	if !ok {
		return "", false
	}

	content, err := s.files.Read(name)
	if err != nil {
		s.log.Errorf("failed to read assessment for %s: %v", email, err)
		return "", false
	}
	return "Assessment file: " + name + "\n\n" + content, true
}

// AccountRow is one line of the admin listing.
type AccountRow struct {
	Email    string
	Name     string
	Program  string
	Enrolled string
}

// Accounts lists all registered accounts sorted by email. Accounts
// registered in a previous run have no in-memory record and show N/A
// columns.
func (s *Service) Accounts() []AccountRow {
	emails := s.creds.List()
	sort.Strings(emails)

	rows := make([]AccountRow, 0, len(emails))
	for _, email := range emails {
		row := AccountRow{Email: email, Name: "N/A", Program: "N/A", Enrolled: "N/A"}
		if rec, ok := s.profiles.Get(email); ok {
			row.Name = rec.LastName + ", " + rec.FirstName
			row.Program = rec.Program.DisplayName()
			row.Enrolled = "NO"
			if rec.Payment.Enrolled {
				row.Enrolled = "YES"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// RegisteredCount returns the number of known accounts.
func (s *Service) RegisteredCount() int {
	return s.creds.Count()
}

// MinPasswordLen exposes the configured password minimum to the flows.
func (s *Service) MinPasswordLen() int {
	return s.cfg.MinPasswordLen
}
