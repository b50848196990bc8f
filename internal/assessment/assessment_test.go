package assessment

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sacarias/enrollment-system/internal/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleRecord() *models.StudentRecord {
	return &models.StudentRecord{
		Email:      "juan.cruz@example.com",
		FirstName:  "Juan",
		LastName:   "Cruz",
		MiddleName: "Santos",
		LRN:        "123456789012",
		Program:    models.NewBSIT(models.SpecWebMobile),
		YearLevel:  1,
		Semester:   1,
		Subjects: []models.Subject{
			{Code: "IT111", Name: "Introduction to Computing", Units: 3},
			{Code: "IT112", Name: "Computer Programming 1", Units: 3},
		},
		TotalUnits: 6,
		Tuition:    2100,
		Payment: models.PaymentOutcome{
			Method:     models.PaymentCash,
			TotalDue:   2100,
			AmountPaid: 2100,
			Enrolled:   true,
		},
	}
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Juan_Cruz", SafeName("Juan Cruz"))
	assert.Equal(t, "juan_cruz_example_com", SafeName("juan.cruz@example.com"))
	assert.Equal(t, "unknown", SafeName(""))
	assert.Equal(t, "a-b_c", SafeName("a-b c"))
}

func TestFilenameDerivation(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, "Assessment_Juan_Cruz.txt", Filename(rec))

	rec.FirstName = ""
	assert.Equal(t, "Assessment_juan_cruz_example_com.txt", Filename(rec))

	rec.Email = ""
	name := Filename(rec)
	assert.Contains(t, name, "Assessment_unknown_")
	assert.Contains(t, name, ".txt")
}

func TestRenderCashLayout(t *testing.T) {
	out := Render(sampleRecord(), time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC))
	assert.Contains(t, out, "SACARIAS - ASSESSMENT")
	assert.Contains(t, out, "Generated: 2026-08-23 10:30:00")
	assert.Contains(t, out, "Student Name : Cruz, Juan Santos")
	assert.Contains(t, out, "LRN          : 123456789012")
	assert.Contains(t, out, "juan.cruz@example.com")
	assert.Contains(t, out, "(Web & Mobile App Development)")
	assert.Contains(t, out, "Year/Term    : Year 1 - 1st Semester")
	assert.Contains(t, out, "IT111 - Introduction to Computing (3 units)")
	assert.Contains(t, out, "Total Units: 6")
	assert.Contains(t, out, "Tuition: PHP 2,100.00")
	assert.Contains(t, out, "ENROLLED: YES")
	assert.NotContains(t, out, "Install Fee")
}

func TestRenderInstallmentLayout(t *testing.T) {
	rec := sampleRecord()
	rec.Payment = models.PaymentOutcome{
		Method:            models.PaymentInstallment,
		Surcharge:         2000,
		TotalDue:          4100,
		AmountPaid:        1000,
		Balance:           3100,
		InstallmentMonths: 4,
		MonthlyDue:        0,
		Enrolled:          false,
	}
	out := Render(rec, time.Now())
	assert.Contains(t, out, "Install Fee: PHP 2,000.00")
	assert.Contains(t, out, "Total Due: PHP 4,100.00")
	assert.Contains(t, out, "Monthly due (4 months): PHP 0.00")
	assert.Contains(t, out, "ENROLLED: NO")
}

func TestSaveAndFindByName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, quietLogger())
	rec := sampleRecord()

	name, err := store.Save(rec)
	require.NoError(t, err)
	assert.Equal(t, "Assessment_Juan_Cruz.txt", name)

	// The name-based lookup misses: the file is keyed by student name,
	// not email.
	_, found := store.FindByName(rec.Email)
	assert.False(t, found)

	// The content scan finds the embedded email regardless of case.
	got, found := store.FindByContent("Juan.Cruz@Example.COM")
	require.True(t, found)
	assert.Equal(t, name, got)

	content, err := store.Read(got)
	require.NoError(t, err)
	assert.Contains(t, content, "juan.cruz@example.com")
}

func TestFindByNamePrefixMatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, quietLogger())

	rec := sampleRecord()
	rec.FirstName = ""
	rec.LastName = ""
	name, err := store.Save(rec)
	require.NoError(t, err)
	assert.Equal(t, "Assessment_juan_cruz_example_com.txt", name)

	got, found := store.FindByName("juan.cruz@example.com")
	require.True(t, found)
	assert.Equal(t, name, got)
}

func TestSaveOverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, quietLogger())
	rec := sampleRecord()

	_, err := store.Save(rec)
	require.NoError(t, err)
	rec.Payment.Enrolled = false
	name, err := store.Save(rec)
	require.NoError(t, err)

	content, err := store.Read(name)
	require.NoError(t, err)
	assert.Contains(t, content, "ENROLLED: NO")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, name, filepath.Base(entries[0].Name()))
}
