// Package assessment renders and persists the per-student assessment
// report, and locates previously saved reports by email.
package assessment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sacarias/enrollment-system/internal/models"
)

const (
	filePrefix = "Assessment_"
	fileSuffix = ".txt"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

var money = message.NewPrinter(language.English)

// SafeName replaces every character outside [A-Za-z0-9_-] with an
// underscore so the result is usable as a filename component.
func SafeName(s string) string {
	if s == "" {
		return "unknown"
	}
	return unsafeChars.ReplaceAllString(s, "_")
}

// Filename derives the deterministic assessment filename for a record:
// sanitized first_last, else sanitized email, else a random fallback.
func Filename(rec *models.StudentRecord) string {
	var base string
	switch {
	case strings.TrimSpace(rec.FirstName) != "" && strings.TrimSpace(rec.LastName) != "":
		base = SafeName(rec.FirstName + "_" + rec.LastName)
	case strings.TrimSpace(rec.Email) != "":
		base = SafeName(rec.Email)
	default:
		base = "unknown_" + uuid.NewString()
	}
	return filePrefix + base + fileSuffix
}

// Render produces the fixed-layout report written to the assessment file.
func Render(rec *models.StudentRecord, now time.Time) string {
	var b strings.Builder
	b.WriteString("SACARIAS - ASSESSMENT\n")
	b.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n\n")
	b.WriteString("Student Name : " + rec.FullName() + "\n")
	if rec.LRN != "" {
		b.WriteString("LRN          : " + rec.LRN + "\n")
	}
	b.WriteString("Email        : " + rec.Email + "\n")
	if rec.ReferenceID != "" {
		b.WriteString("Reference    : " + rec.ReferenceID + "\n")
	}
	b.WriteString("Program      : " + rec.Program.Label() + "\n")
	fmt.Fprintf(&b, "Year/Term    : Year %d - %s\n\n", rec.YearLevel, models.SemesterLabel(rec.Semester))

	b.WriteString("Subjects:\n")
	for _, s := range rec.Subjects {
		fmt.Fprintf(&b, "  %s - %s (%d units)\n", s.Code, s.Name, s.Units)
	}

	fmt.Fprintf(&b, "\nTotal Units: %d\n", rec.TotalUnits)
	money.Fprintf(&b, "Tuition: PHP %.2f\n", rec.Tuition)

	pay := rec.Payment
	if pay.Method == models.PaymentInstallment {
		money.Fprintf(&b, "Install Fee: PHP %.2f\n", pay.Surcharge)
		money.Fprintf(&b, "Total Due: PHP %.2f\n", pay.TotalDue)
		money.Fprintf(&b, "Amount Paid: PHP %.2f\n", pay.AmountPaid)
		money.Fprintf(&b, "Balance: PHP %.2f\n", pay.Balance)
		money.Fprintf(&b, "Monthly due (%d months): PHP %.2f\n", pay.InstallmentMonths, pay.MonthlyDue)
	} else {
		money.Fprintf(&b, "Amount Paid: PHP %.2f\n", pay.AmountPaid)
		money.Fprintf(&b, "Balance: PHP %.2f\n", pay.Balance)
	}

	b.WriteString("\nENROLLED: " + yesNo(pay.Enrolled) + "\n")
	return b.String()
}

// RenderConsole produces the on-screen assessment layout shown after login
// and in the admin detail view.
func RenderConsole(rec *models.StudentRecord) string {
	var b strings.Builder
	b.WriteString("Student Name : " + rec.FullName() + "\n")
	if rec.LRN != "" {
		b.WriteString("LRN          : " + rec.LRN + "\n")
	}
	b.WriteString("Program      : " + rec.Program.Label() + "\n")
	fmt.Fprintf(&b, "Year/Term    : Year %d - %s\n", rec.YearLevel, models.SemesterLabel(rec.Semester))
	b.WriteString("-------------------------------------------------------\n")
	fmt.Fprintf(&b, "%-8s %-60s %s\n", "Code", "Subject", "Units")
	b.WriteString("-------------------------------------------------------\n")
	for _, s := range rec.Subjects {
		fmt.Fprintf(&b, "%-8s %-60s %2d\n", s.Code, s.Name, s.Units)
	}
	b.WriteString("-------------------------------------------------------\n")
	fmt.Fprintf(&b, "Total Units  : %d\n", rec.TotalUnits)
	money.Fprintf(&b, "Tuition      : PHP %.2f\n", rec.Tuition)

	pay := rec.Payment
	if pay.Method == models.PaymentInstallment {
		money.Fprintf(&b, "Install Fee  : PHP %.2f\n", pay.Surcharge)
		money.Fprintf(&b, "Total Due    : PHP %.2f\n", pay.TotalDue)
		money.Fprintf(&b, "Amount Paid  : PHP %.2f\n", pay.AmountPaid)
		money.Fprintf(&b, "Balance      : PHP %.2f\n", pay.Balance)
		if pay.InstallmentMonths > 0 {
			money.Fprintf(&b, "Monthly Due  : PHP %.2f (%d months)\n", pay.MonthlyDue, pay.InstallmentMonths)
		}
	} else {
		money.Fprintf(&b, "Amount Paid  : PHP %.2f\n", pay.AmountPaid)
		money.Fprintf(&b, "Balance      : PHP %.2f\n", pay.Balance)
	}
	b.WriteString("ENROLLED: " + yesNo(pay.Enrolled) + "\n")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
