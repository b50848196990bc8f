// Package pricing computes tuition and payment outcomes from the fixed
// pricing policy. Every function is pure: the same inputs always produce
// the same outcome.
package pricing

import (
	"math"

	"github.com/sacarias/enrollment-system/internal/models"
)

// Pricing policy constants.
const (
	UnitRate        = 350.0  // PHP per unit
	InstallmentFee  = 2000.0 // flat surcharge for installment plans
	MinDownPercent  = 0.20   // minimum downpayment share of total due
	MinInstallMonth = 2
	MaxInstallMonth = 6
)

// Tuition computes the assessed tuition for the given unit total, rounded
// half-up to a whole currency unit.
func Tuition(totalUnits int) float64 {
	return math.Round(float64(totalUnits) * UnitRate)
}

// TotalUnits sums the unit load of a subject list.
func TotalUnits(subjects []models.Subject) int {
	total := 0
	for _, s := range subjects {
		total += s.Units
	}
	return total
}

// Cash resolves a full-cash payment. Overpayment is allowed and simply
// clears the balance; enrollment requires covering the full total due.
func Cash(tuition, amountPaid float64) models.PaymentOutcome {
	out := models.PaymentOutcome{
		Method:     models.PaymentCash,
		Surcharge:  0,
		TotalDue:   tuition,
		AmountPaid: amountPaid,
	}
	out.Balance = math.Max(0, out.TotalDue-amountPaid)
	out.Enrolled = amountPaid >= out.TotalDue
	return out
}

// MinDown returns the minimum downpayment for an installment total.
func MinDown(totalDue float64) float64 {
	return totalDue * MinDownPercent
}

// Installment resolves an installment payment. The month count is always
// supplied even when the downpayment turns out to cover the full amount;
// it is simply unused when no monthly due remains.
func Installment(tuition, amountPaid float64, months int) models.PaymentOutcome {
	out := models.PaymentOutcome{
		Method:            models.PaymentInstallment,
		Surcharge:         InstallmentFee,
		TotalDue:          tuition + InstallmentFee,
		AmountPaid:        amountPaid,
		InstallmentMonths: months,
	}
	out.Balance = math.Max(0, out.TotalDue-amountPaid)

	switch {
	case amountPaid < MinDown(out.TotalDue):
		// Downpayment below the minimum: not enrolled, no plan started.
		out.Enrolled = false
		out.MonthlyDue = 0
	case amountPaid >= out.TotalDue:
		out.Enrolled = true
		out.Balance = 0
		out.MonthlyDue = 0
	default:
		out.Enrolled = false
		out.MonthlyDue = out.Balance / float64(months)
	}
	return out
}

// GWAAverage is the arithmetic mean of the three sem-level GWA entries.
// It is informational only and does not feed the payment computation.
func GWAAverage(sem1, sem2, sem3 float64) float64 {
	return (sem1 + sem2 + sem3) / 3.0
}
