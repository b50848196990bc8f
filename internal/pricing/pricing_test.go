package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sacarias/enrollment-system/internal/models"
)

func TestTuition(t *testing.T) {
	assert.Equal(t, 8750.0, Tuition(25))
	assert.Equal(t, 0.0, Tuition(0))
	assert.Equal(t, 350.0, Tuition(1))
}

func TestTotalUnits(t *testing.T) {
	subjects := []models.Subject{
		{Code: "IT111", Name: "Introduction to Computing", Units: 3},
		{Code: "PE1", Name: "Physical Activity I", Units: 2},
		{Code: "NSTP1", Name: "NSTP 1", Units: 3},
	}
	assert.Equal(t, 8, TotalUnits(subjects))
	assert.Equal(t, 0, TotalUnits(nil))
}

func TestCashExactPayment(t *testing.T) {
	out := Cash(8750, 8750)
	assert.True(t, out.Enrolled)
	assert.Equal(t, 0.0, out.Balance)
	assert.Equal(t, 8750.0, out.TotalDue)
	assert.Equal(t, 0.0, out.Surcharge)
}

func TestCashUnderpayment(t *testing.T) {
	out := Cash(8750, 5000)
	assert.False(t, out.Enrolled)
	assert.Equal(t, 3750.0, out.Balance)
}

func TestCashOverpaymentAllowed(t *testing.T) {
	out := Cash(8750, 10000)
	assert.True(t, out.Enrolled)
	assert.Equal(t, 0.0, out.Balance)
	assert.Equal(t, 10000.0, out.AmountPaid)
}

func TestInstallmentBelowMinimumDown(t *testing.T) {
	// tuition 8750 + 2000 fee = 10750 due, min down 2150
	out := Installment(8750, 2000, 4)
	assert.False(t, out.Enrolled)
	assert.Equal(t, 10750.0, out.TotalDue)
	assert.Equal(t, 8750.0, out.Balance)
	// Below the minimum down the plan never starts, so no monthly due.
	assert.Equal(t, 0.0, out.MonthlyDue)
	assert.Equal(t, 4, out.InstallmentMonths)
}

func TestInstallmentAcceptedDown(t *testing.T) {
	out := Installment(8750, 2750, 4)
	assert.False(t, out.Enrolled)
	assert.Equal(t, 8000.0, out.Balance)
	assert.Equal(t, 2000.0, out.MonthlyDue)
}

func TestInstallmentFullPayment(t *testing.T) {
	out := Installment(8750, 10750, 6)
	assert.True(t, out.Enrolled)
	assert.Equal(t, 0.0, out.Balance)
	assert.Equal(t, 0.0, out.MonthlyDue)
	// Months were still collected before the decision.
	assert.Equal(t, 6, out.InstallmentMonths)
}

func TestInstallmentOverpayment(t *testing.T) {
	out := Installment(8750, 12000, 2)
	assert.True(t, out.Enrolled)
	assert.Equal(t, 0.0, out.Balance)
}

func TestMonthlyDueImpliesMonths(t *testing.T) {
	for months := MinInstallMonth; months <= MaxInstallMonth; months++ {
		out := Installment(8750, 3000, months)
		if out.MonthlyDue > 0 {
			assert.Greater(t, out.InstallmentMonths, 0)
			assert.InDelta(t, out.Balance/float64(months), out.MonthlyDue, 1e-9)
		}
	}
}

func TestMinDown(t *testing.T) {
	assert.InDelta(t, 2150.0, MinDown(10750), 1e-9)
}

func TestGWAAverage(t *testing.T) {
	assert.InDelta(t, 90.0, GWAAverage(88, 90, 92), 1e-9)
	assert.InDelta(t, 0.0, GWAAverage(0, 0, 0), 1e-9)
}
