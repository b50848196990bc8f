package models

// PaymentMethod is how the student settles the assessed tuition.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "CASH"
	PaymentInstallment PaymentMethod = "INSTALLMENT"
)

// PaymentOutcome is the result of applying a payment to the assessed total.
// Invariants: Balance = max(0, TotalDue-AmountPaid); MonthlyDue > 0 implies
// InstallmentMonths > 0.
type PaymentOutcome struct {
	Method            PaymentMethod `json:"method"`
	Surcharge         float64       `json:"surcharge"`
	TotalDue          float64       `json:"total_due"`
	AmountPaid        float64       `json:"amount_paid"`
	Balance           float64       `json:"balance"`
	InstallmentMonths int           `json:"installment_months"`
	MonthlyDue        float64       `json:"monthly_due"`
	Enrolled          bool          `json:"enrolled"`
}
