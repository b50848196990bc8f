package models

// StudentRecord is one finalized registration. It is assembled stage by
// stage during the enrollment session and, apart from the payment fields
// which are set exactly once during the payment step, not modified after
// computation. Records are never deleted during the process lifetime.
type StudentRecord struct {
	// Identity
	ReferenceID string `json:"reference_id"`
	Email       string `json:"email"`

	// Personal data
	LastName         string `json:"last_name"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	ExtensionName    string `json:"extension_name"`
	PermanentAddress string `json:"permanent_address"`
	Birthday         string `json:"birthday"`
	Gender           string `json:"gender"`
	PhoneNumber      string `json:"phone_number"`
	Religion         string `json:"religion"`

	// Parents / guardian
	FatherName       string `json:"father_name"`
	FatherOccupation string `json:"father_occupation"`
	FatherContact    string `json:"father_contact"`
	MotherName       string `json:"mother_name"`
	MotherOccupation string `json:"mother_occupation"`
	MotherContact    string `json:"mother_contact"`
	GuardianName     string `json:"guardian_name"`
	GuardianContact  string `json:"guardian_contact"`

	// Educational background
	Elementary SchoolRecord `json:"elementary"`
	JuniorHigh SchoolRecord `json:"junior_high"`
	SeniorHigh SchoolRecord `json:"senior_high"`

	// Admission information
	LRN        string  `json:"lrn"`
	Level      string  `json:"level"`
	GWA11Sem1  float64 `json:"gwa_11_sem1"`
	GWA11Sem2  float64 `json:"gwa_11_sem2"`
	GWA12Sem1  float64 `json:"gwa_12_sem1"`
	GWAAverage float64 `json:"gwa_average"`
	SHSTrack   string  `json:"shs_track"`
	Campus     string  `json:"campus"`

	// Enrollment
	Program    Program   `json:"program"`
	YearLevel  int       `json:"year_level"`
	Semester   int       `json:"semester"`
	Subjects   []Subject `json:"subjects"`
	TotalUnits int       `json:"total_units"`
	Tuition    float64   `json:"tuition"`

	// Payment
	Payment PaymentOutcome `json:"payment"`
}

// SchoolRecord is one stage of the educational background.
type SchoolRecord struct {
	School         string `json:"school"`
	Address        string `json:"address"`
	InclusiveDates string `json:"inclusive_dates"`
	DegreeUnits    string `json:"degree_units"`
	Honors         string `json:"honors"`
}

// FullName renders "Last, First Middle" the way the assessment report does.
func (r *StudentRecord) FullName() string {
	name := r.LastName + ", " + r.FirstName
	if r.MiddleName != "" {
		name += " " + r.MiddleName
	}
	return name
}

// SemesterLabel names the selected term.
func SemesterLabel(sem int) string {
	switch sem {
	case 1:
		return "1st Semester"
	case 2:
		return "2nd Semester"
	case 3:
		return "Midyear"
	default:
		return "Unknown"
	}
}
