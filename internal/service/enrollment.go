package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sacarias/enrollment-system/internal/models"
	"github.com/sacarias/enrollment-system/internal/pricing"
	"github.com/sacarias/enrollment-system/internal/prompt"
)

// Fixed admission option lists.
var (
	shsTracks = []string{"STEM", "HUMSS", "ABM", "GAS", "TVL", "Arts & Design", "Sports"}
	campuses  = []string{"Echague", "Cauayan", "Roxas", "Ilagan", "Jones", "Angadanan", "Cabagan", "San Mateo", "Santiago"}
)

// Register runs one registration session: strictly ordered stages, each
// feeding the next, with no backward transitions. Once credentials are
// accepted the registration always completes; persistence failures only
// degrade to warnings so finished validation work is never lost.
func (s *Service) Register(pr *prompt.Prompter) *models.StudentRecord {
	rec := &models.StudentRecord{ReferenceID: uuid.NewString()}

	s.collectPersonalData(pr, rec)
	s.collectGuardianData(pr, rec)
	s.collectEducationHistory(pr, rec)
	s.collectAdmissionInfo(pr, rec)
	s.collectProgramSelection(pr, rec)
	s.collectTermSelection(pr, rec)
	s.resolveSubjects(pr, rec)
	s.collectPayment(pr, rec)
	s.createAccount(pr, rec)
	s.persist(pr, rec)

	pr.Println("\nRegistration completed. You can now Login from the main menu using your email & password.")
	return rec
}

func (s *Service) collectPersonalData(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("[PERSONAL DATA]")
	rec.LastName = pr.Alpha("Last name: ")
	rec.FirstName = pr.Alpha("First name: ")
	rec.MiddleName = pr.AlphaOptional("Middle name (optional): ")
	rec.ExtensionName = pr.AlphaOptional("Extension (Jr./III) (optional): ")
	rec.PermanentAddress = pr.NonEmpty("Permanent address: ")
	rec.Birthday = pr.NonEmpty("Birthday (YYYY-MM-DD): ")
	rec.Gender = pr.Alpha("Gender (e.g., Male/Female/Other): ")
	rec.PhoneNumber = pr.PhoneOptional("Phone number (optional): ")
	rec.Religion = pr.AlphaOptional("Religion (optional): ")
}

func (s *Service) collectGuardianData(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[PARENTS / GUARDIAN]")
	rec.FatherName = pr.Alpha("Father's full name: ")
	rec.FatherOccupation = pr.Optional("Father's occupation (optional): ")
	rec.FatherContact = pr.PhoneOptional("Father's contact (optional): ")
	rec.MotherName = pr.Alpha("Mother's full name: ")
	rec.MotherOccupation = pr.Optional("Mother's occupation (optional): ")
	rec.MotherContact = pr.PhoneOptional("Mother's contact (optional): ")
	rec.GuardianName = pr.AlphaOptional("Guardian (if any): ")
	rec.GuardianContact = pr.PhoneOptional("Guardian contact (if any): ")
}

func collectSchoolRecord(pr *prompt.Prompter) models.SchoolRecord {
	return models.SchoolRecord{
		School:         pr.NonEmpty("School name: "),
		Address:        pr.NonEmpty("School address: "),
		InclusiveDates: pr.Optional("Inclusive Dates of Attendance: "),
		DegreeUnits:    pr.Optional("Degree/Units: "),
		Honors:         pr.Optional("Honors Received: "),
	}
}

func (s *Service) collectEducationHistory(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[EDUCATIONAL BACKGROUND - ELEMENTARY]")
	rec.Elementary = collectSchoolRecord(pr)
	pr.Println("\n[EDUCATIONAL BACKGROUND - JUNIOR HIGH]")
	rec.JuniorHigh = collectSchoolRecord(pr)
	pr.Println("\n[EDUCATIONAL BACKGROUND - SENIOR HIGH]")
	rec.SeniorHigh = collectSchoolRecord(pr)
}

func (s *Service) collectAdmissionInfo(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[ADMISSION INFORMATION]")
	rec.LRN = pr.DigitsOptional("Learner Reference Number (LRN) (optional) - digits only: ")
	rec.Level = pr.Optional("Admission level (e.g., Undergraduate): ")

	rec.GWA11Sem1 = pr.DecimalRange("GWA Grade 11 1st sem (0 if N/A): ", 0, 100)
	rec.GWA11Sem2 = pr.DecimalRange("GWA Grade 11 2nd sem (0 if N/A): ", 0, 100)
	rec.GWA12Sem1 = pr.DecimalRange("GWA Grade 12 1st sem (0 if N/A): ", 0, 100)
	rec.GWAAverage = pricing.GWAAverage(rec.GWA11Sem1, rec.GWA11Sem2, rec.GWA12Sem1)
	pr.Printf("Computed GWA average: %.2f\n", rec.GWAAverage)

	for i, track := range shsTracks {
		pr.Printf("%d) %s\n", i+1, track)
	}
	t := pr.IntRange(fmt.Sprintf("Choose SHS Track (1-%d): ", len(shsTracks)), 1, len(shsTracks))
	rec.SHSTrack = shsTracks[t-1]

	for i, campus := range campuses {
		pr.Printf("%d) %s\n", i+1, campus)
	}
	c := pr.IntRange(fmt.Sprintf("Choose ISU Campus (1-%d): ", len(campuses)), 1, len(campuses))
	rec.Campus = campuses[c-1]
}

func (s *Service) collectProgramSelection(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[PROGRAM SELECTION]")
	codes := models.AllPrograms()
	for i, code := range codes {
		pr.Printf("%d) %s\n", i+1, models.NewProgram(code).DisplayName())
	}
	pick := pr.IntRange(fmt.Sprintf("Choose program (1-%d): ", len(codes)), 1, len(codes))
	code := codes[pick-1]

	if code != models.ProgramBSIT {
		rec.Program = models.NewProgram(code)
		return
	}

	pr.Println("BSIT Specializations:")
	pr.Println("1) Web & Mobile App Development")
	pr.Println("2) Network Systems")
	sp := pr.IntRange("Choose specialization (1-2): ", 1, 2)
	spec := models.SpecWebMobile
	if sp == 2 {
		spec = models.SpecNetwork
	}
	rec.Program = models.NewBSIT(spec)
	pr.Println("Selected specialization: " + string(spec))
}

func (s *Service) collectTermSelection(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[ENROLLMENT - Year & Term]")
	rec.YearLevel = pr.IntRange("Choose year level (1-4): ", 1, 4)

	mid := s.catalog.MidyearEligible(rec.Program)
	pr.Println("Semester options:\n1) 1st Semester\n2) 2nd Semester")
	maxSem := 2
	if mid {
		pr.Println("3) Midyear")
		maxSem = 3
	}
	rec.Semester = pr.IntRange(fmt.Sprintf("Choose semester (1-%d): ", maxSem), 1, maxSem)
}

func (s *Service) resolveSubjects(pr *prompt.Prompter, rec *models.StudentRecord) {
	rec.Subjects = s.catalog.Subjects(rec.Program, rec.YearLevel, rec.Semester)
	rec.TotalUnits = pricing.TotalUnits(rec.Subjects)
	rec.Tuition = pricing.Tuition(rec.TotalUnits)

	pr.Println("\n--- SUBJECTS & UNITS SUMMARY ---")
	pr.Printf("%-8s %-60s %s\n", "Code", "Subject", "Units")
	pr.Println("--------------------------------------------------------------------------------")
	for _, sub := range rec.Subjects {
		pr.Printf("%-8s %-60s %2d\n", sub.Code, sub.Name, sub.Units)
	}
	pr.Println("--------------------------------------------------------------------------------")
	pr.Printf("Total Units: %d\n", rec.TotalUnits)
	pr.Printf("Tuition (PHP %s per unit): PHP %s\n", pr.Money(pricing.UnitRate), pr.Money(rec.Tuition))
}

func (s *Service) collectPayment(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[PAYMENT]")
	pr.Println("1) Cash (full)")
	pr.Printf("2) Installment (adds PHP %d fee)\n", int(pricing.InstallmentFee))
	pay := pr.IntRange("Choose payment method (1-2): ", 1, 2)

	if pay == 1 {
		amount := pr.DecimalMin("Enter payment amount (PHP): ", 0)
		rec.Payment = pricing.Cash(rec.Tuition, amount)
		if rec.Payment.Enrolled {
			pr.Println("Payment sufficient - YOU ARE NOW ENROLLED. Congratulations!")
		} else {
			pr.Println("Payment insufficient - NOT ENROLLED yet. Remaining: PHP " + pr.Money(rec.Payment.Balance))
		}
		return
	}

	totalDue := rec.Tuition + pricing.InstallmentFee
	pr.Printf("Total due (tuition + fee): PHP %s\n", pr.Money(totalDue))
	pr.Printf("Minimum down (%.0f%%): PHP %s\n", pricing.MinDownPercent*100, pr.Money(pricing.MinDown(totalDue)))

	// Both inputs are collected before the outcome is decided; the month
	// count is simply unused when the downpayment covers everything.
	amount := pr.DecimalMin("Enter downpayment amount (PHP): ", 0)
	months := pr.IntRange(
		fmt.Sprintf("Number of installments (%d-%d): ", pricing.MinInstallMonth, pricing.MaxInstallMonth),
		pricing.MinInstallMonth, pricing.MaxInstallMonth)
	rec.Payment = pricing.Installment(rec.Tuition, amount, months)

	switch {
	case rec.Payment.Enrolled:
		pr.Println("Full payment covered - YOU ARE NOW ENROLLED. Congratulations!")
	case rec.Payment.MonthlyDue > 0:
		pr.Printf("Installment accepted. Remaining: PHP %s. Monthly: PHP %s for %d months.\n",
			pr.Money(rec.Payment.Balance), pr.Money(rec.Payment.MonthlyDue), rec.Payment.InstallmentMonths)
	default:
		pr.Println("Downpayment less than minimum - NOT ENROLLED.")
	}
}

func (s *Service) createAccount(pr *prompt.Prompter, rec *models.StudentRecord) {
	pr.Println("\n[CREATE ACCOUNT] (Email will be your username)")
	rec.Email = pr.Email("Email: ", s.creds.Has)
	password := pr.PasswordWithConfirmation(
		fmt.Sprintf("Create password (min %d chars): ", s.cfg.MinPasswordLen),
		"Confirm password: ", s.cfg.MinPasswordLen)

	if err := s.creds.PutIfAbsent(rec.Email, password); err != nil {
		s.log.Errorf("failed to save credentials for %s: %v", rec.Email, err)
		pr.ShowError("Failed to save credentials: " + err.Error())
		return
	}
	pr.Println("Credentials saved.")
}

func (s *Service) persist(pr *prompt.Prompter, rec *models.StudentRecord) {
	s.profiles.Put(rec)
	s.log.Infof("student registered: %s (%s)", rec.Email, rec.ReferenceID)

	name, err := s.files.Save(rec)
	if err != nil {
		s.log.Errorf("failed to save assessment for %s: %v", rec.Email, err)
		pr.ShowError("Failed to save assessment file: " + err.Error())
		return
	}
	pr.Println("Assessment saved to file: " + name)
}
