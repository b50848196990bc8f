package models

// ProgramCode identifies one of the offered degree programs.
type ProgramCode string

const (
	ProgramBSIT   ProgramCode = "BSIT"
	ProgramBSMIT  ProgramCode = "BSMIT"
	ProgramBSCS   ProgramCode = "BSCS"
	ProgramBSIS   ProgramCode = "BSIS"
	ProgramBSDSA  ProgramCode = "BSDSA"
	ProgramBSBLIS ProgramCode = "BSBLIS"
	ProgramMIT    ProgramCode = "MIT"
)

// Specialization is a BSIT track. Programs other than BSIT carry none.
type Specialization string

const (
	SpecWebMobile Specialization = "Web & Mobile App Development"
	SpecNetwork   Specialization = "Network Systems"
)

// Program is a selected degree program. Only the BSIT case carries a
// specialization; use the constructors to keep that invariant.
type Program struct {
	Code           ProgramCode
	Specialization Specialization
}

// NewProgram returns a program without a specialization.
func NewProgram(code ProgramCode) Program {
	return Program{Code: code}
}

// NewBSIT returns the BSIT program with the given track.
func NewBSIT(spec Specialization) Program {
	return Program{Code: ProgramBSIT, Specialization: spec}
}

var programNames = map[ProgramCode]string{
	ProgramBSIT:   "BSIT - Bachelor of Science in Information Technology",
	ProgramBSMIT:  "BSMIT - Bachelor of Science in Multimedia & IT",
	ProgramBSCS:   "BSCS - Bachelor of Science in Computer Science",
	ProgramBSIS:   "BSIS - Bachelor of Science in Information Systems",
	ProgramBSDSA:  "BSDSA - BS in Data Science & Analytics",
	ProgramBSBLIS: "BSBLIS - Bachelor of Library & Information Science",
	ProgramMIT:    "MIT - Master in Information Technology",
}

// AllPrograms lists program codes in menu order.
func AllPrograms() []ProgramCode {
	return []ProgramCode{
		ProgramBSIT, ProgramBSMIT, ProgramBSCS, ProgramBSIS,
		ProgramBSDSA, ProgramBSBLIS, ProgramMIT,
	}
}

// DisplayName returns the long program name.
func (p Program) DisplayName() string {
	if name, ok := programNames[p.Code]; ok {
		return name
	}
	return string(p.Code)
}

// Label returns the display name with the BSIT track appended when set.
func (p Program) Label() string {
	if p.Code == ProgramBSIT && p.Specialization != "" {
		return p.DisplayName() + " (" + string(p.Specialization) + ")"
	}
	return p.DisplayName()
}
