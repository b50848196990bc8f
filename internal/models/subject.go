package models

// Subject is a single curriculum entry: course code, descriptive name and
// unit load. Subjects are defined by the static curriculum tables and never
// modified at runtime.
type Subject struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Units int    `json:"units"`
}
