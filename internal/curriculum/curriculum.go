// Package curriculum loads the static curriculum tables and answers
// subject lookups for (program, year, semester, specialization) cells.
package curriculum

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/sacarias/enrollment-system/internal/models"
)

//go:embed curricula.xml
var curriculaXML []byte

type termKey struct {
	program  models.ProgramCode
	spec     models.Specialization
	year     int
	semester int
}

type trackKey struct {
	program models.ProgramCode
	spec    models.Specialization
}

// Catalog holds the parsed curriculum tables. Lookups are pure and stable:
// the same inputs always yield the same ordered subject list.
type Catalog struct {
	terms   map[termKey][]models.Subject
	midyear map[trackKey]bool
}

// Load parses the embedded curriculum document. Tracks that define
// semester-3 subjects without being flagged midyear-eligible are logged as
// a warning so the table/gate mismatch is visible.
func Load(log *logrus.Logger) (*Catalog, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(curriculaXML); err != nil {
		return nil, fmt.Errorf("failed to parse curriculum data: %w", err)
	}

	c := &Catalog{
		terms:   make(map[termKey][]models.Subject),
		midyear: make(map[trackKey]bool),
	}

	root := doc.SelectElement("curricula")
	if root == nil {
		return nil, fmt.Errorf("curriculum data has no curricula root element")
	}

	for _, prog := range root.SelectElements("program") {
		code := models.ProgramCode(prog.SelectAttrValue("code", ""))
		if code == "" {
			return nil, fmt.Errorf("program element without code attribute")
		}
		for _, track := range prog.SelectElements("track") {
			spec := models.Specialization(track.SelectAttrValue("specialization", ""))
			eligible := track.SelectAttrValue("midyear", "false") == "true"
			c.midyear[trackKey{code, spec}] = eligible

			hasMidyearTerms := false
			for _, term := range track.SelectElements("term") {
				year, err := strconv.Atoi(term.SelectAttrValue("year", ""))
				if err != nil {
					return nil, fmt.Errorf("bad year attribute in %s track %q: %w", code, spec, err)
				}
				sem, err := strconv.Atoi(term.SelectAttrValue("semester", ""))
				if err != nil {
					return nil, fmt.Errorf("bad semester attribute in %s track %q: %w", code, spec, err)
				}
				if sem == 3 {
					hasMidyearTerms = true
				}

				key := termKey{code, spec, year, sem}
				for _, el := range term.SelectElements("subject") {
					units, err := strconv.Atoi(el.SelectAttrValue("units", ""))
					if err != nil || units <= 0 {
						return nil, fmt.Errorf("bad units for subject %s in %s y%d s%d",
							el.SelectAttrValue("code", "?"), code, year, sem)
					}
					c.terms[key] = append(c.terms[key], models.Subject{
						Code:  el.SelectAttrValue("code", ""),
						Name:  el.Text(),
						Units: units,
					})
				}
			}

			if hasMidyearTerms && !eligible {
				log.Warnf("curriculum: %s track %q defines midyear subjects but is not midyear-eligible", code, spec)
			}
		}
	}

	return c, nil
}

// Subjects returns the ordered subject list for the given cell, or an empty
// list for combinations the tables do not define. The returned slice is a
// copy; callers may keep it.
func (c *Catalog) Subjects(p models.Program, year, semester int) []models.Subject {
	key := termKey{p.Code, trackSpec(p), year, semester}
	subjects := c.terms[key]
	out := make([]models.Subject, len(subjects))
	copy(out, subjects)
	return out
}

// MidyearEligible reports whether a third-semester option is offered for
// the program (and, for BSIT, its track).
func (c *Catalog) MidyearEligible(p models.Program) bool {
	return c.midyear[trackKey{p.Code, trackSpec(p)}]
}

// trackSpec maps a program to its track key: only BSIT tracks are keyed by
// specialization, every other program has a single unnamed track.
func trackSpec(p models.Program) models.Specialization {
	if p.Code == models.ProgramBSIT {
		return p.Specialization
	}
	return ""
}
