// Package drillstring models the mechanical drillstring as an ordered
// list of pipe sections and provides the static engineering lookup
// tables used by the load calculations.
package drillstring

import "fmt"

// Section is one uniform run of pipe in the drillstring.
type Section struct {
	Ordinal      int     // Position from the bit, 0 = bottom section
	Label        string  // e.g. "5in DP", "8in DC"
	OD           float64 // Outer diameter (in)
	ID           float64 // Inner diameter (in)
	LinearWeight float64 // Weight in air (lb/ft)
	Length       float64 // Section length (ft)
}

// String is a full drillstring ordered from the bit upward.
type String struct {
	Sections []Section
}

// Validate checks that the string is non-empty, its ordinals run
// contiguously from 0 at the bit, and every section has physical
// geometry.
func (s *String) Validate() error {
	if len(s.Sections) == 0 {
		return fmt.Errorf("drillstring has no sections")
	}
	for i, sec := range s.Sections {
		if sec.Ordinal != i {
			return fmt.Errorf("section %q: ordinal %d out of order, want %d", sec.Label, sec.Ordinal, i)
		}
		if sec.OD <= 0 || sec.ID < 0 || sec.ID >= sec.OD {
			return fmt.Errorf("section %q: invalid diameters OD=%.3f ID=%.3f", sec.Label, sec.OD, sec.ID)
		}
		if sec.Length < 0 || sec.LinearWeight < 0 {
			return fmt.Errorf("section %q: negative length or weight", sec.Label)
		}
	}
	return nil
}

// TotalLength returns the combined length of all sections (ft).
func (s *String) TotalLength() float64 {
	var sum float64
	for _, sec := range s.Sections {
		sum += sec.Length
	}
	return sum
}

// AirWeight returns the total string weight in air (lb).
func (s *String) AirWeight() float64 {
	var sum float64
	for _, sec := range s.Sections {
		sum += sec.LinearWeight * sec.Length
	}
	return sum
}

// SectionAt returns the section found at a cumulative distance from the
// bit (ft). Distances beyond the top of the string return the uppermost
// section, so a string shorter than the wellbore still resolves.
func (s *String) SectionAt(distanceFromBit float64) Section {
	var cum float64
	for _, sec := range s.Sections {
		cum += sec.Length
		if distanceFromBit <= cum {
			return sec
		}
	}
	return s.Sections[len(s.Sections)-1]
}
