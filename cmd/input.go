package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wellteklabs/drillcalc/internal/drillstring"
	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/survey"
)

// surveyFile is the JSON schema for a directional survey.
//
//	{
//	  "name": "Well A-12",
//	  "stations": [
//	    {"md": 0, "inc": 0, "azi": 0},
//	    {"md": 1400, "inc": 0, "azi": 0},
//	    {"md": 2300, "inc": 18, "azi": 35}
//	  ]
//	}
type surveyFile struct {
	Name     string `json:"name"`
	Stations []struct {
		MD  float64 `json:"md"`
		Inc float64 `json:"inc"`
		Azi float64 `json:"azi"`
	} `json:"stations"`
}

func loadSurveyFile(path string) (string, []survey.Station, error) {
	var f surveyFile
	if err := readJSON(path, &f); err != nil {
		return "", nil, err
	}
	stations := make([]survey.Station, len(f.Stations))
	for i, s := range f.Stations {
		stations[i] = survey.Station{MD: s.MD, Inclination: s.Inc, Azimuth: s.Azi}
	}
	return f.Name, stations, nil
}

// stringFile is the JSON schema for a drillstring, ordered from the bit.
//
//	{
//	  "name": "5in string with 8in BHA",
//	  "sections": [
//	    {"label": "8in DC", "od": 8.0, "id": 2.8125, "weight": 147.0, "length": 280},
//	    {"label": "5in HWDP", "od": 5.0, "id": 3.0, "weight": 49.3, "length": 400},
//	    {"label": "5in DP", "od": 5.0, "id": 4.276, "weight": 19.5, "length": 6320}
//	  ]
//	}
type stringFile struct {
	Name     string `json:"name"`
	Sections []struct {
		Label  string  `json:"label"`
		OD     float64 `json:"od"`
		ID     float64 `json:"id"`
		Weight float64 `json:"weight"`
		Length float64 `json:"length"`
	} `json:"sections"`
}

func loadStringFile(path string) (string, *drillstring.String, error) {
	var f stringFile
	if err := readJSON(path, &f); err != nil {
		return "", nil, err
	}
	ds := &drillstring.String{}
	for i, s := range f.Sections {
		ds.Sections = append(ds.Sections, drillstring.Section{
			Ordinal:      i,
			Label:        s.Label,
			OD:           s.OD,
			ID:           s.ID,
			LinearWeight: s.Weight,
			Length:       s.Length,
		})
	}
	if err := ds.Validate(); err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Name, ds, nil
}

// circuitFile is the JSON schema for a circulating path, ordered from
// the standpipe to the bit and back up the annulus. For bore sections
// "id" is the pipe bore; for annulus sections "od" is the hole or
// casing ID and "id" the pipe OD.
//
//	{
//	  "name": "10000 ft circuit",
//	  "sections": [
//	    {"kind": "drill pipe", "length": 9400, "id": 4.276},
//	    {"kind": "drill collar", "length": 300, "id": 2.8125},
//	    {"kind": "drill collar annulus", "length": 300, "od": 8.5, "id": 6.5},
//	    {"kind": "drill pipe annulus", "length": 9400, "od": 8.835, "id": 5.0}
//	  ]
//	}
type circuitFile struct {
	Name     string `json:"name"`
	Sections []struct {
		Kind   string  `json:"kind"`
		Length float64 `json:"length"`
		OD     float64 `json:"od"`
		ID     float64 `json:"id"`
	} `json:"sections"`
}

func loadCircuitFile(path string) (string, []hydraulics.CircuitSection, error) {
	var f circuitFile
	if err := readJSON(path, &f); err != nil {
		return "", nil, err
	}
	var sections []hydraulics.CircuitSection
	for _, s := range f.Sections {
		kind, err := hydraulics.ParseSectionKind(s.Kind)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", path, err)
		}
		sections = append(sections, hydraulics.CircuitSection{
			Kind:          kind,
			Length:        s.Length,
			OuterDiameter: s.OD,
			InnerDiameter: s.ID,
		})
	}
	return f.Name, sections, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// fluidFromFlags builds the fluid from the shared rheology flags: a
// positive flow index selects Power Law, otherwise Bingham.
func fluidFromFlags(density, pv, yp, n, k float64) hydraulics.Fluid {
	if n > 0 {
		return hydraulics.Fluid{Density: density, Model: hydraulics.PowerLaw, N: n, K: k}
	}
	return hydraulics.Fluid{Density: density, Model: hydraulics.Bingham, PV: pv, YP: yp}
}
