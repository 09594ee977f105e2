package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/survey"
	"github.com/wellteklabs/drillcalc/internal/torquedrag"
)

// ExportECDProfile writes an ECD-versus-depth chart to an image file.
// Depth runs down the Y axis, oilfield style. The format follows the
// file extension (.png, .svg, .pdf).
func ExportECDProfile(profile hydraulics.ECDProfile, staticMW float64, filename string) error {
	if len(profile) < 2 {
		return fmt.Errorf("ECD profile needs at least two samples")
	}

	p := plot.New()
	p.Title.Text = "Equivalent Circulating Density"
	p.X.Label.Text = "Density (ppg)"
	p.Y.Label.Text = "TVD (ft)"

	bottom := profile[len(profile)-1].TVD

	pts := make(plotter.XYs, len(profile))
	for i, s := range profile {
		pts[i] = plotter.XY{X: s.Density, Y: -s.TVD}
	}
	ecdLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ecdLine.LineStyle.Width = vg.Points(2)
	ecdLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(ecdLine)
	p.Legend.Add("ECD", ecdLine)

	// Static mud weight reference line
	mwLine, err := plotter.NewLine(plotter.XYs{
		{X: staticMW, Y: 0},
		{X: staticMW, Y: -bottom},
	})
	if err != nil {
		return err
	}
	mwLine.LineStyle.Color = color.Gray{Y: 128}
	mwLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(mwLine)
	p.Legend.Add("static MW", mwLine)

	return save(p, filename)
}

// ExportLoadProfile writes axial force and normal force along the
// wellbore to an image file, with depth down the Y axis.
func ExportLoadProfile(stations []torquedrag.StationResult, filename string) error {
	if len(stations) < 2 {
		return fmt.Errorf("load profile needs at least two stations")
	}

	p := plot.New()
	p.Title.Text = "Drillstring Loads"
	p.X.Label.Text = "Force (klb)"
	p.Y.Label.Text = "MD (ft)"

	axial := make(plotter.XYs, len(stations))
	normal := make(plotter.XYs, len(stations))
	for i, st := range stations {
		axial[i] = plotter.XY{X: st.AxialForce / 1000, Y: -st.MD}
		normal[i] = plotter.XY{X: st.NormalForce / 1000, Y: -st.MD}
	}

	axialLine, err := plotter.NewLine(axial)
	if err != nil {
		return err
	}
	axialLine.LineStyle.Width = vg.Points(2)
	axialLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(axialLine)
	p.Legend.Add("axial", axialLine)

	normalLine, err := plotter.NewLine(normal)
	if err != nil {
		return err
	}
	normalLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	normalLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(normalLine)
	p.Legend.Add("normal", normalLine)

	return save(p, filename)
}

// ExportWellPath writes the vertical section of the well path (TVD vs
// horizontal displacement) to an image file.
func ExportWellPath(stations []survey.ComputedStation, filename string) error {
	if len(stations) < 2 {
		return fmt.Errorf("well path needs at least two stations")
	}

	p := plot.New()
	p.Title.Text = "Well Path"
	p.X.Label.Text = "Horizontal displacement (ft)"
	p.Y.Label.Text = "TVD (ft)"

	pts := make(plotter.XYs, len(stations))
	for i, s := range stations {
		pts[i] = plotter.XY{X: math.Hypot(s.North, s.East), Y: -s.TVD}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	return save(p, filename)
}

// save writes the plot with the format chosen by the file extension,
// creating the target directory when needed.
func save(p *plot.Plot, filename string) error {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported image format %q (use .png, .svg or .pdf)", filepath.Ext(filename))
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(6*vg.Inch, 8*vg.Inch, filename)
}
