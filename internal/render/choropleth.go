// Package render joins aggregated region results to their boundary polygons
// and draws the choropleth. The joined rows are the reusable artifact; the
// saved image is a side effect.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"refmap/internal/geo"
	"refmap/internal/types"
)

// MapRow is one boundary polygon with its joined result and derived ratio.
// Result is nil when no aggregated row matched the boundary's region code;
// Ratio is NaN in that case and when no ballots expressed either choice.
type MapRow struct {
	Boundary geo.Boundary
	Result   *types.RegionResultRow
	Ratio    float64
}

// Options controls the drawn output.
type Options struct {
	Title        string
	LegendTitle  string
	OutputPath   string
	WidthInches  float64
	HeightInches float64
}

// Choropleth left-joins boundaries to results on region code, computes the
// Choice A ratio per row, and saves the shaded map. Boundaries keep their
// place on the map even without a matching result. The division is not
// guarded: a region with zero expressed ballots carries a NaN ratio and is
// shaded neutral.
func Choropleth(results []types.RegionResultRow, boundaries []geo.Boundary, opts Options) ([]MapRow, error) {
	byRegion := make(map[string]types.RegionResultRow, len(results))
	for _, r := range results {
		byRegion[r.RegionCode] = r
	}

	rows := make([]MapRow, 0, len(boundaries))
	for _, b := range boundaries {
		row := MapRow{Boundary: b}
		if res, ok := byRegion[b.Code]; ok {
			row.Result = &res
			row.Ratio = float64(res.ChoiceA) / float64(res.ChoiceA+res.ChoiceB)
		} else {
			row.Ratio = math.NaN()
		}
		rows = append(rows, row)
	}

	if err := drawMap(rows, opts); err != nil {
		return nil, err
	}
	return rows, nil
}

func drawMap(rows []MapRow, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.HideAxes()

	var labelPts plotter.XYs
	var labelTexts []string
	for _, row := range rows {
		fill := shade(row.Ratio)
		for _, ring := range row.Boundary.Rings {
			poly, err := plotter.NewPolygon(ringXYs(ring))
			if err != nil {
				return fmt.Errorf("polygon for region %s: %w", row.Boundary.Code, err)
			}
			poly.Color = fill
			poly.LineStyle.Color = color.Gray{Y: 204}
			poly.LineStyle.Width = vg.Points(0.8)
			p.Add(poly)
		}
		if len(row.Boundary.Rings) > 0 {
			labelPts = append(labelPts, plotter.XY{X: row.Boundary.Label.X, Y: row.Boundary.Label.Y})
			labelTexts = append(labelTexts, row.Boundary.Code)
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labelTexts})
	if err != nil {
		return fmt.Errorf("region labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	if err := addLegend(p, opts.LegendTitle); err != nil {
		return err
	}

	w := vg.Length(opts.WidthInches) * vg.Inch
	h := vg.Length(opts.HeightInches) * vg.Inch
	if err := p.Save(w, h, opts.OutputPath); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}

// addLegend builds a bucketed key for the continuous ramp: a title line
// followed by one swatch per fifth of the range.
func addLegend(p *plot.Plot, title string) error {
	p.Legend.Add(title)
	for i := 0; i < 5; i++ {
		lo := float64(i) / 5
		hi := float64(i+1) / 5
		swatch, err := plotter.NewPolygon(unitSquare())
		if err != nil {
			return fmt.Errorf("legend swatch: %w", err)
		}
		swatch.Color = shade((lo + hi) / 2)
		p.Legend.Add(fmt.Sprintf("%.1f - %.1f", lo, hi), swatch)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	return nil
}

func ringXYs(ring []geo.Point) plotter.XYs {
	xys := make(plotter.XYs, len(ring))
	for i, pt := range ring {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func unitSquare() plotter.XYs {
	return plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}
