// Package geo loads the region boundary layer from an ESRI shapefile. The
// renderer joins these polygons to aggregated results by region code.
package geo

import (
	"fmt"
	"math"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Point is one vertex in map coordinates (X=longitude, Y=latitude).
type Point struct {
	X float64
	Y float64
}

// Boundary is one region polygon (possibly multi-part) together with the
// identifying attributes from the DBF table.
type Boundary struct {
	Code  string
	Name  string
	Rings [][]Point // each part is a closed ring
	Label Point     // anchor for the region label, centroid of the outer ring
	MinX  float64
	MinY  float64
	MaxX  float64
	MaxY  float64
}

// LoadBoundaries reads the shapefile at path and returns one Boundary per
// polygon record. codeField and nameField name the DBF attributes holding
// the region code and display name; a record missing codeField is an error
// since the map join would silently lose it.
func LoadBoundaries(path, codeField, nameField string) ([]Boundary, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary shapefile %s: %w", path, err)
	}
	defer r.Close()

	fields := r.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		fieldIdx[f.String()] = i
	}
	codeIdx, ok := fieldIdx[codeField]
	if !ok {
		return nil, fmt.Errorf("%s: no attribute field %q", path, codeField)
	}
	nameIdx, haveName := fieldIdx[nameField]

	var boundaries []Boundary
	for r.Next() {
		idx, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			// Skip non-polygon geometries; a boundary layer shouldn't have any.
			continue
		}

		b := Boundary{
			Code: strings.TrimSpace(r.ReadAttribute(idx, codeIdx)),
			MinX: math.MaxFloat64,
			MinY: math.MaxFloat64,
			MaxX: -math.MaxFloat64,
			MaxY: -math.MaxFloat64,
		}
		if haveName {
			b.Name = strings.TrimSpace(r.ReadAttribute(idx, nameIdx))
		}

		numParts := len(poly.Parts)
		b.Rings = make([][]Point, numParts)
		for partIdx := 0; partIdx < numParts; partIdx++ {
			start := poly.Parts[partIdx]
			end := int32(len(poly.Points))
			if partIdx+1 < numParts {
				end = poly.Parts[partIdx+1]
			}
			ring := make([]Point, 0, int(end-start))
			for i := start; i < end; i++ {
				pt := poly.Points[i]
				ring = append(ring, Point{X: pt.X, Y: pt.Y})
				b.MinX = math.Min(b.MinX, pt.X)
				b.MinY = math.Min(b.MinY, pt.Y)
				b.MaxX = math.Max(b.MaxX, pt.X)
				b.MaxY = math.Max(b.MaxY, pt.Y)
			}
			b.Rings[partIdx] = ring
		}

		if len(b.Rings) > 0 && len(b.Rings[0]) >= 3 {
			b.Label = ringCentroid(b.Rings[0])
		}
		boundaries = append(boundaries, b)
	}
	return boundaries, nil
}

// ringCentroid computes the area centroid of a single closed ring.
func ringCentroid(ring []Point) Point {
	coords := make([]geom.Coord, len(ring))
	for i, pt := range ring {
		coords[i] = geom.Coord{pt.X, pt.Y}
	}
	polygon := geom.NewPolygon(geom.XY)
	if _, err := polygon.SetCoords([][]geom.Coord{coords}); err != nil {
		// Degenerate ring; fall back to the first vertex.
		return ring[0]
	}
	c := xy.PolygonsCentroid(polygon)
	return Point{X: c.X(), Y: c.Y()}
}
