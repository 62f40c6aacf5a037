package icon

import (
	"image/color"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultName is used when Parse is given an empty icon name.
const DefaultName = "unnamed"

// Parse converts an SVG document into tessellated icon data. The
// document is replayed through oksvg's draw machinery, so group and
// path transforms, the viewbox offset, and curve flattening all match
// what the library would rasterize; a capturing scanner keeps the
// resulting contours instead of pixels. Fills are triangulated; strokes
// become bevel-joined thick polylines. Paints are materialized into
// per-vertex premultiplied colors, so the result needs no paint state
// at draw time.
//
// An SVG with no drawable shapes yields empty buffers, which is legal.
// Malformed documents return an *SvgParseError; geometry that cannot be
// tessellated returns a *TessellationError.
func Parse(name, svg string) (*IconData, error) {
	if name == "" {
		name = DefaultName
	}

	parsed, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, &SvgParseError{Message: "reading " + name, Err: err}
	}
	if parsed.ViewBox.W > 0 && parsed.ViewBox.H > 0 {
		// Shift the viewbox min corner to the origin.
		parsed.SetTarget(0, 0, parsed.ViewBox.W, parsed.ViewBox.H)
	}

	sc := &captureScanner{}
	dasher := rasterx.NewDasher(scanSize(parsed.ViewBox.W), scanSize(parsed.ViewBox.H), sc)

	var mb meshBuilder
	for i := range parsed.SVGPaths {
		sp := &parsed.SVGPaths[i]

		sc.reset()
		sp.DrawTransformed(dasher, 1, parsed.Transform)

		if sc.hasFill && sc.fillColor.A > 0 {
			for _, poly := range sc.fillContours {
				if len(poly.points) < 3 {
					continue
				}
				if signedArea(poly.points) == 0 {
					return nil, &TessellationError{
						Message: "zero-area fill path in " + name,
					}
				}
				mb.addPolygon(poly.points, sc.fillColor)
			}
		}

		if sc.hasStroke && sc.strokeColor.A > 0 && sp.LineWidth > 0 {
			stroke := sc.strokeColor
			for _, poly := range strokeCenterlines(sp, parsed.Transform, dasher, sc) {
				mb.addStroke(poly, float32(sp.LineWidth), stroke)
			}
		}
	}

	return &IconData{
		Name:     name,
		Vertices: mb.vertices,
		Indices:  mb.indices,
		ViewboxW: float32(parsed.ViewBox.W),
		ViewboxH: float32(parsed.ViewBox.H),
	}, nil
}

// strokeCenterlines replays the path through the draw's fill branch on
// a throwaway copy, which is the exported route to transformed,
// flattened geometry. The filler closes every contour it emits, so open
// runs are told apart by replaying the raw path.
func strokeCenterlines(sp *oksvg.SvgPath, t rasterx.Matrix2D, dasher *rasterx.Dasher, sc *captureScanner) []subpath {
	cl := *sp
	cl.SetFillColor(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	cl.SetLineColor(nil)

	sc.reset()
	cl.DrawTransformed(dasher, 1, t)

	contours := sc.fillContours
	closed := subpathClosures(sp.Path)
	for i := range contours {
		contours[i].closed = i < len(closed) && closed[i]
	}
	return contours
}

func scanSize(v float64) int {
	if n := int(math.Ceil(v)); n > 0 {
		return n
	}
	return 1
}
