package icon

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// subpath is a flattened run of points. closed records whether the run
// loops back to its first point.
type subpath struct {
	points []geom.Vec2
	closed bool
}

func fixedToVec2(p fixed.Point26_6) geom.Vec2 {
	return geom.Vec2{
		X: float32(p.X) / 64,
		Y: float32(p.Y) / 64,
	}
}

// captureScanner sits at the bottom of a rasterx.Dasher and records the
// geometry oksvg's draw machinery emits instead of rasterizing it.
// Replaying a path through the draw is what applies the cumulative
// group transform and the viewbox matrix and flattens curves, so the
// recorded contours arrive in final viewbox coordinates.
//
// The draw's fill branch hands over the actual path contours. Its
// stroke branch hands over winding fragments of the stroke outline that
// only make sense to a scanline rasterizer, so for strokes only the
// color is kept and the centerline is recovered with a second fill
// replay. The branches are told apart by the SetWinding call the fill
// branch issues right after Clear.
type captureScanner struct {
	contours []subpath
	current  []geom.Vec2
	inFill   bool

	hasFill      bool
	fillContours []subpath
	fillColor    paint.Color

	hasStroke   bool
	strokeColor paint.Color

	extentMin fixed.Point26_6
	extentMax fixed.Point26_6
	hasExtent bool
}

func (s *captureScanner) reset() {
	*s = captureScanner{}
}

func (s *captureScanner) Start(a fixed.Point26_6) {
	s.flush()
	s.current = append(s.current, fixedToVec2(a))
	s.extend(a)
}

func (s *captureScanner) Line(b fixed.Point26_6) {
	s.current = append(s.current, fixedToVec2(b))
	s.extend(b)
}

func (s *captureScanner) Draw() {
	s.flush()
	if s.inFill {
		s.hasFill = true
		s.fillContours = s.contours
	} else {
		s.hasStroke = true
	}
	s.contours = nil
}

// SetWinding doubles as the fill-phase marker: the fill branch calls it
// between Clear and the first contour, the stroke branch not at all.
func (s *captureScanner) SetWinding(useNonZeroWinding bool) {
	if len(s.contours) == 0 && len(s.current) == 0 {
		s.inFill = true
	}
}

func (s *captureScanner) SetColor(clr interface{}) {
	var c paint.Color
	switch v := clr.(type) {
	case rasterx.ColorFunc:
		// Gradient paint. Collapse it to the color where the geometry
		// starts.
		if p, ok := s.firstPoint(); ok {
			c = paint.FromStdColor(v(int(p.X), int(p.Y)))
		}
	case color.Color:
		c = paint.FromStdColor(v)
	}
	if s.inFill {
		s.fillColor = c
	} else {
		s.strokeColor = c
	}
}

func (s *captureScanner) Clear() {
	s.contours = nil
	s.current = nil
	s.inFill = false
}

func (s *captureScanner) GetPathExtent() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: s.extentMin, Max: s.extentMax}
}

func (s *captureScanner) SetBounds(w, h int) {}

func (s *captureScanner) SetClip(rect image.Rectangle) {}

// flush finishes the contour under construction. The filler lines every
// contour back to its first point before Draw, so a duplicated closing
// point marks a closed run and is dropped.
func (s *captureScanner) flush() {
	if len(s.current) == 0 {
		return
	}
	pts := s.current
	s.current = nil
	closed := false
	if len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
		closed = true
	}
	if len(pts) < 2 {
		return
	}
	s.contours = append(s.contours, subpath{points: pts, closed: closed})
}

func (s *captureScanner) firstPoint() (geom.Vec2, bool) {
	if len(s.contours) > 0 && len(s.contours[0].points) > 0 {
		return s.contours[0].points[0], true
	}
	if len(s.current) > 0 {
		return s.current[0], true
	}
	return geom.Vec2{}, false
}

func (s *captureScanner) extend(p fixed.Point26_6) {
	if !s.hasExtent {
		s.extentMin, s.extentMax = p, p
		s.hasExtent = true
		return
	}
	if p.X < s.extentMin.X {
		s.extentMin.X = p.X
	}
	if p.Y < s.extentMin.Y {
		s.extentMin.Y = p.Y
	}
	if p.X > s.extentMax.X {
		s.extentMax.X = p.X
	}
	if p.Y > s.extentMax.Y {
		s.extentMax.Y = p.Y
	}
}

// closureTracker replays a raw path to learn which of its subpaths end
// with a close command. The filler force-closes every contour it sees,
// so this is the only record of open versus closed runs.
type closureTracker struct {
	closed  []bool
	stopped bool
}

func (t *closureTracker) Start(a fixed.Point26_6) {
	t.closed = append(t.closed, false)
	t.stopped = false
}

func (t *closureTracker) Line(b fixed.Point26_6)             {}
func (t *closureTracker) QuadBezier(b, c fixed.Point26_6)    {}
func (t *closureTracker) CubeBezier(b, c, d fixed.Point26_6) {}

// Stop keeps the first stop per subpath; the implicit stops the replay
// inserts around move commands do not override a close.
func (t *closureTracker) Stop(closeLoop bool) {
	if n := len(t.closed); n > 0 && !t.stopped {
		t.closed[n-1] = closeLoop
		t.stopped = true
	}
}

func subpathClosures(p rasterx.Path) []bool {
	var t closureTracker
	p.AddTo(&t)
	return t.closed
}
