package domain

import (
	"strings"

	m "github.com/mouse-blink/ancora/internal/model"
)

// Rect is an axis-aligned bounding box in viewport coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ViewportMetrics describes the monospace rendering grid of one buffer.
type ViewportMetrics struct {
	CharWidth  float64
	LineHeight float64
	OriginX    float64
	OriginY    float64
}

// ComputeAnchorGeometry maps each anchor to its rendered bounding box,
// derived purely from the buffer text and the viewport metrics. The
// rendering layer is a thin consumer of the result and never feeds
// measurements back in.
func ComputeAnchorGeometry(buffer string, anchors []m.Anchor, metrics ViewportMetrics) map[string]Rect {
	lineStarts := computeLineStarts(buffer)
	out := make(map[string]Rect, len(anchors))

	for _, anchor := range anchors {
		startLine, startCol := locate(lineStarts, anchor.StartIndex)
		endLine, _ := locate(lineStarts, anchor.EndIndex-1)

		rect := Rect{
			Y:      metrics.OriginY + float64(startLine)*metrics.LineHeight,
			Height: float64(endLine-startLine+1) * metrics.LineHeight,
		}

		if startLine == endLine {
			rect.X = metrics.OriginX + float64(startCol)*metrics.CharWidth
			rect.Width = float64(anchor.Len()) * metrics.CharWidth
		} else {
			// Multi-line anchors span from column zero to their longest
			// covered segment.
			rect.X = metrics.OriginX
			rect.Width = float64(longestSegment(buffer, anchor, lineStarts, startLine, endLine)) * metrics.CharWidth
		}

		out[anchor.ID] = rect
	}

	return out
}

// AttachmentPoint picks where a link attaches to an anchor's bounding box:
// the pointer is clamped into the box, the nearest of the four edges wins
// (ties resolve left, right, top, bottom), and the intersection point comes
// back normalized to [0,1]² relative to the box.
func AttachmentPoint(pointerX, pointerY float64, box Rect) m.Point {
	cx := clamp(pointerX, box.X, box.X+box.Width)
	cy := clamp(pointerY, box.Y, box.Y+box.Height)

	distances := []float64{
		cx - box.X,            // left
		box.X + box.Width - cx, // right
		cy - box.Y,            // top
		box.Y + box.Height - cy, // bottom
	}

	nearest := 0
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[nearest] {
			nearest = i
		}
	}

	nx := normalize(cx-box.X, box.Width)
	ny := normalize(cy-box.Y, box.Height)

	switch nearest {
	case 0:
		return m.Point{X: 0, Y: ny}
	case 1:
		return m.Point{X: 1, Y: ny}
	case 2:
		return m.Point{X: nx, Y: 0}
	default:
		return m.Point{X: nx, Y: 1}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func normalize(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}

	return v / extent
}

// computeLineStarts returns the offset of each line's first character.
func computeLineStarts(buffer string) []int {
	starts := []int{0}

	for i := 0; i < len(buffer); i++ {
		if buffer[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// locate converts a buffer offset into (line, column).
func locate(lineStarts []int, pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	}

	line = 0
	for line+1 < len(lineStarts) && lineStarts[line+1] <= pos {
		line++
	}

	return line, pos - lineStarts[line]
}

// longestSegment measures the longest slice of the anchor on any covered
// line, in characters.
func longestSegment(buffer string, anchor m.Anchor, lineStarts []int, startLine, endLine int) int {
	longest := 0

	for line := startLine; line <= endLine; line++ {
		from := max(anchor.StartIndex, lineStarts[line])

		to := anchor.EndIndex
		if line+1 < len(lineStarts) && lineStarts[line+1]-1 < to {
			to = lineStarts[line+1] - 1
		}

		segment := to - from
		if idx := strings.IndexByte(buffer[from:to], '\n'); idx >= 0 {
			segment = idx
		}

		if segment > longest {
			longest = segment
		}
	}

	return longest
}
