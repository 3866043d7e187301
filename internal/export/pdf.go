// Package export writes the canvas out as a vector PDF.
package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"LocalPaint/internal/state"
)

// Page margin around the drawing, in points.
const margin = 10

const (
	minPageWidth  = 200
	minPageHeight = 200
)

// pdfSurface draws shapes onto a gofpdf page, one canvas pixel per point,
// shifted so the drawing's top-left lands inside the margin.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	dx, dy float64
}

func (s *pdfSurface) stroke(c color.NRGBA, thickness int) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(float64(thickness))
}

func (s *pdfSurface) Line(x1, y1, x2, y2 int, c color.NRGBA, thickness int) {
	s.stroke(c, thickness)
	s.pdf.Line(float64(x1)+s.dx, float64(y1)+s.dy, float64(x2)+s.dx, float64(y2)+s.dy)
}

func (s *pdfSurface) Rect(x, y, w, h int, c color.NRGBA, thickness int) {
	r := state.Rect{Min: state.Pt(x, y), Max: state.Pt(x+w, y+h)}.Canon()
	s.stroke(c, thickness)
	style := "D"
	if r.FilledBy(thickness) {
		s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		style = "FD"
	}
	s.pdf.Rect(float64(r.Min.X)+s.dx, float64(r.Min.Y)+s.dy, float64(r.Dx()), float64(r.Dy()), style)
}

func (s *pdfSurface) Ellipse(x, y, w, h int, c color.NRGBA, thickness int) {
	r := state.Rect{Min: state.Pt(x, y), Max: state.Pt(x+w, y+h)}.Canon()
	rx, ry := float64(r.Dx())/2, float64(r.Dy())/2
	s.stroke(c, thickness)
	s.pdf.Ellipse(float64(r.Min.X)+rx+s.dx, float64(r.Min.Y)+ry+s.dy, rx, ry, 0, "D")
}

func (s *pdfSurface) Polygon(pts []state.Point, c color.NRGBA, thickness int) {
	poly := make([]gofpdf.PointType, 0, len(pts))
	for _, p := range pts {
		poly = append(poly, gofpdf.PointType{X: float64(p.X) + s.dx, Y: float64(p.Y) + s.dy})
	}
	s.stroke(c, thickness)
	s.pdf.Polygon(poly, "D")
}

// WritePDF renders every layer of the canvas onto a single page sized to fit
// the drawing.
func WritePDF(w io.Writer, c *state.Canvas) error {
	bounds := c.Bounds()
	width := float64(bounds.Dx() + 2*margin)
	height := float64(bounds.Dy() + 2*margin)
	if width < minPageWidth {
		width = minPageWidth
	}
	if height < minPageHeight {
		height = minPageHeight
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.AddPage()

	c.Render(&pdfSurface{
		pdf: p,
		dx:  float64(margin - bounds.Min.X),
		dy:  float64(margin - bounds.Min.Y),
	})

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d layers (%.0fx%.0f pt)", len(c.Layers()), width, height)
	return nil
}
