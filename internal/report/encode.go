package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// PDF Encoding
// ---------------------------------------------------------------------------

const producer = "cortecaja"

// Encode replays the display list of doc into a PDF and writes it to w.
func Encode(doc *Document, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator(producer, true)
	pdf.SetProducer(producer, true)
	if !doc.Created.IsZero() {
		pdf.SetCreationDate(doc.Created)
		pdf.SetModificationDate(doc.Created)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op := op.(type) {
			case TextOp:
				pdf.SetFont(fontFamily, op.Font.style(), op.Size)
				pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Text(op.X, op.Y, tr(op.Text))
			case LineOp:
				pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.SetLineWidth(op.Width)
				pdf.Line(op.X1, op.Y1, op.X2, op.Y2)
			case RectOp:
				pdf.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
				pdf.Rect(op.X, op.Y, op.W, op.H, "F")
			case ShapeOp:
				drawShape(pdf, op)
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("PDF output error: %w", err)
	}
	return nil
}

func drawShape(pdf *fpdf.Fpdf, op ShapeOp) {
	style := ""
	if op.Fill != nil {
		pdf.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
		style += "F"
	}
	if op.Stroke != nil {
		pdf.SetDrawColor(op.Stroke.R, op.Stroke.G, op.Stroke.B)
		pdf.SetLineWidth(op.LineWidth)
		style += "D"
	}
	if style == "" || len(op.Path) == 0 {
		return
	}

	for _, cmd := range op.Path {
		switch cmd.Op {
		case MoveTo:
			pdf.MoveTo(cmd.To.X, cmd.To.Y)
		case LineTo:
			pdf.LineTo(cmd.To.X, cmd.To.Y)
		case CurveTo:
			pdf.CurveBezierCubicTo(cmd.C1.X, cmd.C1.Y, cmd.C2.X, cmd.C2.Y, cmd.To.X, cmd.To.Y)
		case ClosePath:
			pdf.ClosePath()
		}
	}
	pdf.DrawPath(style)
}
