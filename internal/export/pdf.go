package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/format"
)

const chartImageName = "chart"

// PDF writes an A4 report. The core fonts only cover Latin-1, so Vietnamese text
// is folded to ASCII and amounts are labelled VND.
func PDF(w io.Writer, result estimate.Result, chartPNG []byte) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(format.ASCII(s)) }

	pdf.SetTitle(format.ASCII(Title), false)
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(190, 12, text(Title), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if len(chartPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(chartImageName, opts, bytes.NewReader(chartPNG))
		// 1200x800 raster at 150mm wide keeps the 3:2 ratio.
		pdf.ImageOptions(chartImageName, 30, pdf.GetY(), 150, 0, true, opts, 0, "")
		pdf.Ln(4)
	}

	widths := []float64{70, 40, 30, 50}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range []string{"Hang muc", "Dien tich thuc (m2)", "He so", "DT xay dung (m2)"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range result.Breakdown {
		pdf.CellFormat(widths[0], 7, text(item.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, format.Area(item.Area), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, format.Percent(item.Coefficient), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, format.Area(item.ConvertedArea), "1", 1, "R", false, 0, "")
	}

	labelWidth := widths[0] + widths[1] + widths[2]
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(labelWidth, 8, text("Tổng diện tích XD"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, format.Area(result.TotalConstructionArea)+" m2", "1", 1, "R", false, 0, "")
	pdf.CellFormat(labelWidth, 8, text("Đơn giá"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, format.Number(result.UnitPrice)+" VND", "1", 1, "R", false, 0, "")

	pdf.SetTextColor(220, 38, 38)
	pdf.CellFormat(labelWidth, 9, text("THÀNH TIỀN"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 9, format.Number(result.TotalCost)+" VND", "1", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
