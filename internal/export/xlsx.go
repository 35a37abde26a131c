package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/housecost/internal/estimate"
)

// SheetName is the worksheet holding the estimate.
const SheetName = "Du toan"

const (
	xlsxHeaderRow = 3
	xlsxChartCell = "F3"
)

var areaFormat = "#,##0.0"

// XLSX writes a workbook with the breakdown, totals and, when available, the chart.
func XLSX(w io.Writer, result estimate.Result, chartPNG []byte) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	set := func(cell string, value any, style int) error {
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
		if style != 0 {
			if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
				return fmt.Errorf("style %s: %w", cell, err)
			}
		}
		return nil
	}

	if err := set("A1", Title, styles.title); err != nil {
		return err
	}
	if err := f.MergeCell(SheetName, "A1", "D1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}

	for i, h := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, xlsxHeaderRow)
		if err := set(cell, h, styles.header); err != nil {
			return err
		}
	}

	row := xlsxHeaderRow + 1
	for _, item := range result.Breakdown {
		cells := []struct {
			col   string
			value any
			style int
		}{
			{"A", item.Name, 0},
			{"B", item.Area, styles.area},
			{"C", item.Coefficient, styles.percent},
			{"D", item.ConvertedArea, styles.area},
			{"E", item.Description, 0},
		}
		for _, c := range cells {
			if err := set(fmt.Sprintf("%s%d", c.col, row), c.value, c.style); err != nil {
				return err
			}
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
		style int
	}{
		{"Tổng cộng", result.TotalConstructionArea, styles.area},
		{"Đơn giá", result.UnitPrice, styles.money},
		{"Thành tiền", result.TotalCost, styles.money},
	}
	for _, t := range totals {
		if err := set(fmt.Sprintf("A%d", row), t.label, styles.bold); err != nil {
			return err
		}
		if err := set(fmt.Sprintf("D%d", row), t.value, t.style); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "A", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "D", 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "E", "E", 26); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if len(chartPNG) > 0 {
		pic := &excelize.Picture{
			Extension: ".png",
			File:      chartPNG,
			Format:    &excelize.GraphicOptions{ScaleX: 0.5, ScaleY: 0.5, AltText: "Biểu đồ"},
		}
		if err := f.AddPictureFromBytes(SheetName, xlsxChartCell, pic); err != nil {
			return fmt.Errorf("add chart picture: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type xlsxStyles struct {
	title, header, bold, area, percent, money int
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16, Color: "1E3A8A"},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
			Border:    border,
		}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.area, &excelize.Style{CustomNumFmt: &areaFormat}},
		{&s.percent, &excelize.Style{NumFmt: 9}},
		{&s.money, &excelize.Style{NumFmt: 3, Font: &excelize.Font{Bold: true, Color: "DC2626"}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}
