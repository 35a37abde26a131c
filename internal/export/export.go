// Package export writes a calculation result as downloadable files.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/Simplici0/housecost/internal/chart"
	"github.com/Simplici0/housecost/internal/estimate"
)

// Title heads every document export.
const Title = "DỰ TOÁN CHI PHÍ XÂY DỰNG"

const fileBase = "Du_Toan"

var (
	// ErrUnknownFormat is returned for a format name not in Formats.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrChart wraps chart rendering failures so callers can report them apart
	// from document failures.
	ErrChart = errors.New("chart rendering failed")
)

// Format describes one downloadable representation.
type Format struct {
	Name        string
	ContentType string
	Extension   string
	// NeedsChart formats embed the chart image when it can be rendered.
	NeedsChart bool
	write      func(w io.Writer, result estimate.Result, chartPNG []byte) error
}

// Filename is the suggested download name.
func (f Format) Filename() string {
	if f.Name == "png" {
		return "Bieu_Do.png"
	}
	return fileBase + f.Extension
}

// Formats lists every supported export by name.
var Formats = map[string]Format{
	"csv": {
		Name:        "csv",
		ContentType: "text/csv; charset=utf-8",
		Extension:   ".csv",
		write: func(w io.Writer, result estimate.Result, _ []byte) error {
			return CSV(w, result)
		},
	},
	"xls": {
		Name:        "xls",
		ContentType: "application/vnd.ms-excel",
		Extension:   ".xls",
		NeedsChart:  true,
		write: func(w io.Writer, result estimate.Result, chartPNG []byte) error {
			return OfficeHTML(w, KindExcel, result, chartPNG)
		},
	},
	"doc": {
		Name:        "doc",
		ContentType: "application/msword",
		Extension:   ".doc",
		NeedsChart:  true,
		write: func(w io.Writer, result estimate.Result, chartPNG []byte) error {
			return OfficeHTML(w, KindWord, result, chartPNG)
		},
	},
	"xlsx": {
		Name:        "xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Extension:   ".xlsx",
		NeedsChart:  true,
		write:       XLSX,
	},
	"pdf": {
		Name:        "pdf",
		ContentType: "application/pdf",
		Extension:   ".pdf",
		NeedsChart:  true,
		write:       PDF,
	},
	"png": {
		Name:        "png",
		ContentType: "image/png",
		Extension:   ".png",
		NeedsChart:  true,
		write: func(w io.Writer, _ estimate.Result, chartPNG []byte) error {
			_, err := w.Write(chartPNG)
			return err
		},
	},
}

// Names returns the supported format names, sorted.
func Names() []string {
	names := make([]string, 0, len(Formats))
	for name := range Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a format by name.
func Lookup(name string) (Format, error) {
	f, ok := Formats[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Write renders result in the named format. The chart is rendered on demand: the
// png export fails with ErrChart when it cannot be drawn, document exports log the
// failure and are written without the image.
func Write(w io.Writer, name string, result estimate.Result) error {
	f, err := Lookup(name)
	if err != nil {
		return err
	}

	var chartPNG []byte
	if f.NeedsChart {
		chartPNG, err = chart.RenderPNG(result, chart.DefaultOptions())
		if err != nil {
			if f.Name == "png" {
				return fmt.Errorf("%w: %w", ErrChart, err)
			}
			log.Printf("export %s without chart: %v", f.Name, err)
			chartPNG = nil
		}
	}

	if err := f.write(w, result, chartPNG); err != nil {
		return fmt.Errorf("write %s export: %w", f.Name, err)
	}
	return nil
}
