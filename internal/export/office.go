package export

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/format"
)

// Kind selects which Office application an HTML export targets.
type Kind string

const (
	KindExcel Kind = "xls"
	KindWord  Kind = "doc"
)

var officeTemplate = template.Must(template.New("office").Parse(`{{if .Excel -}}
<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel" xmlns="http://www.w3.org/TR/REC-html40">
{{- else -}}
<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
{{- end}}
<head>
<meta charset="UTF-8">
<style>
body { font-family: 'Times New Roman', Times, serif; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
td, th { border: 1px solid #000000; padding: 8px; vertical-align: middle; }
.header-row { background-color: #f0f0f0; font-weight: bold; text-align: center; }
.title { font-size: 20px; font-weight: bold; text-align: center; color: #1e3a8a; border: none; height: 40px; }
.total { color: #dc2626; font-weight: bold; font-size: 14px; text-align: right; }
.sum { text-align: right; font-weight: bold; }
.note { color: #666666; font-size: 0.9em; }
</style>
</head>
<body>
<table style="width: 100%;">
<tr><td colspan="4" class="title">{{.Title}}</td></tr>
{{- if .Chart}}
<tr><td colspan="4" style="text-align: center; border: none; padding: 20px;"><img src="{{.Chart}}" width="600" style="width: 600px; height: auto;" alt="Chart"></td></tr>
{{- end}}
<tr class="header-row"><th>Hạng mục</th><th>Diện tích thực (m²)</th><th>Hệ số</th><th>DT Xây dựng (m²)</th></tr>
{{- range .Rows}}
<tr>
<td>{{.Name}} <span class="note">({{.Description}})</span></td>
<td style="text-align: center;">{{.Area}}</td>
<td style="text-align: center;">{{.Percent}}</td>
<td style="text-align: right;">{{.Converted}}</td>
</tr>
{{- end}}
<tr><td colspan="3" class="sum">Tổng diện tích XD</td><td class="sum">{{.TotalArea}} m²</td></tr>
<tr><td colspan="3" class="sum">Đơn giá</td><td class="sum">{{.UnitPrice}}</td></tr>
<tr><td colspan="3" class="total">THÀNH TIỀN</td><td class="total">{{.TotalCost}}</td></tr>
</table>
</body>
</html>
`))

type officeRow struct {
	Name        string
	Description string
	Area        string
	Percent     string
	Converted   string
}

type officeView struct {
	Excel     bool
	Title     string
	Chart     template.URL
	Rows      []officeRow
	TotalArea string
	UnitPrice string
	TotalCost string
}

// OfficeHTML writes an HTML document that Excel or Word opens as a native file.
// A nil chartPNG leaves the chart row out.
func OfficeHTML(w io.Writer, kind Kind, result estimate.Result, chartPNG []byte) error {
	if kind != KindExcel && kind != KindWord {
		return fmt.Errorf("%w: office kind %q", ErrUnknownFormat, kind)
	}

	view := officeView{
		Excel:     kind == KindExcel,
		Title:     Title,
		TotalArea: format.Area(result.TotalConstructionArea),
		UnitPrice: format.Currency(result.UnitPrice),
		TotalCost: format.Currency(result.TotalCost),
	}
	if len(chartPNG) > 0 {
		view.Chart = pngDataURL(chartPNG)
	}
	for _, item := range result.Breakdown {
		view.Rows = append(view.Rows, officeRow{
			Name:        item.Name,
			Description: item.Description,
			Area:        format.Area(item.Area),
			Percent:     format.Percent(item.Coefficient),
			Converted:   format.Area(item.ConvertedArea),
		})
	}

	return officeTemplate.Execute(w, view)
}

func pngDataURL(data []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
}
