package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/format"
)

// utf8BOM lets spreadsheet tools detect the encoding of the Vietnamese headers.
const utf8BOM = "\ufeff"

var csvHeader = []string{"Hạng mục", "Diện tích thực (m2)", "Hệ số (%)", "Diện tích xây dựng (m2)"}

// CSV writes the breakdown followed by a blank line and the totals.
func CSV(w io.Writer, result estimate.Result) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, item := range result.Breakdown {
		row := []string{
			item.Name,
			plain(item.Area),
			format.ExactPercent(item.Coefficient),
			plain(item.ConvertedArea),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	// Blank separator line before the totals.
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	totals := [][]string{
		{"Tổng cộng", "", "", plain(result.TotalConstructionArea)},
		{"Đơn giá", "", "", plain(result.UnitPrice)},
		{"Thành tiền", "", "", plain(result.TotalCost)},
	}
	if err := cw.WriteAll(totals); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}
	return nil
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
