package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/format"
	"github.com/Simplici0/housecost/internal/savedconfig"
)

const savedTimeLayout = "2006-01-02 15:04"

func printEstimate(w io.Writer, cfg estimate.Configuration, r estimate.Result) {
	fmt.Fprintf(w, "%s, %s x %s m, %d tầng\n",
		cfg.ConstructionType.Label(), format.Area(cfg.Width), format.Area(cfg.Length), cfg.Floors)
	fmt.Fprintf(w, "Móng: %s (%s)  Mái: %s (%s)  Gói: %s\n",
		cfg.FoundationType.Label(), format.Percent(cfg.FoundationCoefficient),
		cfg.RoofType.Label(), format.Percent(cfg.RoofCoefficient),
		cfg.PackageType.Label())
	fmt.Fprintln(w)

	printBreakdownTable(w, r)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Tổng diện tích XD:  %s m2\n", format.Area(r.TotalConstructionArea))
	fmt.Fprintf(w, "  Đơn giá:            %s\n", format.Currency(r.UnitPrice))
	fmt.Fprintf(w, "  Thành tiền:         %s\n", format.Currency(r.TotalCost))
}

func printBreakdownTable(w io.Writer, r estimate.Result) {
	fmt.Fprintf(w, "%-24s %12s %8s %14s\n", "Hạng mục", "DT thực", "Hệ số", "DT xây dựng")
	fmt.Fprintf(w, "%-24s %12s %8s %14s\n",
		strings.Repeat("-", 24), strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 14))

	for _, item := range r.Breakdown {
		fmt.Fprintf(w, "%-24s %12s %8s %14s\n",
			item.Name, format.Area(item.Area), format.Percent(item.Coefficient), format.Area(item.ConvertedArea))
	}
}

func printSavedList(w io.Writer, entries []savedconfig.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No saved configurations.")
		return
	}

	for _, e := range entries {
		total := estimate.Compute(e.Data).TotalCost
		fmt.Fprintf(w, "%-36s  %-16s  %-30s %s\n",
			e.ID, e.SavedAt().Format(savedTimeLayout), e.Name, format.Currency(total))
	}
}
