package format

import (
	"strings"
	"sync"
	"testing"
)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestCurrency_GroupsAndAppendsSymbol(t *testing.T) {
	got := Currency(1_008_000_000)

	if !strings.HasSuffix(got, " ₫") {
		t.Fatalf("Currency = %q, want dong suffix", got)
	}
	if digits := digitsOnly(got); digits != "1008000000" {
		t.Fatalf("Currency digits = %q, want 1008000000", digits)
	}
	if !strings.Contains(got, ".") {
		t.Fatalf("Currency = %q, want dot grouping", got)
	}
}

func TestCurrency_DropsFraction(t *testing.T) {
	if digits := digitsOnly(Currency(6_000_000.4)); digits != "6000000" {
		t.Fatalf("Currency digits = %q", digits)
	}
}

func TestArea_OneDecimal(t *testing.T) {
	cases := map[float64]string{
		168:   "168.0",
		24.04: "24.0",
		24.05: "24.1",
		0:     "0.0",
	}
	for in, want := range cases {
		if got := Area(in); got != want {
			t.Fatalf("Area(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.4); got != "40%" {
		t.Fatalf("Percent(0.4) = %q", got)
	}
	if got := Percent(1.5); got != "150%" {
		t.Fatalf("Percent(1.5) = %q", got)
	}
}

func TestExactPercent_KeepsFraction(t *testing.T) {
	cases := map[float64]string{
		0.456: "45.6%",
		0.07:  "7%",
		0.4:   "40%",
		1.5:   "150%",
	}
	for in, want := range cases {
		if got := ExactPercent(in); got != want {
			t.Fatalf("ExactPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestASCII_FoldsVietnamese(t *testing.T) {
	cases := map[string]string{
		"Tầng hầm":             "Tang ham",
		"Móng đơn":             "Mong don",
		"Mái bê tông cốt thép": "Mai be tong cot thep",
		"Đơn giá":              "Don gia",
		"plain":                "plain",
	}
	for in, want := range cases {
		if got := ASCII(in); got != want {
			t.Fatalf("ASCII(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestASCII_ConcurrentCallers(t *testing.T) {
	const want = "Mai be tong cot thep"

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if got := ASCII("Mái bê tông cốt thép"); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Fatalf("ASCII = %q, want %q", got, want)
	}
}
