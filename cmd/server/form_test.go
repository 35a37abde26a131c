package main

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/Simplici0/housecost/internal/estimate"
)

func validForm() url.Values {
	form := url.Values{}
	form.Set("constructionType", "TOWNHOUSE")
	form.Set("width", "5")
	form.Set("length", "12")
	form.Set("floors", "2")
	form.Set("foundationType", "SINGLE")
	form.Set("foundationPercent", "40")
	form.Set("roofType", "CONCRETE")
	form.Set("roofPercent", "40")
	form.Set("packageType", "FULL_AVERAGE")
	return form
}

func TestParseConfigurationForm_Success(t *testing.T) {
	cfg, err := parseConfigurationForm(validForm())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg != estimate.ExampleConfiguration() {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}
}

func TestParseConfigurationForm_AcceptsLabelsAndCheckboxes(t *testing.T) {
	form := validForm()
	form.Set("constructionType", "Biệt Thự")
	form.Set("hasBasement", "on")
	form.Set("hasTerrace", "1")
	form.Set("customPrice", "10000000")

	cfg, err := parseConfigurationForm(form)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.ConstructionType != estimate.ConstructionVilla || !cfg.HasBasement || !cfg.HasTerrace {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}
	if cfg.CustomPrice == nil || *cfg.CustomPrice != 10_000_000 {
		t.Fatalf("custom price not parsed: %v", cfg.CustomPrice)
	}
}

func TestParseConfigurationForm_ZeroCustomPriceMeansNone(t *testing.T) {
	form := validForm()
	form.Set("customPrice", "0")

	cfg, err := parseConfigurationForm(form)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.CustomPrice != nil {
		t.Fatalf("expected no custom price, got %v", *cfg.CustomPrice)
	}
}

func TestParseConfigurationForm_Rejects(t *testing.T) {
	cases := map[string]string{
		"width":             "abc",
		"length":            "0",
		"floors":            "11",
		"foundationPercent": "250",
		"roofPercent":       "-5",
		"customPrice":       "-1",
		"packageType":       "GOLD",
		"roofType":          "",
	}
	for field, value := range cases {
		form := validForm()
		form.Set(field, value)
		if _, err := parseConfigurationForm(form); err == nil {
			t.Fatalf("expected validation error for %s=%q", field, value)
		}
	}

	form := validForm()
	form.Set("floors", "2.5")
	if _, err := parseConfigurationForm(form); err == nil {
		t.Fatalf("expected integer floors validation error")
	}

	nonFinite := []struct{ field, value string }{
		{"width", "NaN"},
		{"length", "+Inf"},
		{"foundationPercent", "NaN"},
		{"roofPercent", "Inf"},
		{"customPrice", "Inf"},
		{"customPrice", "NaN"},
	}
	for _, tc := range nonFinite {
		form := validForm()
		form.Set(tc.field, tc.value)
		_, err := parseConfigurationForm(form)
		if err == nil || !strings.Contains(err.Error(), "phải là số") {
			t.Fatalf("%s=%q: err = %v, want not-a-number error", tc.field, tc.value, err)
		}
	}
}

func TestEncodeConfiguration_RoundTrip(t *testing.T) {
	price := 9_500_000.0
	cfg := estimate.Configuration{
		ConstructionType:      estimate.ConstructionVilla,
		Width:                 8.5,
		Length:                20,
		Floors:                3,
		HasBasement:           true,
		HasTerrace:            true,
		FoundationType:        estimate.FoundationPile,
		FoundationCoefficient: 0.07,
		RoofType:              estimate.RoofTileTruss,
		RoofCoefficient:       0.7,
		PackageType:           estimate.PackageFullPremium,
		CustomPrice:           &price,
	}

	values := encodeConfiguration(cfg)
	if got := values.Get("foundationPercent"); got != "7" {
		t.Fatalf("foundationPercent = %q, want 7", got)
	}

	decoded, err := parseConfigurationForm(values)
	if err != nil {
		t.Fatalf("parse encoded configuration: %v", err)
	}
	if !reflect.DeepEqual(decoded, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, cfg)
	}
}

func TestApplySelections(t *testing.T) {
	form := validForm()
	form.Set("select_construction", "ONE_STORY")
	form.Set("select_roof", "CORRUGATED_IRON")

	cfg, err := parseConfigurationForm(form)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cfg, err = applySelections(cfg, form)
	if err != nil {
		t.Fatalf("applySelections: %v", err)
	}

	if cfg.Floors != 1 || cfg.PackageType != estimate.PackageFullOneStory {
		t.Fatalf("one-storey switch not applied: %+v", cfg)
	}
	if cfg.RoofType != estimate.RoofCorrugatedIron || cfg.RoofCoefficient != 0.2 {
		t.Fatalf("roof switch not applied: %+v", cfg)
	}
	if cfg.FoundationCoefficient != 0.4 {
		t.Fatalf("foundation should keep the typed coefficient, got %v", cfg.FoundationCoefficient)
	}

	form.Set("select_foundation", "CAISSON")
	if _, err := applySelections(cfg, form); err == nil {
		t.Fatalf("expected error for unknown foundation")
	}
}
