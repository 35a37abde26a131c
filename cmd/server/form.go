package main

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/housecost/internal/estimate"
)

const (
	maxFloors  = 10
	maxPercent = 200
)

// configForm mirrors the form inputs as entered, so a rejected submission can be
// shown back to the user unchanged.
type configForm struct {
	ConstructionType  string
	Width             string
	Length            string
	Floors            string
	HasBasement       bool
	HasTerrace        bool
	FoundationType    string
	FoundationPercent string
	RoofType          string
	RoofPercent       string
	PackageType       string
	CustomPrice       string
}

func formFromValues(values url.Values) configForm {
	return configForm{
		ConstructionType:  strings.TrimSpace(values.Get("constructionType")),
		Width:             strings.TrimSpace(values.Get("width")),
		Length:            strings.TrimSpace(values.Get("length")),
		Floors:            strings.TrimSpace(values.Get("floors")),
		HasBasement:       isChecked(values.Get("hasBasement")),
		HasTerrace:        isChecked(values.Get("hasTerrace")),
		FoundationType:    strings.TrimSpace(values.Get("foundationType")),
		FoundationPercent: strings.TrimSpace(values.Get("foundationPercent")),
		RoofType:          strings.TrimSpace(values.Get("roofType")),
		RoofPercent:       strings.TrimSpace(values.Get("roofPercent")),
		PackageType:       strings.TrimSpace(values.Get("packageType")),
		CustomPrice:       strings.TrimSpace(values.Get("customPrice")),
	}
}

func formFromConfiguration(cfg estimate.Configuration) configForm {
	form := configForm{
		ConstructionType:  cfg.ConstructionType.String(),
		Width:             formatFloat(cfg.Width),
		Length:            formatFloat(cfg.Length),
		Floors:            strconv.Itoa(cfg.Floors),
		HasBasement:       cfg.HasBasement,
		HasTerrace:        cfg.HasTerrace,
		FoundationType:    cfg.FoundationType.String(),
		FoundationPercent: coefficientToPercent(cfg.FoundationCoefficient),
		RoofType:          cfg.RoofType.String(),
		RoofPercent:       coefficientToPercent(cfg.RoofCoefficient),
		PackageType:       cfg.PackageType.String(),
	}
	if cfg.CustomPrice != nil && *cfg.CustomPrice > 0 {
		form.CustomPrice = formatFloat(*cfg.CustomPrice)
	}
	return form
}

// hasConfiguration reports whether values carry a submitted configuration.
func hasConfiguration(values url.Values) bool {
	return values.Has("width") || values.Has("constructionType")
}

// parseConfigurationForm validates the submitted inputs. The calculator accepts any
// numbers; the limits here only guard what a person can type into the form.
func parseConfigurationForm(values url.Values) (estimate.Configuration, error) {
	form := formFromValues(values)
	var cfg estimate.Configuration
	var err error

	if cfg.ConstructionType, err = estimate.ParseConstructionType(form.ConstructionType); err != nil {
		return cfg, fmt.Errorf("Loại công trình không hợp lệ")
	}
	if cfg.Width, err = parsePositiveFloat(form.Width, "Chiều rộng"); err != nil {
		return cfg, err
	}
	if cfg.Length, err = parsePositiveFloat(form.Length, "Chiều dài"); err != nil {
		return cfg, err
	}
	if cfg.Floors, err = parseFloors(form.Floors); err != nil {
		return cfg, err
	}
	cfg.HasBasement = form.HasBasement
	cfg.HasTerrace = form.HasTerrace

	if cfg.FoundationType, err = estimate.ParseFoundationType(form.FoundationType); err != nil {
		return cfg, fmt.Errorf("Loại móng không hợp lệ")
	}
	if cfg.FoundationCoefficient, err = parsePercent(form.FoundationPercent, "Hệ số móng"); err != nil {
		return cfg, err
	}
	if cfg.RoofType, err = estimate.ParseRoofType(form.RoofType); err != nil {
		return cfg, fmt.Errorf("Loại mái không hợp lệ")
	}
	if cfg.RoofCoefficient, err = parsePercent(form.RoofPercent, "Hệ số mái"); err != nil {
		return cfg, err
	}
	if cfg.PackageType, err = estimate.ParsePackageType(form.PackageType); err != nil {
		return cfg, fmt.Errorf("Gói thầu không hợp lệ")
	}

	if form.CustomPrice != "" {
		price, err := parseNonNegativeFloat(form.CustomPrice, "Đơn giá tùy chỉnh")
		if err != nil {
			return cfg, err
		}
		if price > 0 {
			cfg.CustomPrice = &price
		}
	}

	return cfg, nil
}

// applySelections runs the type-switch buttons after the rest of the form is read.
func applySelections(cfg estimate.Configuration, values url.Values) (estimate.Configuration, error) {
	if raw := values.Get("select_construction"); raw != "" {
		t, err := estimate.ParseConstructionType(raw)
		if err != nil {
			return cfg, fmt.Errorf("Loại công trình không hợp lệ")
		}
		cfg = cfg.WithConstructionType(t)
	}
	if raw := values.Get("select_foundation"); raw != "" {
		t, err := estimate.ParseFoundationType(raw)
		if err != nil {
			return cfg, fmt.Errorf("Loại móng không hợp lệ")
		}
		cfg = cfg.WithFoundation(t)
	}
	if raw := values.Get("select_roof"); raw != "" {
		t, err := estimate.ParseRoofType(raw)
		if err != nil {
			return cfg, fmt.Errorf("Loại mái không hợp lệ")
		}
		cfg = cfg.WithRoof(t)
	}
	return cfg, nil
}

// encodeConfiguration is the inverse of parseConfigurationForm.
func encodeConfiguration(cfg estimate.Configuration) url.Values {
	form := formFromConfiguration(cfg)
	values := url.Values{}
	values.Set("constructionType", form.ConstructionType)
	values.Set("width", form.Width)
	values.Set("length", form.Length)
	values.Set("floors", form.Floors)
	if form.HasBasement {
		values.Set("hasBasement", "1")
	}
	if form.HasTerrace {
		values.Set("hasTerrace", "1")
	}
	values.Set("foundationType", form.FoundationType)
	values.Set("foundationPercent", form.FoundationPercent)
	values.Set("roofType", form.RoofType)
	values.Set("roofPercent", form.RoofPercent)
	values.Set("packageType", form.PackageType)
	if form.CustomPrice != "" {
		values.Set("customPrice", form.CustomPrice)
	}
	return values
}

func isChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// parseFiniteFloat rejects NaN and infinities, which ParseFloat accepts.
func parseFiniteFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s phải là số", field)
	}
	return value, nil
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%s phải lớn hơn hoặc bằng 0", field)
	}
	return value, nil
}

func parsePositiveFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s phải lớn hơn 0", field)
	}
	return value, nil
}

// parsePercent reads a whole-number style percentage and returns the coefficient.
func parsePercent(raw, field string) (float64, error) {
	value, err := parseNonNegativeFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value > maxPercent {
		return 0, fmt.Errorf("%s phải nằm trong khoảng 0 đến %d%%", field, maxPercent)
	}
	return value / 100, nil
}

func parseFloors(raw string) (int, error) {
	floors, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("Số tầng phải là số nguyên")
	}
	if floors < 1 || floors > maxFloors {
		return 0, fmt.Errorf("Số tầng phải từ 1 đến %d", maxFloors)
	}
	return floors, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// coefficientToPercent avoids float noise such as 0.07*100 = 7.000000000000001.
func coefficientToPercent(coefficient float64) string {
	return decimal.NewFromFloat(coefficient).Shift(2).String()
}
