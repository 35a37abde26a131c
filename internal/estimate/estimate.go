package estimate

import (
	"fmt"
	"math"
	"strconv"
)

// Configuration describes the house being estimated. Coefficients are fractions
// (0.4 means 40%), never percentages.
type Configuration struct {
	ConstructionType      ConstructionType `json:"constructionType" yaml:"constructionType"`
	Width                 float64          `json:"width" yaml:"width"`
	Length                float64          `json:"length" yaml:"length"`
	Floors                int              `json:"floors" yaml:"floors"`
	HasBasement           bool             `json:"hasBasement" yaml:"hasBasement"`
	HasTerrace            bool             `json:"hasTerrace" yaml:"hasTerrace"`
	FoundationType        FoundationType   `json:"foundationType" yaml:"foundationType"`
	FoundationCoefficient float64          `json:"foundationCoefficient" yaml:"foundationCoefficient"`
	RoofType              RoofType         `json:"roofType" yaml:"roofType"`
	RoofCoefficient       float64          `json:"roofCoefficient" yaml:"roofCoefficient"`
	PackageType           PackageType      `json:"packageType" yaml:"packageType"`
	CustomPrice           *float64         `json:"customPrice,omitempty" yaml:"customPrice,omitempty"`
}

// LineItem is one row of the area breakdown.
type LineItem struct {
	Name          string  `json:"name"`
	Area          float64 `json:"area"`
	Coefficient   float64 `json:"coefficient"`
	ConvertedArea float64 `json:"convertedArea"`
	Description   string  `json:"description"`
}

// Result is the full output of Compute.
type Result struct {
	Breakdown             []LineItem `json:"breakdown"`
	TotalConstructionArea float64    `json:"totalConstructionArea"`
	UnitPrice             float64    `json:"unitPrice"`
	TotalCost             float64    `json:"totalCost"`
}

const (
	basementName = "Tầng hầm"
	terraceName  = "Sân thượng"
)

// Compute derives the area breakdown and cost for cfg. It never fails: degenerate
// dimensions simply produce zero or negative areas, and floors <= 0 yields no floor rows.
func Compute(cfg Configuration) Result {
	footprint := cfg.Width * cfg.Length
	breakdown := make([]LineItem, 0, max(cfg.Floors, 0)+4)

	breakdown = append(breakdown, LineItem{
		Name:          cfg.FoundationType.Label(),
		Area:          footprint,
		Coefficient:   cfg.FoundationCoefficient,
		ConvertedArea: footprint * cfg.FoundationCoefficient,
		Description:   fmt.Sprintf("Diện tích đất x %d%%", roundPercent(cfg.FoundationCoefficient)),
	})

	if cfg.HasBasement {
		breakdown = append(breakdown, LineItem{
			Name:          basementName,
			Area:          footprint,
			Coefficient:   BasementCoefficient,
			ConvertedArea: footprint * BasementCoefficient,
			Description:   "Diện tích sàn x " + exactPercent(BasementCoefficient) + "%",
		})
	}

	for i := 1; i <= cfg.Floors; i++ {
		breakdown = append(breakdown, LineItem{
			Name:          fmt.Sprintf("Tầng %d (Sàn)", i),
			Area:          footprint,
			Coefficient:   FloorCoefficient,
			ConvertedArea: footprint * FloorCoefficient,
			Description:   "100% diện tích sàn",
		})
	}

	if cfg.HasTerrace {
		breakdown = append(breakdown, LineItem{
			Name:          terraceName,
			Area:          footprint,
			Coefficient:   TerraceCoefficient,
			ConvertedArea: footprint * TerraceCoefficient,
			Description:   "Diện tích sàn x " + exactPercent(TerraceCoefficient) + "%",
		})
	}

	breakdown = append(breakdown, LineItem{
		Name:          cfg.RoofType.Label(),
		Area:          footprint,
		Coefficient:   cfg.RoofCoefficient,
		ConvertedArea: footprint * cfg.RoofCoefficient,
		Description:   fmt.Sprintf("Diện tích sàn x %d%%", roundPercent(cfg.RoofCoefficient)),
	})

	total := 0.0
	for _, item := range breakdown {
		total += item.ConvertedArea
	}

	unitPrice := cfg.UnitPrice()

	return Result{
		Breakdown:             breakdown,
		TotalConstructionArea: total,
		UnitPrice:             unitPrice,
		TotalCost:             total * unitPrice,
	}
}

// UnitPrice is the custom price when set and positive, otherwise the package price.
func (c Configuration) UnitPrice() float64 {
	if c.CustomPrice != nil && *c.CustomPrice > 0 {
		return *c.CustomPrice
	}
	return c.PackageType.UnitPrice()
}

// Footprint is the land area, width × length.
func (c Configuration) Footprint() float64 {
	return c.Width * c.Length
}

func roundPercent(coefficient float64) int {
	return int(math.Round(coefficient * 100))
}

func exactPercent(coefficient float64) string {
	return strconv.FormatFloat(coefficient*100, 'f', -1, 64)
}
