package estimate

import (
	"fmt"
	"strconv"
)

const (
	defaultWidth  = 5
	defaultLength = 12
	defaultFloors = 2
)

// DefaultConfiguration is the form's starting state: a two-storey 5x12 m townhouse.
func DefaultConfiguration() Configuration {
	return Configuration{
		ConstructionType:      ConstructionTownhouse,
		Width:                 defaultWidth,
		Length:                defaultLength,
		Floors:                defaultFloors,
		FoundationType:        FoundationSingle,
		FoundationCoefficient: FoundationSingle.Coefficient(),
		RoofType:              RoofConcrete,
		RoofCoefficient:       RoofConcrete.Coefficient(),
		PackageType:           PackageFullAverage,
	}
}

// ExampleConfiguration is the worked example with 40% foundation and roof.
func ExampleConfiguration() Configuration {
	cfg := DefaultConfiguration()
	cfg.FoundationCoefficient = 0.4
	cfg.RoofCoefficient = 0.4
	return cfg
}

// WithConstructionType switches the construction type. A one-storey house is pinned
// to a single floor and its dedicated package; a villa gets the villa unit price.
func (c Configuration) WithConstructionType(t ConstructionType) Configuration {
	c.ConstructionType = t
	switch t {
	case ConstructionOneStory:
		c.Floors = 1
		c.PackageType = PackageFullOneStory
	case ConstructionVilla:
		price := float64(VillaUnitPrice)
		c.CustomPrice = &price
	case ConstructionTownhouse:
	}
	return c
}

// WithFoundation switches the foundation and resets its coefficient to the table value.
func (c Configuration) WithFoundation(t FoundationType) Configuration {
	c.FoundationType = t
	c.FoundationCoefficient = t.Coefficient()
	return c
}

// WithRoof switches the roof and resets its coefficient to the table value.
func (c Configuration) WithRoof(t RoofType) Configuration {
	c.RoofType = t
	c.RoofCoefficient = t.Coefficient()
	return c
}

// DefaultName is the name proposed when saving, e.g. "Nhà Phố 5x12m".
func (c Configuration) DefaultName() string {
	return fmt.Sprintf("%s %sx%sm",
		c.ConstructionType.Label(),
		strconv.FormatFloat(c.Width, 'f', -1, 64),
		strconv.FormatFloat(c.Length, 'f', -1, 64),
	)
}

// Clone returns a copy that shares no memory with c.
func (c Configuration) Clone() Configuration {
	if c.CustomPrice != nil {
		price := *c.CustomPrice
		c.CustomPrice = &price
	}
	return c
}
