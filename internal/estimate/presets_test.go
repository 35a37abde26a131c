package estimate

import "testing"

func TestDefaultConfiguration_UsesTableCoefficients(t *testing.T) {
	cfg := DefaultConfiguration()

	if cfg.FoundationCoefficient != 0.3 || cfg.RoofCoefficient != 0.4 {
		t.Fatalf("unexpected coefficients: %+v", cfg)
	}
	if cfg.Width != 5 || cfg.Length != 12 || cfg.Floors != 2 {
		t.Fatalf("unexpected dimensions: %+v", cfg)
	}
	if cfg.CustomPrice != nil {
		t.Fatalf("default must not carry a custom price")
	}
}

func TestWithConstructionType_OneStoryPinsFloorsAndPackage(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Floors = 4

	next := cfg.WithConstructionType(ConstructionOneStory)

	if next.Floors != 1 || next.PackageType != PackageFullOneStory {
		t.Fatalf("unexpected one-storey config: %+v", next)
	}
	if cfg.Floors != 4 {
		t.Fatalf("original configuration was mutated")
	}
}

func TestWithConstructionType_VillaSetsCustomPrice(t *testing.T) {
	next := DefaultConfiguration().WithConstructionType(ConstructionVilla)

	if next.CustomPrice == nil || *next.CustomPrice != 10_000_000 {
		t.Fatalf("expected villa custom price, got %v", next.CustomPrice)
	}
	if got := Compute(next).UnitPrice; got != 10_000_000 {
		t.Fatalf("unitPrice = %v", got)
	}
}

func TestWithConstructionType_TownhouseKeepsEverythingElse(t *testing.T) {
	cfg := DefaultConfiguration().WithConstructionType(ConstructionOneStory)
	next := cfg.WithConstructionType(ConstructionTownhouse)

	if next.ConstructionType != ConstructionTownhouse || next.Floors != 1 || next.PackageType != PackageFullOneStory {
		t.Fatalf("unexpected townhouse config: %+v", next)
	}
}

func TestWithFoundationAndRoof_ResetCoefficients(t *testing.T) {
	cfg := ExampleConfiguration()

	cfg = cfg.WithFoundation(FoundationRaft).WithRoof(RoofCorrugatedIron)

	if cfg.FoundationCoefficient != 1.0 {
		t.Fatalf("foundation coefficient = %v", cfg.FoundationCoefficient)
	}
	if cfg.RoofCoefficient != 0.2 {
		t.Fatalf("roof coefficient = %v", cfg.RoofCoefficient)
	}
}

func TestDefaultName(t *testing.T) {
	cfg := DefaultConfiguration()
	if got := cfg.DefaultName(); got != "Nhà Phố 5x12m" {
		t.Fatalf("DefaultName = %q", got)
	}

	cfg.Width = 4.5
	if got := cfg.DefaultName(); got != "Nhà Phố 4.5x12m" {
		t.Fatalf("DefaultName = %q", got)
	}
}

func TestClone_DetachesCustomPrice(t *testing.T) {
	cfg := DefaultConfiguration().WithConstructionType(ConstructionVilla)
	clone := cfg.Clone()
	*clone.CustomPrice = 1

	if *cfg.CustomPrice != VillaUnitPrice {
		t.Fatalf("clone shares custom price with original")
	}
}
