package estimate

import (
	"fmt"
)

// ConstructionType is the kind of building being estimated.
type ConstructionType int

const (
	ConstructionOneStory ConstructionType = iota
	ConstructionTownhouse
	ConstructionVilla
)

// FoundationType is the foundation system; each carries a default area coefficient.
type FoundationType int

const (
	FoundationSingle FoundationType = iota
	FoundationPile
	FoundationRaft
	FoundationStrip
)

// RoofType is the roof system; each carries a default area coefficient.
type RoofType int

const (
	RoofConcrete RoofType = iota
	RoofTileTruss
	RoofTileConcrete
	RoofCorrugatedIron
)

// PackageType is a finishing-quality tier with a default unit price per m².
type PackageType int

const (
	PackageRough PackageType = iota
	PackageFullOneStory
	PackageFullAverage
	PackageFullGood
	PackageFullPremium
)

type variant struct {
	code  string
	label string
}

var constructionVariants = [...]variant{
	ConstructionOneStory:  {"ONE_STORY", "Nhà Trệt"},
	ConstructionTownhouse: {"TOWNHOUSE", "Nhà Phố"},
	ConstructionVilla:     {"VILLA", "Biệt Thự"},
}

var foundationVariants = [...]variant{
	FoundationSingle: {"SINGLE", "Móng đơn"},
	FoundationPile:   {"PILE", "Móng cọc"},
	FoundationRaft:   {"RAFT", "Móng bè"},
	FoundationStrip:  {"STRIP", "Móng băng"},
}

var roofVariants = [...]variant{
	RoofConcrete:       {"CONCRETE", "Mái bê tông cốt thép"},
	RoofTileTruss:      {"TILE_TRUSS", "Mái ngói kèo sắt"},
	RoofTileConcrete:   {"TILE_CONCRETE", "Mái ngói BTCT"},
	RoofCorrugatedIron: {"CORRUGATED_IRON", "Mái tôn"},
}

var packageVariants = [...]variant{
	PackageRough:        {"ROUGH", "Xây thô"},
	PackageFullOneStory: {"FULL_ONE_STORY", "Trọn gói - Nhà Trệt"},
	PackageFullAverage:  {"FULL_AVERAGE", "Trọn gói - Trung Bình"},
	PackageFullGood:     {"FULL_GOOD", "Trọn gói - Khá"},
	PackageFullPremium:  {"FULL_PREMIUM", "Trọn gói - Cao Cấp"},
}

// lookupVariant accepts either the code or the display label. Labels are what
// older saved data carries.
func lookupVariant(variants []variant, kind, s string) (int, error) {
	for i, v := range variants {
		if s == v.code || s == v.label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func variantAt(variants []variant, i int) (variant, bool) {
	if i < 0 || i >= len(variants) {
		return variant{}, false
	}
	return variants[i], true
}

// Label returns the Vietnamese display label.
func (t ConstructionType) Label() string {
	v, ok := variantAt(constructionVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("ConstructionType(%d)", int(t))
	}
	return v.label
}

// String returns the stable code used for serialization.
func (t ConstructionType) String() string {
	v, ok := variantAt(constructionVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("ConstructionType(%d)", int(t))
	}
	return v.code
}

func (t ConstructionType) MarshalText() ([]byte, error) {
	if _, ok := variantAt(constructionVariants[:], int(t)); !ok {
		return nil, fmt.Errorf("invalid construction type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ConstructionType) UnmarshalText(text []byte) error {
	i, err := lookupVariant(constructionVariants[:], "construction type", string(text))
	if err != nil {
		return err
	}
	*t = ConstructionType(i)
	return nil
}

// ParseConstructionType accepts a code or a label.
func ParseConstructionType(s string) (ConstructionType, error) {
	var t ConstructionType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

// Label returns the Vietnamese display label.
func (t FoundationType) Label() string {
	v, ok := variantAt(foundationVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("FoundationType(%d)", int(t))
	}
	return v.label
}

func (t FoundationType) String() string {
	v, ok := variantAt(foundationVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("FoundationType(%d)", int(t))
	}
	return v.code
}

func (t FoundationType) MarshalText() ([]byte, error) {
	if _, ok := variantAt(foundationVariants[:], int(t)); !ok {
		return nil, fmt.Errorf("invalid foundation type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *FoundationType) UnmarshalText(text []byte) error {
	i, err := lookupVariant(foundationVariants[:], "foundation type", string(text))
	if err != nil {
		return err
	}
	*t = FoundationType(i)
	return nil
}

// ParseFoundationType accepts a code or a label.
func ParseFoundationType(s string) (FoundationType, error) {
	var t FoundationType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

// Label returns the Vietnamese display label.
func (t RoofType) Label() string {
	v, ok := variantAt(roofVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("RoofType(%d)", int(t))
	}
	return v.label
}

func (t RoofType) String() string {
	v, ok := variantAt(roofVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("RoofType(%d)", int(t))
	}
	return v.code
}

func (t RoofType) MarshalText() ([]byte, error) {
	if _, ok := variantAt(roofVariants[:], int(t)); !ok {
		return nil, fmt.Errorf("invalid roof type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *RoofType) UnmarshalText(text []byte) error {
	i, err := lookupVariant(roofVariants[:], "roof type", string(text))
	if err != nil {
		return err
	}
	*t = RoofType(i)
	return nil
}

// ParseRoofType accepts a code or a label.
func ParseRoofType(s string) (RoofType, error) {
	var t RoofType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

// Label returns the Vietnamese display label.
func (t PackageType) Label() string {
	v, ok := variantAt(packageVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("PackageType(%d)", int(t))
	}
	return v.label
}

func (t PackageType) String() string {
	v, ok := variantAt(packageVariants[:], int(t))
	if !ok {
		return fmt.Sprintf("PackageType(%d)", int(t))
	}
	return v.code
}

func (t PackageType) MarshalText() ([]byte, error) {
	if _, ok := variantAt(packageVariants[:], int(t)); !ok {
		return nil, fmt.Errorf("invalid package type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *PackageType) UnmarshalText(text []byte) error {
	i, err := lookupVariant(packageVariants[:], "package type", string(text))
	if err != nil {
		return err
	}
	*t = PackageType(i)
	return nil
}

// ParsePackageType accepts a code or a label.
func ParsePackageType(s string) (PackageType, error) {
	var t PackageType
	err := t.UnmarshalText([]byte(s))
	return t, err
}

// AllConstructionTypes lists construction types in display order.
func AllConstructionTypes() []ConstructionType {
	return []ConstructionType{ConstructionOneStory, ConstructionTownhouse, ConstructionVilla}
}

// AllFoundationTypes lists foundation types in display order.
func AllFoundationTypes() []FoundationType {
	return []FoundationType{FoundationSingle, FoundationPile, FoundationRaft, FoundationStrip}
}

// AllRoofTypes lists roof types in display order.
func AllRoofTypes() []RoofType {
	return []RoofType{RoofConcrete, RoofTileTruss, RoofTileConcrete, RoofCorrugatedIron}
}

// AllPackageTypes lists packages in display order.
func AllPackageTypes() []PackageType {
	return []PackageType{PackageRough, PackageFullOneStory, PackageFullAverage, PackageFullGood, PackageFullPremium}
}
