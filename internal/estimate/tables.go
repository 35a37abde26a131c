package estimate

// Area conversion coefficients, as fractions of the land footprint.
const (
	FloorCoefficient    = 1.0
	BasementCoefficient = 1.5
	TerraceCoefficient  = 0.5
)

// Reference unit prices in VND per converted m².
const (
	priceRough        = 3_800_000
	priceFullOneStory = 5_000_000
	priceFullAverage  = 6_000_000
	priceFullGood     = 7_000_000
	priceFullPremium  = 8_000_000

	// VillaUnitPrice is the custom price applied when switching to a villa.
	VillaUnitPrice = 10_000_000
)

// Coefficient returns the table coefficient for the foundation type.
func (t FoundationType) Coefficient() float64 {
	switch t {
	case FoundationSingle:
		return 0.3
	case FoundationPile:
		return 0.5
	case FoundationStrip:
		return 0.7
	case FoundationRaft:
		return 1.0
	default:
		return 0
	}
}

// Coefficient returns the table coefficient for the roof type.
func (t RoofType) Coefficient() float64 {
	switch t {
	case RoofConcrete:
		return 0.4
	case RoofCorrugatedIron:
		return 0.2
	case RoofTileTruss:
		return 0.7
	case RoofTileConcrete:
		return 1.0
	default:
		return 0
	}
}

// UnitPrice returns the reference price per m² for the package.
func (t PackageType) UnitPrice() float64 {
	switch t {
	case PackageRough:
		return priceRough
	case PackageFullOneStory:
		return priceFullOneStory
	case PackageFullAverage:
		return priceFullAverage
	case PackageFullGood:
		return priceFullGood
	case PackageFullPremium:
		return priceFullPremium
	default:
		return 0
	}
}

// Description is the short sales text shown next to each package.
func (t PackageType) Description() string {
	switch t {
	case PackageRough:
		return "Bao gồm toàn bộ vật tư thô (Sắt, thép, xi măng, cát, đá...) và nhân công hoàn thiện trọn gói."
	case PackageFullOneStory:
		return "Gói tiết kiệm chuyên dụng cho nhà cấp 4. Vật tư hoàn thiện ở mức cơ bản, tối ưu chi phí."
	case PackageFullAverage:
		return "Sử dụng vật tư hoàn thiện phổ thông. Phù hợp cho nhà phố, nhà cho thuê hoặc ngân sách vừa phải."
	case PackageFullGood:
		return "Vật tư hoàn thiện thương hiệu uy tín (Viglacera, Toto, Cadivi...). Mức độ thẩm mỹ và độ bền khá tốt."
	case PackageFullPremium:
		return "Vật tư cao cấp, thiết bị vệ sinh/chiếu sáng nhập khẩu hoặc dòng cao cấp nhất trong nước. Tiêu chuẩn biệt thự."
	default:
		return ""
	}
}
