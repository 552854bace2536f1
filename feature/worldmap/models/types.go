package models

import "strings"

// FeatureKind discriminates the feature variants. Point kinds carry a
// single anchor point; area kinds carry a polygon.
type FeatureKind string

const (
	KindTree      FeatureKind = "Tree"
	KindHouse     FeatureKind = "House"
	KindCharacter FeatureKind = "Character"
	KindTitle     FeatureKind = "Title"
	KindWater     FeatureKind = "Water"
	KindLand      FeatureKind = "Land"
	KindBridge    FeatureKind = "Bridge"
	KindTown      FeatureKind = "Town"
)

// IsPointKind reports whether the kind carries exactly one point.
func (k FeatureKind) IsPointKind() bool {
	switch k {
	case KindTree, KindHouse, KindCharacter:
		return true
	default:
		return false
	}
}

// IsAreaKind reports whether the kind carries a polygon.
func (k FeatureKind) IsAreaKind() bool {
	switch k {
	case KindWater, KindLand, KindBridge, KindTown:
		return true
	default:
		return false
	}
}

// normalizeChoice matches value case-insensitively against the valid set
// and falls back to def on anything unrecognized.
func normalizeChoice(value, def string, valid ...string) string {
	for _, v := range valid {
		if strings.EqualFold(value, v) {
			return v
		}
	}
	return def
}

// NormalizeTreeType maps unknown tree types to Oak.
func NormalizeTreeType(v string) string {
	return normalizeChoice(v, "Oak", "Oak", "Pine", "Birch", "Palm")
}

// NormalizeHouseType maps unknown house types to Cottage.
func NormalizeHouseType(v string) string {
	return normalizeChoice(v, "Cottage", "Cottage", "Cabin", "Manor")
}

// NormalizeCharacterType maps unknown character types to Commoner.
func NormalizeCharacterType(v string) string {
	return normalizeChoice(v, "Commoner", "Commoner", "Noble", "Merchant", "Soldier")
}

// NormalizeWaterType maps unknown water types to Lake.
func NormalizeWaterType(v string) string {
	return normalizeChoice(v, "Lake", "Lake", "River", "Ocean")
}

// NormalizeLandType maps unknown land types to Plains.
func NormalizeLandType(v string) string {
	return normalizeChoice(v, "Plains", "Plains", "Forest", "Desert")
}

// NormalizeElevationType maps unknown elevations to Low.
func NormalizeElevationType(v string) string {
	return normalizeChoice(v, "Low", "Low", "Medium", "High")
}

// NormalizeBridgeType maps unknown bridge types to Stone.
func NormalizeBridgeType(v string) string {
	return normalizeChoice(v, "Stone", "Stone", "Wooden", "Rope")
}

// NormalizeTownType maps unknown town types to Hamlet.
func NormalizeTownType(v string) string {
	return normalizeChoice(v, "Hamlet", "Hamlet", "Village", "City")
}

// NormalizeTownStructureType maps unknown structure types to House.
func NormalizeTownStructureType(v string) string {
	return normalizeChoice(v, "House", "House", "Market", "Tavern", "Temple")
}
