package catalog

// Tier is the achievement rarity level. Ordering: bronze < silver < gold <
// platinum < diamond.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// Multiplier returns the XP reward multiplier for the tier.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierBronze:
		return 1.0
	case TierSilver:
		return 1.5
	case TierGold:
		return 2.0
	case TierPlatinum:
		return 3.0
	case TierDiamond:
		return 5.0
	default:
		return 1.0
	}
}

// Category groups achievements and fixes their base XP reward.
type Category string

const (
	CategoryProgress    Category = "progress"
	CategoryStreak      Category = "streak"
	CategoryDimension   Category = "dimension"
	CategoryExploration Category = "exploration"
	CategoryMastery     Category = "mastery"
	CategorySocial      Category = "social"
	CategorySpecial     Category = "special"
)

// BaseXP returns the base XP reward for the category.
func (c Category) BaseXP() int {
	switch c {
	case CategoryProgress:
		return 25
	case CategoryStreak:
		return 30
	case CategoryDimension:
		return 20
	case CategoryExploration:
		return 15
	case CategoryMastery:
		return 50
	case CategorySocial:
		return 20
	case CategorySpecial:
		return 100
	default:
		return 25
	}
}

// RequirementKind selects which metric an achievement measures.
type RequirementKind string

const (
	RequireTotalXP             RequirementKind = "totalXP"
	RequireLevel               RequirementKind = "level"
	RequireStreak              RequirementKind = "streak"
	RequireItemsCompleted      RequirementKind = "itemsCompleted"
	RequireDimensionCompleted  RequirementKind = "dimensionCompleted"
	RequireArcsCompleted       RequirementKind = "arcsCompleted"
	RequireQuestsCompleted     RequirementKind = "questsCompleted"
	RequireSpecificItems       RequirementKind = "specificItems"
	RequireChallengesCompleted RequirementKind = "challengesCompleted"
	RequireJournalEntries      RequirementKind = "journalEntries"
	RequireFocusSessions       RequirementKind = "focusSessions"
	RequireHabitsCompleted     RequirementKind = "habitsCompleted"
	RequirePerfectDays         RequirementKind = "perfectDays"
)

// Requirement is what must be true for an achievement to unlock.
// Dimension is only read for dimensionCompleted; ItemIDs only for specificItems.
type Requirement struct {
	Kind      RequirementKind
	Threshold int
	Dimension Dimension
	ItemIDs   []string
}

// Achievement is a static badge definition. XPReward of 0 means the reward is
// derived from Category.BaseXP() x Tier.Multiplier().
type Achievement struct {
	ID          string
	Title       string
	Detail      string
	Icon        string
	Category    Category
	Tier        Tier
	Requirement Requirement
	XPReward    int
	Secret      bool
}
