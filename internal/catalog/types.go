// Package catalog holds the static Life XP content: checklist items, quests,
// arcs, achievements, skill nodes, and the daily challenge pool. Everything in
// here is immutable reference data; runtime state lives elsewhere.
package catalog

// Dimension is a life-area tag used to categorize items and compute balance metrics.
type Dimension string

const (
	DimensionMind      Dimension = "mind"
	DimensionBody      Dimension = "body"
	DimensionLove      Dimension = "love"
	DimensionMoney     Dimension = "money"
	DimensionAdventure Dimension = "adventure"
	DimensionCraft     Dimension = "craft"
)

// Dimensions returns all dimensions in declaration order.
// Declaration order is the deterministic tie-break used by the metrics engine.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionMind,
		DimensionBody,
		DimensionLove,
		DimensionMoney,
		DimensionAdventure,
		DimensionCraft,
	}
}

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionMind, DimensionBody, DimensionLove, DimensionMoney, DimensionAdventure, DimensionCraft:
		return true
	default:
		return false
	}
}

// Kind classifies an item for the suggestion ranking.
type Kind string

const (
	KindDaily Kind = "daily"
	KindHabit Kind = "habit"
	KindTask  Kind = "task"
	KindQuest Kind = "quest"
)

// Priority returns the sort rank for the quest-board ordering (lower first).
// Unknown kinds sink to the bottom.
func (k Kind) Priority() int {
	switch k {
	case KindDaily:
		return 0
	case KindHabit:
		return 1
	case KindTask:
		return 2
	case KindQuest:
		return 3
	default:
		return 4
	}
}

// Item is a static checklist item or quest. Checklist items and quests share a
// single ID namespace; quests are the items referenced by arc chapters.
type Item struct {
	ID               string
	Title            string
	Detail           string
	XP               int
	Dimensions       []Dimension
	Kind             Kind
	EstimatedMinutes int
	Premium          bool
}

// HasDimension reports whether the item carries the given dimension tag.
func (i Item) HasDimension(d Dimension) bool {
	for _, dim := range i.Dimensions {
		if dim == d {
			return true
		}
	}
	return false
}

// Chapter groups an ordered list of quests inside an arc.
type Chapter struct {
	ID       string
	Title    string
	QuestIDs []string
}

// Arc is a guided multi-step storyline: Arc -> Chapters -> Quests.
type Arc struct {
	ID       string
	Title    string
	Accent   string
	Chapters []Chapter
}

// QuestIDs returns all quest IDs of the arc in chapter order.
func (a Arc) QuestIDs() []string {
	var ids []string
	for _, ch := range a.Chapters {
		ids = append(ids, ch.QuestIDs...)
	}
	return ids
}

// SkillNode is one unlockable node of the skill tree.
type SkillNode struct {
	ID            string
	Title         string
	Dimension     Dimension
	RequiredLevel int
	Prerequisites []string
}

// ChallengeTemplate is one candidate for the daily challenge draw.
type ChallengeTemplate struct {
	ID        string
	Title     string
	Dimension Dimension
	XP        int
}
