package catalog

// Catalog bundles the static content with lookup maps. Build it once at
// startup (or per test with custom content) and treat it as read-only.
type Catalog struct {
	Items         []Item
	Arcs          []Arc
	Achievements  []Achievement
	Skills        []SkillNode
	ChallengePool []ChallengeTemplate

	itemByID        map[string]Item
	arcByID         map[string]Arc
	achievementByID map[string]Achievement
	skillByID       map[string]SkillNode
	questArcID      map[string]string
}

// Default returns the built-in content catalog.
func Default() *Catalog {
	return Build(defaultItems, defaultArcs, defaultAchievements, defaultSkills, defaultChallengePool)
}

// Build assembles a catalog from explicit content. Tests use this to run the
// engine against small fixtures.
func Build(items []Item, arcs []Arc, achievements []Achievement, skills []SkillNode, pool []ChallengeTemplate) *Catalog {
	c := &Catalog{
		Items:         items,
		Arcs:          arcs,
		Achievements:  achievements,
		Skills:        skills,
		ChallengePool: pool,

		itemByID:        make(map[string]Item, len(items)),
		arcByID:         make(map[string]Arc, len(arcs)),
		achievementByID: make(map[string]Achievement, len(achievements)),
		skillByID:       make(map[string]SkillNode, len(skills)),
		questArcID:      make(map[string]string),
	}

	for _, it := range items {
		c.itemByID[it.ID] = it
	}
	for _, a := range arcs {
		c.arcByID[a.ID] = a
		for _, qid := range a.QuestIDs() {
			c.questArcID[qid] = a.ID
		}
	}
	for _, a := range achievements {
		c.achievementByID[a.ID] = a
	}
	for _, s := range skills {
		c.skillByID[s.ID] = s
	}

	return c
}

// ItemByID looks up an item (checklist item or quest) by ID.
func (c *Catalog) ItemByID(id string) (Item, bool) {
	it, ok := c.itemByID[id]
	return it, ok
}

// HasItem reports whether the ID exists in the item namespace.
func (c *Catalog) HasItem(id string) bool {
	_, ok := c.itemByID[id]
	return ok
}

// ArcByID looks up an arc by ID.
func (c *Catalog) ArcByID(id string) (Arc, bool) {
	a, ok := c.arcByID[id]
	return a, ok
}

// HasArc reports whether the arc ID is known.
func (c *Catalog) HasArc(id string) bool {
	_, ok := c.arcByID[id]
	return ok
}

// AchievementByID looks up an achievement definition by ID.
func (c *Catalog) AchievementByID(id string) (Achievement, bool) {
	a, ok := c.achievementByID[id]
	return a, ok
}

// SkillByID looks up a skill node by ID.
func (c *Catalog) SkillByID(id string) (SkillNode, bool) {
	s, ok := c.skillByID[id]
	return s, ok
}

// ArcIDForQuest returns the arc a quest belongs to, if any.
func (c *Catalog) ArcIDForQuest(questID string) (string, bool) {
	id, ok := c.questArcID[questID]
	return id, ok
}

// QuestIDs returns the ID set of all quests that belong to some arc.
func (c *Catalog) QuestIDs() map[string]bool {
	ids := make(map[string]bool, len(c.questArcID))
	for id := range c.questArcID {
		ids[id] = true
	}
	return ids
}
