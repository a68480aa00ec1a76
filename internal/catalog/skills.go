package catalog

var defaultSkills = []SkillNode{
	{ID: "skill-focus-1", Title: "Focused Mind", Dimension: DimensionMind, RequiredLevel: 1},
	{ID: "skill-focus-2", Title: "Deep Focus", Dimension: DimensionMind, RequiredLevel: 3, Prerequisites: []string{"skill-focus-1"}},
	{ID: "skill-focus-3", Title: "Flow State", Dimension: DimensionMind, RequiredLevel: 6, Prerequisites: []string{"skill-focus-2"}},
	{ID: "skill-vitality-1", Title: "Vitality", Dimension: DimensionBody, RequiredLevel: 1},
	{ID: "skill-vitality-2", Title: "Endurance", Dimension: DimensionBody, RequiredLevel: 4, Prerequisites: []string{"skill-vitality-1"}},
	{ID: "skill-warmth-1", Title: "Warmth", Dimension: DimensionLove, RequiredLevel: 2},
	{ID: "skill-warmth-2", Title: "Anchor", Dimension: DimensionLove, RequiredLevel: 5, Prerequisites: []string{"skill-warmth-1"}},
	{ID: "skill-thrift-1", Title: "Thrift", Dimension: DimensionMoney, RequiredLevel: 2},
	{ID: "skill-wander-1", Title: "Wanderlust", Dimension: DimensionAdventure, RequiredLevel: 3},
	{ID: "skill-wander-2", Title: "Pathfinder", Dimension: DimensionAdventure, RequiredLevel: 7, Prerequisites: []string{"skill-wander-1"}},
	{ID: "skill-hands-1", Title: "Steady Hands", Dimension: DimensionCraft, RequiredLevel: 2},
}
