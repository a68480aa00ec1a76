package catalog

// defaultAchievements lists every badge in evaluation order. The evaluator
// scans these top to bottom; declaration order is the only ordering guarantee.
var defaultAchievements = []Achievement{
	// Progress milestones
	{ID: "ach-first-step", Title: "First Step", Detail: "Complete your first item", Icon: "🌱", Category: CategoryProgress, Tier: TierBronze, Requirement: Requirement{Kind: RequireItemsCompleted, Threshold: 1}},
	{ID: "ach-ten-done", Title: "Momentum", Detail: "Complete 10 items", Icon: "📋", Category: CategoryProgress, Tier: TierSilver, Requirement: Requirement{Kind: RequireItemsCompleted, Threshold: 10}},
	{ID: "ach-xp-100", Title: "Spark", Detail: "Earn 100 XP", Icon: "✨", Category: CategoryProgress, Tier: TierBronze, Requirement: Requirement{Kind: RequireTotalXP, Threshold: 100}},
	{ID: "ach-xp-500", Title: "Blaze", Detail: "Earn 500 XP", Icon: "🔥", Category: CategoryProgress, Tier: TierGold, Requirement: Requirement{Kind: RequireTotalXP, Threshold: 500}},
	{ID: "ach-level-5", Title: "Level Five", Detail: "Reach level 5", Icon: "⭐", Category: CategoryProgress, Tier: TierSilver, Requirement: Requirement{Kind: RequireLevel, Threshold: 5}},
	{ID: "ach-level-10", Title: "Double Digits", Detail: "Reach level 10", Icon: "🌟", Category: CategoryProgress, Tier: TierPlatinum, Requirement: Requirement{Kind: RequireLevel, Threshold: 10}},

	// Streaks
	{ID: "ach-streak-3", Title: "Warming Up", Detail: "Keep a 3-day streak", Icon: "🕯️", Category: CategoryStreak, Tier: TierBronze, Requirement: Requirement{Kind: RequireStreak, Threshold: 3}},
	{ID: "ach-streak-7", Title: "One Full Week", Detail: "Keep a 7-day streak", Icon: "📅", Category: CategoryStreak, Tier: TierSilver, Requirement: Requirement{Kind: RequireStreak, Threshold: 7}},
	{ID: "ach-streak-30", Title: "Habit Forged", Detail: "Keep a 30-day streak", Icon: "⚒️", Category: CategoryStreak, Tier: TierGold, Requirement: Requirement{Kind: RequireStreak, Threshold: 30}},
	{ID: "ach-streak-100", Title: "Unbreakable", Detail: "Keep a 100-day streak", Icon: "💎", Category: CategoryStreak, Tier: TierDiamond, Requirement: Requirement{Kind: RequireStreak, Threshold: 100}},

	// Dimension balance
	{ID: "ach-mind-5", Title: "Thinker", Detail: "Complete 5 mind items", Icon: "🧠", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionMind}},
	{ID: "ach-body-5", Title: "Mover", Detail: "Complete 5 body items", Icon: "💪", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionBody}},
	{ID: "ach-love-5", Title: "Heart Open", Detail: "Complete 5 love items", Icon: "❤️", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionLove}},
	{ID: "ach-money-5", Title: "Steward", Detail: "Complete 5 money items", Icon: "🪙", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionMoney}},
	{ID: "ach-adventure-5", Title: "Wanderer", Detail: "Complete 5 adventure items", Icon: "🧭", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionAdventure}},
	{ID: "ach-craft-5", Title: "Maker", Detail: "Complete 5 craft items", Icon: "🔨", Category: CategoryDimension, Tier: TierBronze, Requirement: Requirement{Kind: RequireDimensionCompleted, Threshold: 5, Dimension: DimensionCraft}},

	// Exploration
	{ID: "ach-first-quest", Title: "Quest Accepted", Detail: "Complete your first quest", Icon: "📜", Category: CategoryExploration, Tier: TierBronze, Requirement: Requirement{Kind: RequireQuestsCompleted, Threshold: 1}},
	{ID: "ach-first-arc", Title: "Storyline", Detail: "Finish an entire arc", Icon: "🏔️", Category: CategoryExploration, Tier: TierGold, Requirement: Requirement{Kind: RequireArcsCompleted, Threshold: 1}},
	{ID: "ach-all-arcs", Title: "Completionist", Detail: "Finish every arc", Icon: "🏆", Category: CategoryExploration, Tier: TierDiamond, Requirement: Requirement{Kind: RequireArcsCompleted, Threshold: 3}},
	{ID: "ach-sunrise-summit", Title: "Dawn Patrol", Detail: "Watch a sunrise and hike a summit", Icon: "🌄", Category: CategoryExploration, Tier: TierSilver, Secret: true, Requirement: Requirement{Kind: RequireSpecificItems, Threshold: 2, ItemIDs: []string{"adv-sunrise", "quest-horizon-summit"}}},

	// Mastery (fed by the secondary trackers)
	{ID: "ach-journal-10", Title: "Chronicler", Detail: "Write 10 journal entries", Icon: "📓", Category: CategoryMastery, Tier: TierSilver, Requirement: Requirement{Kind: RequireJournalEntries, Threshold: 10}},
	{ID: "ach-focus-25", Title: "Deep Worker", Detail: "Finish 25 focus sessions", Icon: "⏳", Category: CategoryMastery, Tier: TierGold, Requirement: Requirement{Kind: RequireFocusSessions, Threshold: 25}},
	{ID: "ach-challenge-20", Title: "Challenger", Detail: "Complete 20 daily challenges", Icon: "🎯", Category: CategoryMastery, Tier: TierGold, Requirement: Requirement{Kind: RequireChallengesCompleted, Threshold: 20}},

	// Known-gap requirement kinds: no habit tracker exists and "perfect day" has
	// no definition, so these always read 0 and never unlock.
	{ID: "ach-habit-machine", Title: "Habit Machine", Detail: "Complete 50 habits", Icon: "🔁", Category: CategoryMastery, Tier: TierPlatinum, Requirement: Requirement{Kind: RequireHabitsCompleted, Threshold: 50}},
	{ID: "ach-perfect-week", Title: "Flawless Week", Detail: "Seven perfect days in a row", Icon: "💯", Category: CategorySpecial, Tier: TierDiamond, Secret: true, Requirement: Requirement{Kind: RequirePerfectDays, Threshold: 7}},

	// Special (explicit reward overrides the category x tier table)
	{ID: "ach-early-bird", Title: "Early Bird", Detail: "Complete the sunrise item", Icon: "🐦", Category: CategorySpecial, Tier: TierBronze, XPReward: 42, Secret: true, Requirement: Requirement{Kind: RequireSpecificItems, Threshold: 1, ItemIDs: []string{"adv-sunrise"}}},
}
