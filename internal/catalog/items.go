package catalog

// defaultItems is the static checklist + quest content. Quests (Kind: quest)
// are referenced by arc chapters; everything else shows up on the free
// checklist and the daily board.
var defaultItems = []Item{
	// Mind
	{ID: "mind-read-20", Title: "Read 20 pages", Detail: "Any book counts, fiction included", XP: 10, Dimensions: []Dimension{DimensionMind}, Kind: KindHabit, EstimatedMinutes: 30},
	{ID: "mind-meditate", Title: "Meditate for 10 minutes", XP: 10, Dimensions: []Dimension{DimensionMind, DimensionBody}, Kind: KindDaily, EstimatedMinutes: 10},
	{ID: "mind-learn-skill", Title: "Practice a new skill", Detail: "Language, instrument, whatever you're learning", XP: 15, Dimensions: []Dimension{DimensionMind, DimensionCraft}, Kind: KindHabit, EstimatedMinutes: 45},
	{ID: "mind-no-phone-hour", Title: "One screen-free hour", XP: 10, Dimensions: []Dimension{DimensionMind}, Kind: KindDaily, EstimatedMinutes: 60},
	{ID: "mind-course-module", Title: "Finish a course module", XP: 25, Dimensions: []Dimension{DimensionMind}, Kind: KindTask, EstimatedMinutes: 90, Premium: true},

	// Body
	{ID: "body-walk-30", Title: "Walk 30 minutes", XP: 10, Dimensions: []Dimension{DimensionBody}, Kind: KindDaily, EstimatedMinutes: 30},
	{ID: "body-workout", Title: "Complete a workout", XP: 20, Dimensions: []Dimension{DimensionBody}, Kind: KindHabit, EstimatedMinutes: 45},
	{ID: "body-sleep-8h", Title: "Sleep 8 hours", XP: 15, Dimensions: []Dimension{DimensionBody}, Kind: KindDaily, EstimatedMinutes: 0},
	{ID: "body-cook-healthy", Title: "Cook a healthy meal", XP: 15, Dimensions: []Dimension{DimensionBody, DimensionCraft}, Kind: KindTask, EstimatedMinutes: 40},
	{ID: "body-stretch", Title: "Stretch for 10 minutes", XP: 5, Dimensions: []Dimension{DimensionBody}, Kind: KindDaily, EstimatedMinutes: 10},

	// Love
	{ID: "love-call-friend", Title: "Call a friend or family member", XP: 10, Dimensions: []Dimension{DimensionLove}, Kind: KindTask, EstimatedMinutes: 20},
	{ID: "love-date-night", Title: "Plan a date night", XP: 25, Dimensions: []Dimension{DimensionLove, DimensionAdventure}, Kind: KindTask, EstimatedMinutes: 120},
	{ID: "love-gratitude-note", Title: "Write someone a thank-you note", XP: 10, Dimensions: []Dimension{DimensionLove}, Kind: KindTask, EstimatedMinutes: 15},
	{ID: "love-listen", Title: "Have a real conversation", Detail: "No phones, full attention", XP: 15, Dimensions: []Dimension{DimensionLove}, Kind: KindHabit, EstimatedMinutes: 30},

	// Money
	{ID: "money-budget-review", Title: "Review your budget", XP: 15, Dimensions: []Dimension{DimensionMoney}, Kind: KindHabit, EstimatedMinutes: 20},
	{ID: "money-no-spend-day", Title: "No-spend day", XP: 10, Dimensions: []Dimension{DimensionMoney}, Kind: KindDaily, EstimatedMinutes: 0},
	{ID: "money-save-transfer", Title: "Move money into savings", XP: 20, Dimensions: []Dimension{DimensionMoney}, Kind: KindTask, EstimatedMinutes: 5},
	{ID: "money-cancel-sub", Title: "Cancel an unused subscription", XP: 15, Dimensions: []Dimension{DimensionMoney}, Kind: KindTask, EstimatedMinutes: 15},

	// Adventure
	{ID: "adv-new-place", Title: "Visit somewhere new in your city", XP: 20, Dimensions: []Dimension{DimensionAdventure}, Kind: KindTask, EstimatedMinutes: 90},
	{ID: "adv-try-food", Title: "Try a cuisine you've never had", XP: 15, Dimensions: []Dimension{DimensionAdventure}, Kind: KindTask, EstimatedMinutes: 60},
	{ID: "adv-sunrise", Title: "Watch a sunrise", XP: 15, Dimensions: []Dimension{DimensionAdventure, DimensionMind}, Kind: KindTask, EstimatedMinutes: 45},
	{ID: "adv-day-trip", Title: "Take a day trip", XP: 40, Dimensions: []Dimension{DimensionAdventure}, Kind: KindTask, EstimatedMinutes: 480, Premium: true},

	// Craft
	{ID: "craft-make-something", Title: "Make something with your hands", XP: 20, Dimensions: []Dimension{DimensionCraft}, Kind: KindTask, EstimatedMinutes: 60},
	{ID: "craft-fix-broken", Title: "Fix something that's broken", XP: 15, Dimensions: []Dimension{DimensionCraft}, Kind: KindTask, EstimatedMinutes: 45},
	{ID: "craft-declutter", Title: "Declutter one drawer or shelf", XP: 10, Dimensions: []Dimension{DimensionCraft}, Kind: KindTask, EstimatedMinutes: 20},

	// Quests: "Foundations" arc
	{ID: "quest-foundations-wake", Title: "Fix your wake-up time for a week", XP: 30, Dimensions: []Dimension{DimensionBody}, Kind: KindQuest, EstimatedMinutes: 0},
	{ID: "quest-foundations-desk", Title: "Set up a distraction-free workspace", XP: 25, Dimensions: []Dimension{DimensionMind, DimensionCraft}, Kind: KindQuest, EstimatedMinutes: 60},
	{ID: "quest-foundations-inbox", Title: "Reach inbox zero once", XP: 25, Dimensions: []Dimension{DimensionMind}, Kind: KindQuest, EstimatedMinutes: 90},
	{ID: "quest-foundations-walk-week", Title: "Walk every day for a week", XP: 40, Dimensions: []Dimension{DimensionBody}, Kind: KindQuest, EstimatedMinutes: 0},
	{ID: "quest-foundations-meal-prep", Title: "Meal-prep a full week", XP: 35, Dimensions: []Dimension{DimensionBody, DimensionMoney}, Kind: KindQuest, EstimatedMinutes: 150},

	// Quests: "Connection" arc
	{ID: "quest-connect-reach-out", Title: "Reconnect with an old friend", XP: 30, Dimensions: []Dimension{DimensionLove}, Kind: KindQuest, EstimatedMinutes: 30},
	{ID: "quest-connect-host", Title: "Host a dinner or game night", XP: 40, Dimensions: []Dimension{DimensionLove, DimensionCraft}, Kind: KindQuest, EstimatedMinutes: 180},
	{ID: "quest-connect-letter", Title: "Write a letter to someone who shaped you", XP: 35, Dimensions: []Dimension{DimensionLove, DimensionMind}, Kind: KindQuest, EstimatedMinutes: 60},
	{ID: "quest-connect-volunteer", Title: "Volunteer for an afternoon", XP: 45, Dimensions: []Dimension{DimensionLove, DimensionAdventure}, Kind: KindQuest, EstimatedMinutes: 240},

	// Quests: "Horizon" arc
	{ID: "quest-horizon-map", Title: "Plan a trip you've been postponing", XP: 30, Dimensions: []Dimension{DimensionAdventure}, Kind: KindQuest, EstimatedMinutes: 90},
	{ID: "quest-horizon-skill", Title: "Book a class for something new", XP: 30, Dimensions: []Dimension{DimensionAdventure, DimensionMind}, Kind: KindQuest, EstimatedMinutes: 30},
	{ID: "quest-horizon-solo", Title: "Spend a solo day out", XP: 40, Dimensions: []Dimension{DimensionAdventure}, Kind: KindQuest, EstimatedMinutes: 300, Premium: true},
	{ID: "quest-horizon-summit", Title: "Hike somewhere with a view", XP: 50, Dimensions: []Dimension{DimensionAdventure, DimensionBody}, Kind: KindQuest, EstimatedMinutes: 360},
}
