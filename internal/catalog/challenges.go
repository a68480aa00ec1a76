package catalog

// defaultChallengePool feeds the daily challenge draw. Templates are tiny
// one-off actions, deliberately cheaper than catalog items.
var defaultChallengePool = []ChallengeTemplate{
	{ID: "ch-water", Title: "Drink 8 glasses of water", Dimension: DimensionBody, XP: 5},
	{ID: "ch-tidy-5", Title: "Tidy for 5 minutes", Dimension: DimensionCraft, XP: 5},
	{ID: "ch-compliment", Title: "Give someone a genuine compliment", Dimension: DimensionLove, XP: 5},
	{ID: "ch-no-coffee-spend", Title: "Skip one impulse purchase", Dimension: DimensionMoney, XP: 5},
	{ID: "ch-new-route", Title: "Take a different route today", Dimension: DimensionAdventure, XP: 5},
	{ID: "ch-one-page", Title: "Read one page of anything", Dimension: DimensionMind, XP: 5},
	{ID: "ch-stairs", Title: "Take the stairs every time", Dimension: DimensionBody, XP: 5},
	{ID: "ch-text-first", Title: "Text someone first", Dimension: DimensionLove, XP: 5},
	{ID: "ch-price-check", Title: "Price-check one recurring expense", Dimension: DimensionMoney, XP: 5},
	{ID: "ch-photo", Title: "Photograph something beautiful", Dimension: DimensionAdventure, XP: 5},
	{ID: "ch-learn-word", Title: "Learn one new word", Dimension: DimensionMind, XP: 5},
	{ID: "ch-sketch", Title: "Sketch or doodle for 5 minutes", Dimension: DimensionCraft, XP: 5},
}
