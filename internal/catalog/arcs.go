package catalog

var defaultArcs = []Arc{
	{
		ID:     "arc-foundations",
		Title:  "Foundations",
		Accent: "amber",
		Chapters: []Chapter{
			{
				ID:       "arc-foundations-ch1",
				Title:    "Reset the Basics",
				QuestIDs: []string{"quest-foundations-wake", "quest-foundations-desk"},
			},
			{
				ID:       "arc-foundations-ch2",
				Title:    "Build the Rhythm",
				QuestIDs: []string{"quest-foundations-inbox", "quest-foundations-walk-week", "quest-foundations-meal-prep"},
			},
		},
	},
	{
		ID:     "arc-connection",
		Title:  "Connection",
		Accent: "rose",
		Chapters: []Chapter{
			{
				ID:       "arc-connection-ch1",
				Title:    "Reach Out",
				QuestIDs: []string{"quest-connect-reach-out", "quest-connect-letter"},
			},
			{
				ID:       "arc-connection-ch2",
				Title:    "Bring People In",
				QuestIDs: []string{"quest-connect-host", "quest-connect-volunteer"},
			},
		},
	},
	{
		ID:     "arc-horizon",
		Title:  "Horizon",
		Accent: "teal",
		Chapters: []Chapter{
			{
				ID:       "arc-horizon-ch1",
				Title:    "Look Up",
				QuestIDs: []string{"quest-horizon-map", "quest-horizon-skill"},
			},
			{
				ID:       "arc-horizon-ch2",
				Title:    "Go Further",
				QuestIDs: []string{"quest-horizon-solo", "quest-horizon-summit"},
			},
		},
	},
}
