package news

var defaultCategories = []Category{
	{ID: CategoryAll, Name: "All", Icon: "grid"},
	{ID: "pc", Name: "PC", Icon: "monitor"},
	{ID: "console", Name: "Console", Icon: "gamepad-2"},
	{ID: "mobile", Name: "Mobile", Icon: "smartphone"},
	{ID: "esports", Name: "Esports", Icon: "trophy"},
	{ID: "reviews", Name: "Reviews", Icon: "star"},
	{ID: "industry", Name: "Industry", Icon: "briefcase"},
}

const pexels = "https://images.pexels.com/photos/"

var defaultArticles = []Article{
	{
		ID:          "1",
		Title:       "Next-Gen Console Sales Break Records in Holiday Quarter",
		Description: "Both major console makers reported their strongest holiday quarter yet, driven by exclusive launches and wider stock.",
		ImageURL:    pexels + "442576/pexels-photo-442576.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "GameSpot",
		PublishedAt: "2024-01-15T10:30:00Z",
		Category:    "console",
		ReadTime:    "5 min read",
		URL:         "https://example.com/news/1",
	},
	{
		ID:          "2",
		Title:       "World Championship Finals Draw Record Viewership",
		Description: "The grand finals peaked above six million concurrent viewers as the underdog roster lifted the trophy.",
		ImageURL:    pexels + "3165335/pexels-photo-3165335.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "ESPN Esports",
		PublishedAt: "2024-01-14T18:00:00Z",
		Category:    "esports",
		ReadTime:    "4 min read",
		URL:         "https://example.com/news/2",
	},
	{
		ID:          "3",
		Title:       "Open-World RPG Review: A Sprawling Masterpiece",
		Description: "A dense world, sharp writing and a combat system that rewards patience make this the RPG to beat this year.",
		ImageURL:    pexels + "275033/pexels-photo-275033.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "IGN",
		PublishedAt: "2024-01-14T09:15:00Z",
		Category:    "reviews",
		ReadTime:    "8 min read",
		URL:         "https://example.com/news/3",
	},
	{
		ID:          "4",
		Title:       "New Graphics Cards Bring Ray Tracing to Mid-Range PCs",
		Description: "Benchmarks show playable ray-traced frame rates at 1440p on cards priced under four hundred dollars.",
		ImageURL:    pexels + "2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "PC Gamer",
		PublishedAt: "2024-01-13T14:45:00Z",
		Category:    "pc",
		ReadTime:    "6 min read",
		URL:         "https://example.com/news/4",
	},
	{
		ID:          "5",
		Title:       "Mobile Battle Royale Passes 100 Million Downloads",
		Description: "The free-to-play shooter hit the milestone in under three months, with cross-play coming next season.",
		ImageURL:    pexels + "159393/gamepad-video-game-controller-game-controller-controller-159393.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "Pocket Gamer",
		PublishedAt: "2024-01-13T11:20:00Z",
		Category:    "mobile",
		ReadTime:    "3 min read",
		URL:         "https://example.com/news/5",
	},
	{
		ID:          "6",
		Title:       "Studio Layoffs Continue as Publishers Restructure",
		Description: "Several publishers announced cuts this week, citing rising development costs and a crowded release calendar.",
		ImageURL:    pexels + "3183150/pexels-photo-3183150.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "GamesIndustry.biz",
		PublishedAt: "2024-01-12T16:00:00Z",
		Category:    "industry",
		ReadTime:    "7 min read",
		URL:         "https://example.com/news/6",
	},
	{
		ID:          "7",
		Title:       "Handheld PC Gaming Gets a Major Firmware Update",
		Description: "The update adds per-game performance profiles, better battery reporting and a redesigned quick menu.",
		ImageURL:    pexels + "7915357/pexels-photo-7915357.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "The Verge",
		PublishedAt: "2024-01-12T08:30:00Z",
		Category:    "pc",
		ReadTime:    "4 min read",
		URL:         "https://example.com/news/7",
	},
	{
		ID:          "8",
		Title:       "Indie Platformer Review: Small Team, Huge Heart",
		Description: "Tight controls and a soundtrack worth buying on its own carry a short but memorable adventure.",
		ImageURL:    pexels + "1293269/pexels-photo-1293269.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "Polygon",
		PublishedAt: "2024-01-11T19:10:00Z",
		Category:    "reviews",
		ReadTime:    "6 min read",
		URL:         "https://example.com/news/8",
	},
	{
		ID:          "9",
		Title:       "Console Backward Compatibility Expands to Hundreds More Titles",
		Description: "Classic games gain resolution boosts and quick resume support in the latest system update.",
		ImageURL:    pexels + "4523023/pexels-photo-4523023.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "Eurogamer",
		PublishedAt: "2024-01-11T12:00:00Z",
		Category:    "console",
		ReadTime:    "3 min read",
		URL:         "https://example.com/news/9",
	},
	{
		ID:          "10",
		Title:       "Pro League Announces Franchise Expansion",
		Description: "Four new teams join next season as the league adds regional qualifiers in South America and Asia.",
		ImageURL:    pexels + "7862492/pexels-photo-7862492.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "Dexerto",
		PublishedAt: "2024-01-10T15:40:00Z",
		Category:    "esports",
		ReadTime:    "5 min read",
		URL:         "https://example.com/news/10",
	},
	{
		ID:          "11",
		Title:       "Cloud Gaming Arrives on More Mobile Carriers",
		Description: "Bundled subscriptions put a library of console games on phones without extra hardware.",
		ImageURL:    pexels + "4842505/pexels-photo-4842505.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "TouchArcade",
		PublishedAt: "2024-01-10T09:00:00Z",
		Category:    "mobile",
		ReadTime:    "4 min read",
		URL:         "https://example.com/news/11",
	},
	{
		ID:          "12",
		Title:       "Engine Licensing Changes Spark Developer Backlash",
		Description: "A revised fee structure drew criticism from studios of every size before the company walked parts of it back.",
		ImageURL:    pexels + "1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=800",
		Source:      "Kotaku",
		PublishedAt: "2024-01-09T17:25:00Z",
		Category:    "industry",
		ReadTime:    "6 min read",
		URL:         "https://example.com/news/12",
	},
}
