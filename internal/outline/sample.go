package outline

// Sample returns the built-in demo outline used when no file is given.
func Sample() Document {
	return Document{
		Title: "Getting started",
		Items: []Node{
			{
				Title:   "Projects",
				Updated: "2026-08-02",
				Items: []Node{
					{
						Title:   "Atlas rewrite",
						Note:    "storage migration, then the API split",
						Updated: "2026-08-14",
						Items: []Node{
							{Title: "Roadmap", Note: "draft lives in the wiki", Updated: "2026-07-30"},
							{Title: "Open issues", Updated: "2026-08-14", Items: []Node{
								{Title: "Importer drops empty rows", Updated: "2026-08-11"},
								{Title: "Flaky pagination test", Updated: "2026-08-09"},
							}},
							{Title: "Postponed ideas", Disabled: true, Items: []Node{
								{Title: "Plugin system"},
							}},
						},
					},
					{Title: "Zephyr launch", Note: "ship week is the 14th", Updated: "2026-08-05", Items: []Node{
						{Title: "Press kit", Updated: "2026-08-01"},
						{Title: "Changelog", Updated: "2026-08-04"},
					}},
				},
			},
			{
				Title:    "Reading list",
				Expanded: true,
				Updated:  "2026-07-21",
				Items: []Node{
					{Title: "Site reliability workbook", Note: "chapters 4 and 5"},
					{Title: "Terminal rendering deep dive", Updated: "2026-07-18"},
				},
			},
			{Title: "Scratchpad", Note: "press ? for all key bindings"},
		},
	}
}
