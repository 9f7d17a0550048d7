package config

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() Config {
	return Config{
		Core: Core{
			History: HistoryConfig{
				MaxEntries: 50,
			},
			Delete: DeleteConfig{
				Confirm: true,
			},
			Trash: TrashConfig{
				Dir:       "",
				Retention: "90 days",
			},
		},
		UI: UI{
			ShowHidden:  false,
			ExitMessage: "bye!",
			Exclude: ExcludeConfig{
				// .DS_Store stores macOS folder view metadata and only adds
				// noise to listings
				Globs: []string{".DS_Store"},
			},
			Style: StyleConfig{
				ActiveBorder:   "#AD58B4",
				InactiveBorder: "#3C3C3C",
				Cursor:         "#AD58B4",
				Selected:       "#5FB458",
			},
		},
	}
}
