package config

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up          string `yaml:"up" kong:"help='Move cursor up',default='k'"`
	Down        string `yaml:"down" kong:"help='Move cursor down',default='j'"`
	PageUp      string `yaml:"page_up" kong:"help='Scroll half a page up',default='ctrl+u'"`
	PageDown    string `yaml:"page_down" kong:"help='Scroll half a page down',default='ctrl+d'"`
	Top         string `yaml:"top" kong:"help='Jump to the first row',default='g'"`
	Bottom      string `yaml:"bottom" kong:"help='Jump to the last row',default='G'"`
	Expand      string `yaml:"expand" kong:"help='Expand the branch under the cursor',default='l'"`
	Collapse    string `yaml:"collapse" kong:"help='Collapse the branch under the cursor',default='h'"`
	ExpandAll   string `yaml:"expand_all" kong:"help='Expand every branch',default='L'"`
	CollapseAll string `yaml:"collapse_all" kong:"help='Collapse every branch',default='H'"`
	Activate    string `yaml:"activate" kong:"help='Tap the row under the cursor',default='enter'"`
	Select      string `yaml:"select" kong:"help='Toggle selection and advance',default='space'"`
	SelectMode  string `yaml:"select_mode" kong:"help='Cycle the selection mode',default='v'"`
	Grab        string `yaml:"grab" kong:"help='Grab the row for keyboard reordering',default='m'"`
	Search      string `yaml:"search" kong:"help='Start a search',default='/'"`
	Clear       string `yaml:"clear" kong:"help='Clear search, selection or grab',default='esc'"`
	Yank        string `yaml:"yank" kong:"help='Copy selected paths to the clipboard',default='y'"`
	Help        string `yaml:"help" kong:"help='Toggle the help overlay',default='?'"`
	Quit        string `yaml:"quit" kong:"help='Quit',default='q'"`
}

// GestureConfig tunes mouse gesture recognition.
type GestureConfig struct {
	Mouse       bool `yaml:"mouse" kong:"help='Enable mouse support',default='true'"`
	LongPressMs int  `yaml:"long_press_ms" kong:"help='Press duration that counts as a long-press',default='500'"`
}

// BehaviorConfig tunes how the outline reacts to interaction.
type BehaviorConfig struct {
	ExpandOnTap          bool   `yaml:"expand_on_tap" kong:"help='Let taps toggle branch expansion',default='true'"`
	CollapseOnLongPress  bool   `yaml:"collapse_on_long_press" kong:"help='Let long-presses collapse branches',default='true'"`
	StartupDepth         int    `yaml:"startup_depth" kong:"help='Branch depth opened at startup, -1 for all',default='1'"`
	AutoCollapseSiblings bool   `yaml:"auto_collapse_siblings" kong:"help='Keep a single branch open per level',default='false'"`
	SelectionMode        string `yaml:"selection_mode" kong:"help='Selection mode: idle, single or multi',default='multi'"`
}

// FilterConfig bundles tuning parameters for search matching.
type FilterConfig struct {
	MinCoverage float64 `yaml:"min_coverage" kong:"help='Minimal share of the query a fuzzy match must cover',default='0.6'"`
	MaxSpread   int     `yaml:"max_spread" kong:"help='Maximal distance between first and last fuzzy hit',default='40'"`
	MaxResults  int     `yaml:"max_results" kong:"help='Upper limit of search results',default='200'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Cursor accent color',default='#FFAB78'"`
	Marker string `yaml:"marker" kong:"help='Selection marker color',default='#3AC4BA'"`
}

// Settings represents the application configuration.
type Settings struct {
	KeyMap   KeyMapConfig   `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Gestures GestureConfig  `yaml:"gestures" kong:"embed,prefix='gestures.'"`
	Behavior BehaviorConfig `yaml:"behavior" kong:"embed,prefix='behavior.'"`
	Filter   FilterConfig   `yaml:"filter" kong:"embed,prefix='filter.'"`
	Theme    ThemeConfig    `yaml:"theme" kong:"embed,prefix='theme.'"`
}
