package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose diagnostics"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// CollectCommand starts the continuous collection loop (the default when
// histlog is run without arguments).
type CollectCommand struct {
	Once     bool `long:"once" description:"Run a single collection pass and exit"`
	Interval int  `long:"interval" description:"Override check interval in seconds"`

	globals *GlobalFlags
	version string
}

// ViewCommand prints recent history entries.
type ViewCommand struct {
	Args struct {
		Limit int `positional-arg-name:"limit" description:"Maximum entries to show (default 50)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ReportCommand prints today's per-domain and per-browser totals.
type ReportCommand struct {
	globals *GlobalFlags
}

// TopCommand prints the top visited sites over the last N days.
type TopCommand struct {
	Args struct {
		Days int `positional-arg-name:"days" description:"Days to look back (default 7)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// SearchCommand searches history by url/title substring.
type SearchCommand struct {
	Args struct {
		Term string `positional-arg-name:"term" description:"Substring to search for" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	globals *GlobalFlags
}

// SummaryCommand prints overall browsing statistics.
type SummaryCommand struct {
	globals *GlobalFlags
}
