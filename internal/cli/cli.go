package cli

import (
	"fmt"
	"os"
	"strings"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Collect *CollectCommand
	View    *ViewCommand
	Report  *ReportCommand
	Top     *TopCommand
	Search  *SearchCommand
	Summary *SummaryCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "histlog"
	parser.LongDescription = "Non-intrusive local browser history collection with deduplicated storage and daily rollups."

	cmds := &commands{
		Collect: &CollectCommand{globals: &globals, version: version},
		View:    &ViewCommand{globals: &globals},
		Report:  &ReportCommand{globals: &globals},
		Top:     &TopCommand{globals: &globals},
		Search:  &SearchCommand{globals: &globals},
		Summary: &SummaryCommand{globals: &globals},
	}

	parser.AddCommand("collect", "Start continuous collection", "Poll browser history files on a fixed interval and merge new visits into the store.", cmds.Collect)
	parser.AddCommand("view", "View recent history", "Print the most recent history entries, newest first.", cmds.View)
	parser.AddCommand("report", "Daily report", "Print today's top sites and per-browser usage from the daily rollup.", cmds.Report)
	parser.AddCommand("top", "Top visited sites", "Print the top visited sites over the last N days.", cmds.Top)
	parser.AddCommand("search", "Search history", "Search history entries whose url or title contains a substring.", cmds.Search)
	parser.AddCommand("summary", "Overall statistics", "Print overall browsing statistics across the whole store.", cmds.Summary)

	// --version on any fully parsed invocation short-circuits the command.
	parser.CommandHandler = func(cmd goflags.Commander, args []string) error {
		if globals.Version {
			fmt.Printf("histlog %s\n", version)
			return nil
		}
		return cmd.Execute(args)
	}

	return parser, &globals, cmds
}

// Run is the main entry point for the histlog CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, os.Args[1:])
}

// RunWithArgs parses the given args and executes the matched subcommand.
// No arguments at all means "start the collection loop".
func RunWithArgs(version string, args []string) error {
	// Handle a leading --version and bare "help" before the parser
	// (go-flags requires a subcommand, but both are valid without one).
	// Past the first non-flag word, --version belongs to the parser.
	for _, arg := range args {
		if arg == "--version" {
			fmt.Printf("histlog %s\n", version)
			return nil
		}
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
	}
	if len(args) == 0 {
		args = []string{"collect"}
	} else if args[0] == "help" {
		args = []string{"--help"}
	}

	parser, _, _ := buildParser(version)

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
