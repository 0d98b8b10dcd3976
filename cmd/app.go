// Package cmd implements the CLI application to analyze trading journals.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "analytics")
	c.Register(&statsCmd{}, "analytics")
	c.Register(&equityCmd{}, "analytics")
	c.Register(&streaksCmd{}, "analytics")
	c.Register(&performanceCmd{}, "analytics")
	c.Register(&calendarCmd{}, "analytics")
	c.Register(&coachCmd{}, "analytics")

	c.Register(&accountsCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	journalPath = flag.String("journal-path", "", "Path to the directory of journal files. Overrides the configuration.")
	configFile  = flag.String("config", ".tradebook.yaml", "Path to the configuration file.")
	verbose     = flag.Bool("v", false, "Verbose output: list every data-quality issue.")
)

// session is what every command needs once the global flags are parsed.
type session struct {
	config Config
	log    *zap.Logger
}

func newSession() (*session, error) {
	log, err := newLogger(*verbose)
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}
	if err := LoadEnv(filepath.Dir(*configFile)); err != nil {
		return nil, err
	}
	config, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *journalPath != "" {
		config.Journal = *journalPath
	}
	log.Debug("configuration loaded", zap.String("file", *configFile), zap.Any("config", config))
	return &session{config: config, log: log}, nil
}

// journal loads one account, classified as of now. Issues found in the records are logged.
func (s *session) journal(account string, year int, now time.Time) (*tradebook.Journal, string, error) {
	acc, err := tradebook.FindAccount(s.config.Journal, account)
	if err != nil {
		return nil, "", err
	}
	opts, err := s.config.Options()
	if err != nil {
		return nil, "", err
	}
	opts.Year = year
	j := tradebook.NewJournal(acc.Records, now, opts)
	logIssues(s.log, acc.Name, j.Issues())
	return j, acc.Name, nil
}

// location returns the time zone of the trader.
func (s *session) location() *time.Location {
	opts, err := s.config.Options()
	if err != nil {
		return time.Local
	}
	return opts.Location
}

// referenceTime returns the instant the analysis is made at: now for today,
// the last instant of the day otherwise.
func referenceTime(day tradebook.Date, now time.Time, loc *time.Location) time.Time {
	if day.IsZero() || day == tradebook.DateOf(now, loc) {
		return now
	}
	return day.Add(1).Midnight(loc).Add(-time.Millisecond)
}

// parseDay parses the -d flag. The zero Date stands for today in the trader's time zone.
func parseDay(s string) (tradebook.Date, error) {
	if strings.TrimSpace(s) == "" {
		return tradebook.Date{}, nil
	}
	d, err := tradebook.ParseDate(s)
	if err != nil {
		return tradebook.Date{}, fmt.Errorf("invalid date: %w", err)
	}
	return d, nil
}

// printMarkdown renders md for the terminal, raw when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// printJSON writes v as indented JSON on the standard output.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
