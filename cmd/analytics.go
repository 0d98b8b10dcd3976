package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

// journalFlags are the flags of the commands analyzing one account.
type journalFlags struct {
	account string
	year    int
	date    string
	json    bool
}

func (c *journalFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to analyze. Defaults to the only account if there is one.")
	f.IntVar(&c.year, "y", tradebook.AllYears, "Restrict the analysis to one year.")
	f.StringVar(&c.date, "d", "", "Date of the analysis, today by default. See 'topic dates' for the supported formats.")
	f.BoolVar(&c.json, "json", false, "Print JSON instead of markdown.")
}

// load parses the flags and loads the journal they designate.
func (c *journalFlags) load() (*tradebook.Journal, string, subcommands.ExitStatus) {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, "", subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}
	defer s.log.Sync()

	now := referenceTime(day, time.Now(), s.location())
	j, name, err := s.journal(c.account, c.year, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}
	return j.Year(c.year), name, subcommands.ExitSuccess
}

type reportCmd struct{ journalFlags }

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full trading report of an account" }
func (*reportCmd) Usage() string {
	return `tb report [-a <account>] [-y <year>] [-d <date>] [-json]

  Displays performance, streaks, statistics, the calendar of the month and the
  equity curve of an account. With -json, prints the analytics snapshot.
`
}
func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, name, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	snapshot := tradebook.NewSnapshot(j)
	if c.json {
		return printJSON(snapshot)
	}
	cal := tradebook.NewCalendarMonth(j, j.Today())
	printMarkdown(renderer.RenderReport(&renderer.Report{Account: name, Snapshot: snapshot, Calendar: &cal}))
	return subcommands.ExitSuccess
}

type statsCmd struct{ journalFlags }

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display trade statistics" }
func (*statsCmd) Usage() string {
	return `tb stats [-a <account>] [-y <year>] [-json]

  Displays win rate, averages, profit factor and the breakdown by month and ticker.
`
}
func (c *statsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *statsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, _, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	stats := tradebook.NewStats(j)
	if c.json {
		return printJSON(stats)
	}
	printMarkdown(renderer.RenderStats(&stats))
	return subcommands.ExitSuccess
}

type equityCmd struct{ journalFlags }

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "display the equity curve" }
func (*equityCmd) Usage() string {
	return `tb equity [-a <account>] [-y <year>] [-json]

  Displays the running balance after every deposit, payout and trade, in creation order.
`
}
func (c *equityCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *equityCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, _, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	curve := tradebook.NewEquityCurve(j)
	if c.json {
		return printJSON(curve)
	}
	printMarkdown(renderer.RenderEquity(&curve))
	return subcommands.ExitSuccess
}

type streaksCmd struct{ journalFlags }

func (*streaksCmd) Name() string     { return "streaks" }
func (*streaksCmd) Synopsis() string { return "display winning and losing streaks" }
func (*streaksCmd) Usage() string {
	return `tb streaks [-a <account>] [-y <year>] [-json]

  Displays the current and best runs of winning and losing trades, by trading day.
`
}
func (c *streaksCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *streaksCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, _, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	streaks := tradebook.NewStreaks(j)
	if c.json {
		return printJSON(streaks)
	}
	printMarkdown(renderer.RenderStreaks(&streaks))
	return subcommands.ExitSuccess
}

type performanceCmd struct{ journalFlags }

func (*performanceCmd) Name() string { return "performance" }
func (*performanceCmd) Synopsis() string {
	return "display returns of the day, week, month and overall"
}
func (*performanceCmd) Usage() string {
	return `tb performance [-a <account>] [-y <year>] [-d <date>] [-json]

  Displays the pnl of the windows containing the date, relative to the capital
  deposited, and the progress toward the monthly goal.
`
}
func (c *performanceCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *performanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, _, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	perf := tradebook.NewPerformance(j)
	if c.json {
		return printJSON(perf)
	}
	printMarkdown(renderer.RenderPerformance(&perf))
	return subcommands.ExitSuccess
}

type calendarCmd struct{ journalFlags }

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the daily results of a month" }
func (*calendarCmd) Usage() string {
	return `tb calendar [-a <account>] [-d <date>] [-json]

  Displays the month containing the date as a calendar, with the pnl and the
  number of trades of every day.
`
}
func (c *calendarCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *calendarCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, _, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}
	cal := tradebook.NewCalendarMonth(j, j.Today())
	if c.json {
		return printJSON(cal)
	}
	printMarkdown(renderer.RenderCalendar(&cal))
	return subcommands.ExitSuccess
}
