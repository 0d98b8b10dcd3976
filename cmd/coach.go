package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// coachCmd is the subcommand for the AI trading coach.
type coachCmd struct {
	account string
}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "start an interactive session with the AI trading coach" }
func (*coachCmd) Usage() string {
	return `tb coach [-a <account>] [<question>...]

  Starts an interactive session with the AI trading coach, who reads the
  account's journal. The question, if any, is asked first.

  Needs GEMINI_API_KEY in the environment or in the .env file.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to discuss. Defaults to the only account if there is one.")
}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.log.Sync()

	j, _, err := s.journal(c.account, tradebook.AllYears, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY is not set. See 'tb topic config'.")
		return subcommands.ExitFailure
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	model := s.config.Model
	analyst := agent.NewAnalyst(model, j)
	market := agent.NewMarketExpert(model)
	analyst.Logger, market.Logger = s.log, s.log

	a := agent.New(os.Stdout, os.Stdin, analyst, market)
	a.Facilitator.Logger = s.log
	a.Print = func(_ io.Writer, md string) { printMarkdown(md) }

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
