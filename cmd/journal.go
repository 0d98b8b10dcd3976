package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tradebook"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of the journal directory" }
func (*accountsCmd) Usage() string {
	return `tb accounts

  Lists every account with its number of entries, trades and data-quality issues.
`
}
func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.log.Sync()

	accounts, err := tradebook.FindAccounts(s.config.Journal, "")
	if err != nil {
		// some accounts may still have been loaded
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	opts, err := s.config.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := "| Account | Entries | Trades | Issues |\n|:---|---:|---:|---:|\n"
	for _, acc := range accounts {
		j := tradebook.NewJournal(acc.Records, time.Now(), opts)
		md += fmt.Sprintf("| %s | %d | %d | %d |\n", acc.Name, j.Len(), len(j.Trades()), len(j.Issues()))
	}
	if len(accounts) == 0 {
		md = fmt.Sprintf("No account in %q.\n", s.config.Journal)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

type fmtCmd struct {
	account string
	write   bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite a journal in the canonical JSONL form"
}
func (*fmtCmd) Usage() string {
	return `tb fmt [-a <account>] [-w]

  Reads a journal, either JSONL or a JSON array exported by the entry store,
  and prints it as JSONL, one record per line, in input order.
  With -w the journal file is rewritten in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to format. Defaults to the only account if there is one.")
	f.BoolVar(&c.write, "w", false, "Write the result to the journal file instead of the standard output.")
}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.log.Sync()

	acc, err := tradebook.FindAccount(s.config.Journal, c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.write {
		if err := encodeRecords(os.Stdout, acc.Records); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := filepath.Join(s.config.Journal, filepath.FromSlash(acc.Name)+".jsonl")
	if err := writeJournal(filename, acc.Records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d records in %s\n", len(acc.Records), filename)
	return subcommands.ExitSuccess
}

func encodeRecords(f *os.File, records []tradebook.Record) error {
	w := bufio.NewWriter(f)
	for _, r := range records {
		if err := tradebook.EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return w.Flush()
}

// writeJournal replaces filename atomically with records, keeping its permissions.
func writeJournal(filename string, records []tradebook.Record) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(filename); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".tb-fmt-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := encodeRecords(tmp, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
