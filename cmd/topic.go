package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradebook/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded documentation.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation of tb" }
func (*topicCmd) Usage() string {
	return `tb topic [<topic>...]

  Prints the documentation topics, the index when none is given, or all of
  them with "*".

` + knownTopics() + "\n"
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, knownTopics())
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// knownTopics lists the topics, for usage and error messages.
func knownTopics() string {
	topics, err := docs.GetAllTopics()
	if err != nil || len(topics) == 0 {
		return "No topic available."
	}
	return "Topics: " + strings.Join(topics, ", ")
}
