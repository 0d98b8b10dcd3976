package cmd

import (
	"flag"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers the shell completion request for the commands of c, if
// the program was invoked for one, and exits in that case.
//
// Install the completion with COMP_INSTALL=1 tb.
func Complete(name string, c *subcommands.Commander) {
	Completion(c).Complete(name)
}

// Completion returns the completion tree of the commands and flags registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictFlag(f.Name) })
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(f.Name) })
		if cmd.Name() == "topic" {
			sub.Args = predictTopics
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictFlag(name string) complete.Predictor {
	switch name {
	case "journal-path":
		return predict.Dirs("*")
	case "config":
		return predict.Files("*.yaml")
	case "a":
		return predictAccounts
	case "v", "json", "w":
		return predict.Nothing
	default:
		return predict.Something
	}
}

// predictAccounts lists the accounts of the journal directory.
var predictAccounts = complete.PredictFunc(func(prefix string) []string {
	path := *journalPath
	if path == "" {
		if config, err := LoadConfig(*configFile); err == nil {
			path = config.Journal
		}
	}
	names, _ := tradebook.ListAccounts(path)
	return names
})

var predictTopics = complete.PredictFunc(func(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
})
