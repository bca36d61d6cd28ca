package cmd

import (
	"flag"
	"io"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors suggest values for flags, by flag name, in every command.
func flagPredictors() map[string]complete.Predictor {
	goals := predict.Set{}
	for _, g := range rupeelogic.GoalTypes {
		goals = append(goals, strings.ToLower(strings.ReplaceAll(string(g), " ", "-")))
	}
	risks := predict.Set{}
	for _, r := range rupeelogic.RiskTolerances {
		risks = append(risks, string(r))
	}
	return map[string]complete.Predictor{
		"f":       predict.Files("*.json"),
		"config":  predict.Files("*.yaml"),
		"kb":      predict.Files("*"),
		"goal":    goals,
		"risk":    risks,
		"horizon": predict.Set{"short", "medium", "long", "very-long"},
		"id":      predict.Something,
	}
}

// argPredictors suggest positional arguments, by command name.
func argPredictors() map[string]complete.Predictor {
	topics, _ := docs.GetAllTopics()
	return map[string]complete.Predictor{
		"topic": predict.Set(topics),
		"batch": predict.Files("*.jsonl"),
	}
}

// Completion describes the commands and their flags for shell completion.
func Completion(commands []subcommands.Command) *complete.Command {
	fp, ap := flagPredictors(), argPredictors()
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(flag.CommandLine, fp),
	}
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{
			Flags: predictors(fs, fp),
			Args:  ap[c.Name()],
		}
	}
	return root
}

func predictors(fs *flag.FlagSet, known map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch p, ok := known[f.Name]; {
		case ok:
			flags[f.Name] = p
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
