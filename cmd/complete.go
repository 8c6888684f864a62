package cmd

import (
	"maps"
	"strconv"

	"github.com/etnz/growth"
	"github.com/etnz/growth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers shell completion requests for name, and returns
// immediately when the program was not invoked for completion.
//
// Install the completion with `COMP_INSTALL=1 grow`.
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the command line of grow for shell completion.
func completion() *complete.Command {
	plan := map[string]complete.Predictor{
		"plan":         predict.Files("*.yaml"),
		"initial":      predict.Something,
		"contribution": predict.Something,
		"rate":         predict.Something,
		"years":        predict.Something,
		"frequency":    predict.Set(growth.FrequencyLabels()),
		"goal":         predict.Something,
		"start":        predict.Something,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		m := maps.Clone(plan)
		maps.Copy(m, flags)
		return m
	}

	perYear := make(predict.Set, 0, len(growth.Frequencies))
	for _, f := range growth.Frequencies {
		perYear = append(perYear, strconv.Itoa(f.PeriodsPerYear()))
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"project": {Flags: with(map[string]complete.Predictor{
				"table": predict.Nothing,
				"json":  predict.Nothing,
				"q":     predict.Something,
			})},
			"scenarios": {Flags: with(map[string]complete.Predictor{
				"labels": predict.Nothing,
				"json":   predict.Nothing,
				"q":      predict.Something,
			})},
			"volatility": {Flags: map[string]complete.Predictor{
				"per-year": perYear,
				"value":    predict.Nothing,
			}},
			"topic": {Args: predict.Set(append(topics, "*"))},
		},
		Flags: map[string]complete.Predictor{
			"currency": predict.Something,
			"v":        predict.Nothing,
			"raw":      predict.Nothing,
		},
	}
}
