package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/harmony-one/linkedqueue/internal/utils"
)

type benchResult struct {
	Scenario string
	Elements int
	Rounds   int
	Best     time.Duration
	Mean     time.Duration
	Worst    time.Duration
}

// runScenarios runs every configured scenario, at most Parallel at a time.
// Results keep the configured scenario order.
func runScenarios(ctx context.Context, config generalConfig) ([]benchResult, error) {
	for _, name := range config.Scenarios {
		if _, ok := scenarios[name]; !ok {
			return nil, errors.Errorf("unknown scenario %v", name)
		}
	}
	results := make([]benchResult, len(config.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Parallel)
	for i, name := range config.Scenarios {
		i, name, run := i, name, scenarios[name]
		g.Go(func() error {
			res, err := runScenario(ctx, name, run, config.Elements, config.Rounds)
			if err != nil {
				return errors.Wrapf(err, "scenario %v", name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, name string, run scenarioFunc, elements, rounds int) (benchResult, error) {
	res := benchResult{
		Scenario: name,
		Elements: elements,
	}
	var total time.Duration
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return benchResult{}, err
		}
		elapsed, err := run(elements)
		if err != nil {
			return benchResult{}, err
		}
		utils.Logger().Debug().
			Str("scenario", name).
			Int("round", round).
			Dur("elapsed", elapsed).
			Msg("[chainbench] round finished")

		if res.Rounds == 0 || elapsed < res.Best {
			res.Best = elapsed
		}
		if elapsed > res.Worst {
			res.Worst = elapsed
		}
		total += elapsed
		res.Rounds++
	}
	res.Mean = total / time.Duration(res.Rounds)

	utils.Logger().Info().
		Str("scenario", name).
		Int("elements", elements).
		Dur("best", res.Best).
		Dur("mean", res.Mean).
		Msg("[chainbench] scenario finished")
	return res, nil
}

func renderResults(w io.Writer, results []benchResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Elements", "Rounds", "Best", "Mean", "Worst", "ns/elem"})
	for _, res := range results {
		perElem := float64(res.Mean.Nanoseconds()) / float64(res.Elements)
		table.Append([]string{
			res.Scenario,
			fmt.Sprint(res.Elements),
			fmt.Sprint(res.Rounds),
			res.Best.String(),
			res.Mean.String(),
			res.Worst.String(),
			fmt.Sprintf("%.2f", perElem),
		})
	}
	table.Render()
}

// renderCounters prints the linkedqueue counters of the shared registry.
func renderCounters(w io.Writer) error {
	families, err := utils.PromRegistry().Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Counter", "Value"})
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "linkedqueue_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			table.Append([]string{mf.GetName(), fmt.Sprintf("%.0f", m.GetCounter().GetValue())})
		}
	}
	table.Render()
	return nil
}
