// Command lander runs the evolutionary search for a scenario/settings pair
// to completion or until an iteration budget is exhausted, optionally
// serving a realtime view of the search over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/Nizerlak/mars-lander-exercise/applander"
	"github.com/Nizerlak/mars-lander-exercise/config"
	"github.com/Nizerlak/mars-lander-exercise/terrain"
	"github.com/Nizerlak/mars-lander-exercise/viz"
)

var (
	scenarioPath *string
	settingsPath *string
	maxGenerations *int
	seed           *int64
	addr           *string
	serve          *bool
	debugDump      *bool
)

func init() {
	scenarioPath = flag.String("scenario", "scenario.json", "path to the scenario JSON file")
	settingsPath = flag.String("settings", "settings.json", "path to the solver settings JSON file")
	maxGenerations = flag.Int("max-generations", 200, "generation budget before giving up")
	seed = flag.Int64("seed", 1, "RNG seed for the genetic search")
	addr = flag.String("addr", ":8080", "address to serve the visualization on")
	serve = flag.Bool("serve", false, "serve a realtime visualization while searching")
	debugDump = flag.Bool("debug", false, "dump the effective configuration as YAML before running")
}

func run() (bool, error) {
	flag.Parse()

	scenario, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		return false, err
	}
	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		return false, err
	}

	if *debugDump {
		if dump, err := config.DumpYAML(scenario); err == nil {
			fmt.Println(dump)
		}
		if dump, err := config.DumpYAML(settings); err == nil {
			fmt.Println(dump)
		}
	}

	xs, ys := scenario.XY()
	t, err := terrain.WithDefaultLimits(xs, ys)
	if err != nil {
		return false, err
	}

	rng := rand.New(rand.NewSource(*seed))
	app, err := applander.TryNew(scenario.Lander.ToLanderState(), t, settings.ToSolverSettings(), rng)
	if err != nil {
		return false, err
	}

	var updates chan viz.GenerationSnapshot
	if *serve {
		updates = make(chan viz.GenerationSnapshot, 1)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv := viz.NewServer(ctx, *addr, updates)
		go func() {
			if err := srv.Serve(); err != nil {
				fmt.Println(err)
			}
		}()
	}

	for gen := 0; gen < *maxGenerations; gen++ {
		if err := app.Run(); err != nil {
			return false, err
		}

		if updates != nil {
			select {
			case updates <- viz.Snapshot(app):
			default:
			}
		}

		if app.HasLandedCorrect() {
			return true, nil
		}

		if err := app.NextPopulation(); err != nil {
			return false, err
		}
	}

	return false, nil
}

func main() {
	found, err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !found {
		fmt.Println("no solution found within the generation budget")
		os.Exit(1)
	}
	fmt.Println("landed correctly")
}
