// Package config loads scenario and solver settings from JSON files using
// viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LanderConfig is the scenario's initial lander state, keyed exactly as
// the external JSON interface names it: {"X":num,"Y":num,"HSpeed":num,
// "VSpeed":num,"Fuel":int,"Angle":num,"Power":int}.
type LanderConfig struct {
	X      float64 `mapstructure:"X"`
	Y      float64 `mapstructure:"Y"`
	HSpeed float64 `mapstructure:"HSpeed"`
	VSpeed float64 `mapstructure:"VSpeed"`
	Fuel   int     `mapstructure:"Fuel"`
	Angle  float64 `mapstructure:"Angle"`
	Power  int     `mapstructure:"Power"`
}

// Scenario is the map and initial-state document. Terrain is an array of
// [x, y] pairs, e.g. {"Terrain":[[0,100],[1000,100]]}.
type Scenario struct {
	Lander  LanderConfig `mapstructure:"Lander"`
	Terrain [][2]float64 `mapstructure:"Terrain"`
}

// Settings is the genetic search's tunable document: {"PopulationSize":int,
// "ChromosomeSize":int,"Elitism":num,"MutationProb":num}.
type Settings struct {
	PopulationSize int     `mapstructure:"PopulationSize"`
	ChromosomeSize int     `mapstructure:"ChromosomeSize"`
	Elitism        float64 `mapstructure:"Elitism"`
	MutationProb   float64 `mapstructure:"MutationProb"`
}

// ErrMissingField reports a scenario/settings document missing a required
// key. Viper unmarshals absent keys as zero values indistinguishably from
// an explicit zero, so presence has to be checked explicitly with
// viper.IsSet rather than relying on mapstructure alone.
var ErrMissingField = fmt.Errorf("config: missing required field")

// LoadScenario reads and validates a scenario document from path.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("config: reading scenario %s: %w", path, err)
	}

	required := []string{
		"lander.x", "lander.y", "lander.hspeed", "lander.vspeed",
		"lander.fuel", "lander.angle", "lander.power", "terrain",
	}
	for _, key := range required {
		if !v.IsSet(key) {
			return Scenario{}, fmt.Errorf("%w: %s in %s", ErrMissingField, key, path)
		}
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return Scenario{}, fmt.Errorf("config: decoding scenario %s: %w", path, err)
	}
	if len(s.Terrain) < 2 {
		return Scenario{}, fmt.Errorf("config: scenario %s: terrain must have at least 2 points", path)
	}
	return s, nil
}

// LoadSettings reads and validates a solver settings document from path.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("config: reading settings %s: %w", path, err)
	}

	required := []string{"populationsize", "chromosomesize", "elitism", "mutationprob"}
	for _, key := range required {
		if !v.IsSet(key) {
			return Settings{}, fmt.Errorf("%w: %s in %s", ErrMissingField, key, path)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decoding settings %s: %w", path, err)
	}
	return s, nil
}
