package config

import "gopkg.in/yaml.v3"

// DumpYAML renders a Scenario/Settings value back out as YAML, used by the
// CLI's debug flag to echo the configuration as loaded and validated, in a
// more readable form than the JSON it was loaded from.
func DumpYAML(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// XY splits a Scenario's terrain points into the parallel x/y slices
// terrain.New expects.
func (s Scenario) XY() (xs, ys []float64) {
	xs = make([]float64, len(s.Terrain))
	ys = make([]float64, len(s.Terrain))
	for i, p := range s.Terrain {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	return xs, ys
}
