package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lotto-kmc/lotto/kmcerr"
)

// Scenario is the on-disk shape of a --scenario file: the event id list,
// an optional per-id rate table, an optional uniform/one-hot shorthand,
// and an optional impact table. Covers the uniform and one-hot rate
// shapes plus a general-purpose per-id rate map for scenarios neither
// shorthand covers.
type Scenario struct {
	IDs         []string            `yaml:"ids"`
	UniformRate *float64            `yaml:"uniform_rate,omitempty"`
	HotID       *string             `yaml:"hot_id,omitempty"`
	Rates       map[string]float64  `yaml:"rates,omitempty"`
	ImpactTable map[string][]string `yaml:"impact_table,omitempty"`
}

// loadScenario reads and validates a Scenario from path. Exactly one of
// UniformRate, HotID, or Rates must be set; this is checked here rather
// than left to selector construction because it's a scenario-file
// authoring mistake, not a selector precondition.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: reading scenario file %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cmd: parsing scenario file %s: %w", path, err)
	}

	if len(s.IDs) == 0 {
		return nil, fmt.Errorf("cmd: %w: scenario %s has no ids", kmcerr.ErrInvalidConfiguration, path)
	}

	set := 0
	if s.UniformRate != nil {
		set++
	}
	if s.HotID != nil {
		set++
	}
	if s.Rates != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("cmd: %w: scenario %s must set exactly one of uniform_rate, hot_id, rates (got %d)", kmcerr.ErrInvalidConfiguration, path, set)
	}

	return &s, nil
}

// mapRateCalculator serves a scenario's explicit per-id rate table. It
// exists purely so the CLI's --scenario file can express an arbitrary
// static rate distribution, beyond the uniform and one-hot shorthands.
type mapRateCalculator struct {
	rates map[string]float64
}

func newMapRateCalculator(rates map[string]float64) *mapRateCalculator {
	return &mapRateCalculator{rates: rates}
}

func (c *mapRateCalculator) CalculateRate(id string) (float64, error) {
	rate, ok := c.rates[id]
	if !ok {
		return 0, fmt.Errorf("cmd: %w: scenario rate table has no entry for event id %q", kmcerr.ErrOutOfDomain, id)
	}
	return rate, nil
}
