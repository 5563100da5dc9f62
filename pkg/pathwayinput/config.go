package pathwayinput

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// RunConfig is the TOML document describing one end-to-end generator run:
// the action set, the dependency/filter constraints bounding generation,
// and the parameters Evaluate/Materialize need to turn surviving sequences
// into xpositions.txt/sequences.txt.
//
//	max_sequence_length = 3
//	tipping_point_metric = "cost"
//	planning_end = 100
//	end_current_system = 2025
//	shortlist_cap = 0
//	shortlist_seed = 0
//
//	[[actions]]
//	name = "a"
//	[actions.metrics.cost]
//	value = 10
//
//	[[dependencies]]
//	action = "a"
//	relation = "AFTER"
//	others = ["b"]
//
//	[[metric_filters]]
//	metric = "cost"
//	relation = ">="
//	threshold = 0
type RunConfig struct {
	ActionInputs       []ActionConfig       `toml:"actions"`
	Dependencies       []DependencyConfig   `toml:"dependencies"`
	MetricFilters      []MetricFilterConfig `toml:"metric_filters"`
	MaxSequenceLength  int                  `toml:"max_sequence_length"`
	TippingPointMetric string               `toml:"tipping_point_metric"`
	PlanningEnd        float64              `toml:"planning_end"`
	EndCurrentSystem   float64              `toml:"end_current_system"`
	ShortlistCap       int                  `toml:"shortlist_cap"`
	ShortlistSeed      uint64               `toml:"shortlist_seed"`
	ScenarioInput      *ScenarioConfig      `toml:"scenario"`
}

// ScenarioConfig is the TOML form of a model.Scenario. When ID is omitted,
// RunConfig.Scenario synthesizes one with uuid.NewString.
type ScenarioConfig struct {
	ID                 string                              `toml:"id"`
	Name               string                              `toml:"name"`
	MetricDataOverTime map[string][]TimeSeriesPointConfig `toml:"metric_data_over_time"`
}

// TimeSeriesPointConfig is one (time, value) sample in a scenario's series.
type TimeSeriesPointConfig struct {
	Time  float64 `toml:"time"`
	Value float64 `toml:"value"`
}

// Scenario resolves the configured scenario, if any, into a model.Scenario.
func (c RunConfig) Scenario() *model.Scenario {
	if c.ScenarioInput == nil {
		return nil
	}
	id := c.ScenarioInput.ID
	if id == "" {
		id = uuid.NewString()
	}
	series := make(map[string][]model.TimeSeriesPoint, len(c.ScenarioInput.MetricDataOverTime))
	for metric, points := range c.ScenarioInput.MetricDataOverTime {
		converted := make([]model.TimeSeriesPoint, len(points))
		for i, p := range points {
			converted[i] = model.TimeSeriesPoint{Time: p.Time, Data: model.MetricValue{Value: p.Value}}
		}
		series[metric] = converted
	}
	return &model.Scenario{ID: id, Name: c.ScenarioInput.Name, MetricDataOverTime: series}
}

// ActionConfig is one action's TOML representation: name, edition, and the
// metric values the generator and evaluator aggregate over.
type ActionConfig struct {
	Name    string                       `toml:"name"`
	Edition int                          `toml:"edition"`
	Metrics map[string]MetricValueConfig `toml:"metrics"`
}

// MetricValueConfig is one metric's recorded value and estimate flag.
type MetricValueConfig struct {
	Value      float64 `toml:"value"`
	IsEstimate bool    `toml:"is_estimate"`
}

// DependencyConfig is the TOML form of a model.ActionDependency: Relation is
// the textual name from model.SequenceComparison.String().
type DependencyConfig struct {
	Action   string   `toml:"action"`
	Relation string   `toml:"relation"`
	Others   []string `toml:"others"`
}

// MetricFilterConfig is the TOML form of a model.MetricFilter: Relation is
// one of the six arithmetic symbols model.NumberComparison.String() emits.
type MetricFilterConfig struct {
	Metric    string  `toml:"metric"`
	Relation  string  `toml:"relation"`
	Threshold float64 `toml:"threshold"`
}

var sequenceComparisonByName = map[string]model.SequenceComparison{
	"STARTS_WITH":       model.StartsWith,
	"DOESNT_START_WITH": model.DoesntStartWith,
	"ENDS_WITH":         model.EndsWith,
	"DOESNT_END_WITH":   model.DoesntEndWith,
	"CONTAINS":          model.Contains,
	"DOESNT_CONTAIN":    model.DoesntContain,
	"BLOCKS":            model.Blocks,
	"AFTER":             model.After,
	"DIRECTLY_AFTER":    model.DirectlyAfter,
	"BEFORE":            model.Before,
	"DIRECTLY_BEFORE":   model.DirectlyBefore,
}

var numberComparisonByName = map[string]model.NumberComparison{
	">":  model.GreaterThan,
	"<":  model.LessThan,
	">=": model.GreaterOrEqual,
	"<=": model.LessOrEqual,
	"==": model.Equal,
	"!=": model.NotEqual,
}

// ReadRunConfig decodes a RunConfig from r.
func ReadRunConfig(r io.Reader) (RunConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RunConfig{}, perrors.Wrap(perrors.CodeReadFailure, err, "read run config")
	}
	var cfg RunConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, perrors.Wrap(perrors.CodeReadFailure, err, "decode run config")
	}
	return cfg, nil
}

// Actions resolves the configured action list into model.Action values.
func (c RunConfig) Actions() []model.Action {
	actions := make([]model.Action, len(c.ActionInputs))
	for i, a := range c.ActionInputs {
		metrics := make(map[string]model.MetricValue, len(a.Metrics))
		for name, mv := range a.Metrics {
			metrics[name] = model.MetricValue{Value: mv.Value, IsEstimate: mv.IsEstimate}
		}
		actions[i] = model.Action{Name: a.Name, Edition: a.Edition, MetricData: metrics}
	}
	return actions
}

// Constraints resolves the configured dependencies/metric filters/max
// length into a model.GenerationConstraints, looking up each dependency's
// named actions by (name, edition=0) identity among the configured actions.
func (c RunConfig) Constraints() (model.GenerationConstraints, error) {
	byName := make(map[string]model.Action, len(c.ActionInputs))
	for _, a := range c.Actions() {
		byName[a.Key()] = a
	}

	deps := make([]model.ActionDependency, len(c.Dependencies))
	for i, d := range c.Dependencies {
		relation, ok := sequenceComparisonByName[d.Relation]
		if !ok {
			return model.GenerationConstraints{}, perrors.New(perrors.CodeInvalidInput, "unknown dependency relation %q", d.Relation)
		}
		action, ok := byName[d.Action]
		if !ok {
			return model.GenerationConstraints{}, perrors.New(perrors.CodeUnknownAction, "dependency references unknown action %q", d.Action)
		}
		others := make([]model.Action, len(d.Others))
		for j, name := range d.Others {
			other, ok := byName[name]
			if !ok {
				return model.GenerationConstraints{}, perrors.New(perrors.CodeUnknownAction, "dependency references unknown action %q", name)
			}
			others[j] = other
		}
		deps[i] = model.ActionDependency{Action: action, Relation: relation, Others: others}
	}

	filters := make([]model.MetricFilter, len(c.MetricFilters))
	for i, f := range c.MetricFilters {
		relation, ok := numberComparisonByName[f.Relation]
		if !ok {
			return model.GenerationConstraints{}, perrors.New(perrors.CodeInvalidInput, "unknown filter relation %q", f.Relation)
		}
		filters[i] = model.MetricFilter{Metric: f.Metric, Relation: relation, Threshold: f.Threshold}
	}

	return model.GenerationConstraints{
		Dependencies:      deps,
		MetricFilters:     filters,
		MaxSequenceLength: c.MaxSequenceLength,
	}, nil
}

func (c RunConfig) String() string {
	return fmt.Sprintf("RunConfig{actions=%d, dependencies=%d, filters=%d}", len(c.ActionInputs), len(c.Dependencies), len(c.MetricFilters))
}
