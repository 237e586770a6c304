package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Amndeep7/heterogeneous-groups"
	"github.com/urfave/cli/v2"
)

// schemaFile is the on-disk schema declaration: the key that identifies each
// entity plus the library's attribute declarations.
type schemaFile struct {
	Identifier string                `json:"identifier"`
	Attributes []hetgroups.Attribute `json:"attributes"`
}

func loadSchema(path string) (hetgroups.Schema, string, error) {
	var sf schemaFile
	if err := readJSON(path, &sf); err != nil {
		return hetgroups.Schema{}, "", err
	}
	if sf.Identifier == "" {
		return hetgroups.Schema{}, "", fmt.Errorf("schema file %s: missing identifier key", path)
	}

	return hetgroups.Schema{Attributes: sf.Attributes}, sf.Identifier, nil
}

// loadConfig builds the run configuration from the optional YAML file, with
// command-line flags taking precedence.
func loadConfig(c *cli.Context) (hetgroups.Config, error) {
	cfg := hetgroups.DefaultConfig()

	if path := c.String(configFlag.Name); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return hetgroups.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return hetgroups.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if c.IsSet(numGroupsFlag.Name) {
		cfg.GroupCount = c.Int(numGroupsFlag.Name)
	}
	if c.IsSet(algorithmFlag.Name) {
		cfg.Strategy = hetgroups.StrategyKind(c.String(algorithmFlag.Name))
	}
	if c.IsSet(reductionFlag.Name) {
		cfg.Reduction = hetgroups.Reduction(c.String(reductionFlag.Name))
	}

	return cfg, nil
}

// loadEntities reads the data file, a JSON list of flat objects, and maps each
// object onto an Entity using the schema's attribute kinds. As a driver
// convenience, a categorical attribute declared without a label set gets its
// labels derived from the observed data before the core schema is finalized.
func loadEntities(path string, schema *hetgroups.Schema, identifier string) ([]hetgroups.Entity, error) {
	var items []map[string]any
	if err := readJSON(path, &items); err != nil {
		return nil, err
	}

	entities := make([]hetgroups.Entity, 0, len(items))
	for i, item := range items {
		id, ok := item[identifier].(string)
		if !ok {
			return nil, fmt.Errorf("data file %s: item %d: identifier %q missing or not a string", path, i, identifier)
		}

		e := hetgroups.Entity{
			ID:          id,
			Numeric:     make(map[string]float64),
			Categorical: make(map[string]string),
		}
		for _, a := range schema.Attributes {
			raw, ok := item[a.Key]
			if !ok {
				continue // the library reports missing attributes with entity context
			}
			switch a.Kind {
			case hetgroups.KindNumeric:
				v, ok := raw.(float64)
				if !ok {
					return nil, fmt.Errorf("data file %s: entity %q: attribute %q is not a number", path, id, a.Key)
				}
				e.Numeric[a.Key] = v
			case hetgroups.KindCategorical:
				label, ok := raw.(string)
				if !ok {
					return nil, fmt.Errorf("data file %s: entity %q: attribute %q is not a string", path, id, a.Key)
				}
				e.Categorical[a.Key] = label
			}
		}

		entities = append(entities, e)
	}

	deriveLabels(schema, entities)

	return entities, nil
}

// deriveLabels fills in the label set of categorical attributes declared
// without one, from the labels observed in the data.
func deriveLabels(schema *hetgroups.Schema, entities []hetgroups.Entity) {
	for i, a := range schema.Attributes {
		if a.Kind != hetgroups.KindCategorical || len(a.Labels) > 0 {
			continue
		}

		var labels []string
		for _, e := range entities {
			if label, ok := e.Categorical[a.Key]; ok && !slices.Contains(labels, label) {
				labels = append(labels, label)
			}
		}
		slices.Sort(labels)
		schema.Attributes[i].Labels = labels
	}
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}

// result is the output document printed to stdout.
type result struct {
	Groups [][]string               `json:"groups"`
	Report *hetgroups.QualityReport `json:"report,omitempty"`
}

func printResult(partition hetgroups.Partition, report *hetgroups.QualityReport) error {
	out := result{Groups: make([][]string, len(partition.Groups)), Report: report}
	for i, g := range partition.Groups {
		out.Groups[i] = g.Members
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
