// Command hetgroups separates a dataset into heterogeneous groups.
//
// It is a thin driver around the hetgroups library: it loads a schema
// declaration and a list of entities from JSON files, runs the configured
// grouping strategy, and prints the resulting partition (and optionally a
// quality report) as JSON. All algorithmic behavior lives in the library.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Amndeep7/heterogeneous-groups"
	"github.com/Amndeep7/heterogeneous-groups/internal/logging"
)

var (
	version = "v0.0.1-default"
	commit  = ""

	dataFlag = &cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "Path to a JSON file holding the list of entity objects",
		Required: true,
	}

	schemaFlag = &cli.StringFlag{
		Name:     "schema",
		Aliases:  []string{"s"},
		Usage:    "Path to a JSON file declaring the identifier key and the attributes",
		Required: true,
	}

	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML run configuration (optional; flags override it)",
	}

	algorithmFlag = &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a", "algo"},
		Usage:   "Grouping strategy [snake, greedy_balance]",
	}

	numGroupsFlag = &cli.IntFlag{
		Name:    "num-groups",
		Aliases: []string{"n"},
		Usage:   "Number of groups to divide the entities into",
	}

	reductionFlag = &cli.StringFlag{
		Name:  "reduction",
		Usage: "Quality report reduction [mean, max]",
	}

	reportFlag = &cli.BoolFlag{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Include a quality report in the output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Prints verbose logs (optional, default: false)",
	}
)

func main() {
	app := &cli.App{
		Name:            "hetgroups",
		Version:         fmt.Sprintf("%s (commit: %s)", version, commit),
		Usage:           "Separate a given dataset into heterogeneous groups",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			dataFlag,
			schemaFlag,
			configFlag,
			algorithmFlag,
			numGroupsFlag,
			reductionFlag,
			reportFlag,
			verboseFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	initLogging(c.Bool(verboseFlag.Name))

	schema, identifier, err := loadSchema(c.String(schemaFlag.Name))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	entities, err := loadEntities(c.String(dataFlag.Name), &schema, identifier)
	if err != nil {
		return err
	}

	grouper, err := hetgroups.New(&cfg, schema, hetgroups.WithLogger(logging.NewSlogDefault()))
	if err != nil {
		return err
	}

	if c.Bool(reportFlag.Name) {
		partition, report, err := grouper.GroupWithReport(entities)
		if err != nil {
			return err
		}

		return printResult(partition, &report)
	}

	partition, err := grouper.Group(entities)
	if err != nil {
		return err
	}

	return printResult(partition, nil)
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
