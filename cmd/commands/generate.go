package commands

import (
	"github.com/orgball2608/story-fixtures/internal/app"
	"github.com/orgball2608/story-fixtures/internal/fixtures"
	"github.com/orgball2608/story-fixtures/internal/generator"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type generateFlags struct {
	output   string
	seed     uint64
	postgres bool
}

var genFlags generateFlags

func init() {
	bindGenerateFlags(rootCmd)
	bindGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func bindGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&genFlags.output, "output", "o", "", "Path of the JSON document to write (default from GENERATOR_OUTPUT).")
	cmd.Flags().Uint64Var(&genFlags.seed, "seed", 0, "Random seed; 0 picks a fresh one.")
	cmd.Flags().BoolVar(&genFlags.postgres, "postgres", false, "Also seed the fixture tables in postgres.")
}

var generateCmd = &cobra.Command{
	Use:   "generate [userCount] [storyCount]",
	Short: "Generates random users, stories, story views and story replies into a JSON file.",
	Long: `Generates random users, stories, story views and story replies into a JSON file.

Both counts are optional. Missing, non-numeric or non-positive counts fall
back to the configured defaults (20 users, 50 stories).`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg)

	counts := generator.ParseCounts(args, generator.Counts{
		Users:   cfg.Generator.Users,
		Stories: cfg.Generator.Stories,
	})

	var runner *fixtures.Runner
	options := []fx.Option{app.Generate, fx.Populate(&runner)}
	if cfg.Postgres.Enabled {
		options = append(options, app.Postgres)
	}

	fxApp := app.New(cfg, options...)
	ctx := cmd.Context()
	if err := fxApp.Start(ctx); err != nil {
		return err
	}
	defer stopApp(fxApp)

	runner.SetOutput(cmd.OutOrStdout())
	_, err = runner.Run(ctx, counts)
	return err
}

func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Generator.OutputPath = genFlags.output
	}
	if flags.Changed("seed") {
		cfg.Generator.Seed = genFlags.seed
	}
	if flags.Changed("postgres") {
		cfg.Postgres.Enabled = genFlags.postgres
	}
}
