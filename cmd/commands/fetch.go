package commands

import (
	"encoding/json"

	"github.com/orgball2608/story-fixtures/internal/app"
	"github.com/orgball2608/story-fixtures/internal/fetch"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var fetchBaseURL string

func init() {
	fetchCmd.Flags().StringVar(&fetchBaseURL, "base-url", "", "Base URL to prefix the endpoint with (default from API_BASE_URL).")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <endpoint>",
	Short: "Issues one GET against the API base URL and prints the JSON response.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("base-url") {
			cfg.Api.BaseURL = fetchBaseURL
		}

		var holder *fetch.Fetch[any]
		fxApp := app.New(cfg, app.Fetch, fx.Invoke(func(lc fx.Lifecycle, client *fetch.Client) {
			holder = fetch.Mount[any](lc, client, fetch.Path(args[0]))
		}))
		if err := fxApp.Start(cmd.Context()); err != nil {
			return err
		}
		defer stopApp(fxApp)

		select {
		case <-holder.Done():
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}

		if err := holder.Err(); err != nil {
			return err
		}
		data, _ := holder.Data()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}
