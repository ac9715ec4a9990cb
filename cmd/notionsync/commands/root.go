package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avitalloeb-maker/notion-job-sync/internal/config"
	"github.com/avitalloeb-maker/notion-job-sync/internal/logging"
	"github.com/avitalloeb-maker/notion-job-sync/internal/notion"
)

var configPath string

// RootCmd is the notionsync command tree.
var RootCmd = &cobra.Command{
	Use:   "notionsync",
	Short: "Mirror job-search activity into Notion",
	Long: `notionsync — Notion job search sync engine.

Creates Job Application, Networking, Interview and Follow-up records in
Notion, prefills databases from CSV exports, and replays queued project
thread commands once they have gone 2+ hours without an update.

Examples:
  notionsync add_application --company "Meta" --role "Program Manager"
  notionsync prefill_csv --csv job_applications.csv --type applications
  notionsync run_sync --threads project_threads.json`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to optional YAML config file")

	RootCmd.AddCommand(addApplicationCmd)
	RootCmd.AddCommand(addNetworkCmd)
	RootCmd.AddCommand(prefillCSVCmd)
	RootCmd.AddCommand(runSyncCmd)
}

// setup loads configuration and wires the logger and Notion client for one
// command run. The returned func closes the log file sink.
func setup() (*config.Config, *slog.Logger, *notion.Client, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log, closeLog, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	client := notion.New(cfg, log)
	return cfg, log, client, closeLog, nil
}
