package commands

import (
	"github.com/spf13/cobra"

	"github.com/avitalloeb-maker/notion-job-sync/internal/threads"
)

var runSyncFlags struct {
	threadsPath string
}

var runSyncCmd = &cobra.Command{
	Use:   "run_sync",
	Short: "Replay queued project-thread commands older than 2 hours",
	RunE:  runRunSync,
}

func init() {
	runSyncCmd.Flags().StringVar(&runSyncFlags.threadsPath, "threads", "",
		"Path to the project threads file (default from config)")
}

func runRunSync(cmd *cobra.Command, args []string) error {
	cfg, log, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	path := runSyncFlags.threadsPath
	if path == "" {
		path = cfg.Sync.ThreadsPath
	}

	runner := &threads.Runner{Dispatcher: client, Log: log}
	_, err = runner.Run(cmd.Context(), path)
	return err
}
