package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/avitalloeb-maker/notion-job-sync/internal/prefill"
)

var prefillFlags struct {
	csvPath string
	kind    string
}

var prefillCSVCmd = &cobra.Command{
	Use:   "prefill_csv",
	Short: "Prefill a database from a CSV export",
	RunE:  runPrefillCSV,
}

func init() {
	f := prefillCSVCmd.Flags()
	f.StringVar(&prefillFlags.csvPath, "csv", "", "Path to the CSV file")
	f.StringVar(&prefillFlags.kind, "type", prefill.KindApplications,
		"Target database: applications, networking, interviews or followups")
	_ = prefillCSVCmd.MarkFlagRequired("csv")
}

func runPrefillCSV(cmd *cobra.Command, args []string) error {
	switch prefillFlags.kind {
	case prefill.KindApplications, prefill.KindNetworking, prefill.KindInterviews, prefill.KindFollowUps:
	default:
		return errors.Newf("unknown --type %q", prefillFlags.kind)
	}

	_, log, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	im := &prefill.Importer{Recorder: client, Log: log}
	_, err = im.Run(cmd.Context(), prefillFlags.csvPath, prefillFlags.kind)
	return err
}
