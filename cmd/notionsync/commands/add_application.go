package commands

import (
	"github.com/spf13/cobra"

	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

var addApplicationFlags struct {
	company     string
	role        string
	jdSummary   string
	jdLink      string
	location    string
	salaryRange string
	priority    string
}

var addApplicationCmd = &cobra.Command{
	Use:   "add_application",
	Short: "Add a single job application",
	RunE:  runAddApplication,
}

func init() {
	f := addApplicationCmd.Flags()
	f.StringVar(&addApplicationFlags.company, "company", "", "Company name")
	f.StringVar(&addApplicationFlags.role, "role", "", "Role title")
	f.StringVar(&addApplicationFlags.jdSummary, "jd_summary", "", "Job description summary")
	f.StringVar(&addApplicationFlags.jdLink, "jd_link", "", "Job description link")
	f.StringVar(&addApplicationFlags.location, "location", "", "Location")
	f.StringVar(&addApplicationFlags.salaryRange, "salary_range", "", "Salary range")
	f.StringVar(&addApplicationFlags.priority, "priority", "Medium", "Priority")
	_ = addApplicationCmd.MarkFlagRequired("company")
	_ = addApplicationCmd.MarkFlagRequired("role")
}

func runAddApplication(cmd *cobra.Command, args []string) error {
	_, log, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	pageID, err := client.CreateApplication(cmd.Context(), domain.Application{
		Company:     addApplicationFlags.company,
		Role:        addApplicationFlags.role,
		JDSummary:   addApplicationFlags.jdSummary,
		JDLink:      addApplicationFlags.jdLink,
		Location:    addApplicationFlags.location,
		SalaryRange: addApplicationFlags.salaryRange,
		Priority:    addApplicationFlags.priority,
	})
	if err != nil {
		return err
	}
	log.Info("application created", "page_id", pageID)
	return nil
}
