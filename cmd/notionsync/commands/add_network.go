package commands

import (
	"github.com/spf13/cobra"

	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

var addNetworkFlags struct {
	name     string
	company  string
	role     string
	linkedin string
	email    string
	status   string
}

var addNetworkCmd = &cobra.Command{
	Use:   "add_network",
	Short: "Add a networking contact",
	RunE:  runAddNetwork,
}

func init() {
	f := addNetworkCmd.Flags()
	f.StringVar(&addNetworkFlags.name, "name", "", "Contact name")
	f.StringVar(&addNetworkFlags.company, "company", "", "Company")
	f.StringVar(&addNetworkFlags.role, "role", "", "Role")
	f.StringVar(&addNetworkFlags.linkedin, "linkedin", "", "LinkedIn profile URL")
	f.StringVar(&addNetworkFlags.email, "email", "", "Email address")
	f.StringVar(&addNetworkFlags.status, "status", "Cold", "Contact status")
	_ = addNetworkCmd.MarkFlagRequired("name")
}

func runAddNetwork(cmd *cobra.Command, args []string) error {
	_, log, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	pageID, err := client.AddNetworkContact(cmd.Context(), domain.NetworkContact{
		Name:     addNetworkFlags.name,
		Company:  addNetworkFlags.company,
		Role:     addNetworkFlags.role,
		LinkedIn: addNetworkFlags.linkedin,
		Email:    addNetworkFlags.email,
		Status:   addNetworkFlags.status,
	})
	if err != nil {
		return err
	}
	log.Info("network contact added", "page_id", pageID)
	return nil
}
