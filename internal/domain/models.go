package domain

import "time"

// Application is one row in the Job Applications database. Company and Role
// are required; everything else defaults when empty.
type Application struct {
	Company     string
	Role        string
	JDSummary   string
	JDLink      string
	Location    string
	SalaryRange string
	Priority    string
	AppliedAt   *time.Time // nil means "now" at creation time
}

// NetworkContact is one row in the Networking database.
type NetworkContact struct {
	Name          string
	Company       string
	Role          string
	LinkedIn      string
	Email         string
	Status        string
	LastContacted *time.Time
}

// Interview is one row in the Interviews database, linked to an application
// page by its Notion page ID.
type Interview struct {
	ApplicationPageID string
	Stage             string
	Interviewer       string
	Date              *time.Time
	Notes             string
	Outcome           string
}

// FollowUp is one row in the Follow-ups database. Task doubles as the page
// title.
type FollowUp struct {
	Task          string
	RelatedPageID string
	DueDate       *time.Time
	Completed     bool
	Notes         string
}
