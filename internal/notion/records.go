package notion

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	gnt "github.com/dstotijn/go-notion"

	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

// Defaults for optional enum fields left unset by the caller.
const (
	DefaultApplicationStatus = "Applied"
	DefaultPriority          = "Medium"
	DefaultContactStatus     = "Cold"
	DefaultOutcome           = "Pending"
)

func (c *Client) createPage(ctx context.Context, databaseID string, props gnt.DatabasePageProperties) (string, error) {
	page, err := c.api.CreatePage(ctx, gnt.CreatePageParams{
		ParentType:             gnt.ParentTypeDatabase,
		ParentID:               databaseID,
		DatabasePageProperties: &props,
	})
	if err != nil {
		return "", err
	}
	return page.ID, nil
}

// CreateApplication adds a row to the Job Applications database and returns
// the created page ID. There is no dedup: repeated calls with the same
// fields create duplicate rows.
func (c *Client) CreateApplication(ctx context.Context, app domain.Application) (string, error) {
	if app.Company == "" || app.Role == "" {
		return "", errors.New("application needs company and role")
	}
	c.log.Info("creating job application", "company", app.Company, "role", app.Role)

	applied := app.AppliedAt
	if applied == nil {
		now := time.Now().UTC()
		applied = &now
	}
	priority := app.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	props := gnt.DatabasePageProperties{
		"Company":      titleProp(app.Company),
		"Role":         richTextProp(app.Role),
		"Date Applied": dateProp(applied),
		"Status":       selectProp(DefaultApplicationStatus),
		"JD Summary":   richTextProp(app.JDSummary),
		"JD Link":      urlProp(app.JDLink),
		"Location":     richTextProp(app.Location),
		"Salary Range": richTextProp(app.SalaryRange),
		"Priority":     selectProp(priority),
	}
	return c.createPage(ctx, c.dbs.Applications, props)
}

// AddNetworkContact adds a row to the Networking database. Last Contacted
// starts out unset.
func (c *Client) AddNetworkContact(ctx context.Context, contact domain.NetworkContact) (string, error) {
	if contact.Name == "" {
		return "", errors.New("network contact needs a name")
	}
	c.log.Info("adding network contact", "name", contact.Name, "company", contact.Company)

	status := contact.Status
	if status == "" {
		status = DefaultContactStatus
	}

	props := gnt.DatabasePageProperties{
		"Name":           titleProp(contact.Name),
		"Company":        richTextProp(contact.Company),
		"Role":           richTextProp(contact.Role),
		"LinkedIn":       urlProp(contact.LinkedIn),
		"Email":          emailProp(contact.Email),
		"Status":         selectProp(status),
		"Last Contacted": dateProp(contact.LastContacted),
	}
	return c.createPage(ctx, c.dbs.Networking, props)
}

// AddInterview adds a row to the Interviews database, linked to an
// application page.
func (c *Client) AddInterview(ctx context.Context, iv domain.Interview) (string, error) {
	if iv.ApplicationPageID == "" || iv.Stage == "" {
		return "", errors.New("interview needs an application page ID and a stage")
	}
	c.log.Info("adding interview record", "application", iv.ApplicationPageID, "stage", iv.Stage)

	outcome := iv.Outcome
	if outcome == "" {
		outcome = DefaultOutcome
	}

	props := gnt.DatabasePageProperties{
		"Application": relationProp(iv.ApplicationPageID),
		"Stage":       selectProp(iv.Stage),
		"Interviewer": richTextProp(iv.Interviewer),
		"Date":        dateProp(iv.Date),
		"Notes":       richTextProp(iv.Notes),
		"Outcome":     selectProp(outcome),
	}
	return c.createPage(ctx, c.dbs.Interviews, props)
}

// AddFollowUp adds a row to the Follow-ups database.
func (c *Client) AddFollowUp(ctx context.Context, f domain.FollowUp) (string, error) {
	if f.Task == "" {
		return "", errors.New("follow-up needs a task")
	}
	c.log.Info("creating follow-up task", "task", f.Task)

	props := gnt.DatabasePageProperties{
		"Task":                titleProp(f.Task),
		"Related Application": relationProp(f.RelatedPageID),
		"Due Date":            dateProp(f.DueDate),
		"Completed":           checkboxProp(f.Completed),
		"Notes":               richTextProp(f.Notes),
	}
	return c.createPage(ctx, c.dbs.FollowUps, props)
}

// QueryByText finds pages in databaseID whose named rich-text property
// contains value. Best effort: none of the create paths call this, so
// creation stays duplicate-producing.
func (c *Client) QueryByText(ctx context.Context, databaseID, property, value string) ([]gnt.Page, error) {
	resp, err := c.api.QueryDatabase(ctx, databaseID, &gnt.DatabaseQuery{
		Filter: &gnt.DatabaseQueryFilter{
			Property: property,
			DatabaseQueryPropertyFilter: gnt.DatabaseQueryPropertyFilter{
				RichText: &gnt.TextPropertyFilter{Contains: value},
			},
		},
		PageSize: 50,
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// UpdateSelect rewrites a single select property on an existing page.
func (c *Client) UpdateSelect(ctx context.Context, pageID, property, value string) error {
	_, err := c.api.UpdatePage(ctx, pageID, gnt.UpdatePageParams{
		DatabasePageProperties: gnt.DatabasePageProperties{
			property: selectProp(value),
		},
	})
	return err
}

// FetchRecord reads a single page back from the API.
func (c *Client) FetchRecord(ctx context.Context, pageID string) (gnt.Page, error) {
	return c.api.FindPageByID(ctx, pageID)
}
