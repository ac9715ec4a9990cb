package threads

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

// syncThreshold is how long a thread must sit untouched before its queued
// command is replayed.
const syncThreshold = 2 * time.Hour

// Command is the action descriptor embedded in an entry's content field.
type Command struct {
	Action string `json:"action"`

	// create_application
	Company     string `json:"company"`
	Role        string `json:"role"`
	JDSummary   string `json:"jd_summary"`
	JDLink      string `json:"jd_link"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	Priority    string `json:"priority"`

	// add_followup
	Task          string `json:"task"`
	RelatedPageID string `json:"related_application_page_id"`
	DueDate       string `json:"due_date"`
	Notes         string `json:"notes"`

	// add_network_contact
	Name     string `json:"name"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// Dispatcher is the subset of the Notion client the sync pass dispatches
// replayed commands through.
type Dispatcher interface {
	CreateApplication(ctx context.Context, app domain.Application) (string, error)
	AddNetworkContact(ctx context.Context, contact domain.NetworkContact) (string, error)
	AddFollowUp(ctx context.Context, f domain.FollowUp) (string, error)
}

// Runner replays aged queue entries through a Dispatcher. One call to Run
// is one single-shot pass; repeating the eligibility check means invoking
// the process again.
type Runner struct {
	Dispatcher Dispatcher
	Log        *slog.Logger
	Now        func() time.Time // defaults to time.Now
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}

// Run performs one replay pass over the queue file at path and returns how
// many entries were synced. The file is rewritten only when at least one
// entry flipped to synced.
func (r *Runner) Run(ctx context.Context, path string) (int, error) {
	entries, err := Load(path, r.Log)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		r.Log.Info("no threads to sync")
		return 0, nil
	}

	now := r.now()
	synced := 0
	for i := range entries {
		if r.processEntry(ctx, now, &entries[i]) {
			synced++
		}
	}

	if synced == 0 {
		r.Log.Info("no threads were synced at this time")
		return 0, nil
	}
	if err := Save(path, entries); err != nil {
		return synced, err
	}
	r.Log.Info("sync completed, thread queue updated", "path", path, "synced", synced)
	return synced, nil
}

// processEntry reports whether the entry flipped to synced. Entries with a
// bad timestamp or a bad command stay pending; they are never retried with
// a counter and never marked synced.
func (r *Runner) processEntry(ctx context.Context, now time.Time, e *Entry) bool {
	if e.Synced {
		return false
	}
	lastUpdated, err := time.Parse(time.RFC3339, e.LastUpdated)
	if err != nil {
		r.Log.Warn("invalid last_updated on thread", "thread_id", e.ThreadID, "error", err)
		return false
	}
	if now.Sub(lastUpdated) < syncThreshold {
		return false
	}
	r.Log.Info("thread eligible for sync", "thread_id", e.ThreadID, "last_updated", e.LastUpdated)

	if strings.TrimSpace(e.Content) == "" {
		r.Log.Info("no command found in thread, skipping", "thread_id", e.ThreadID)
		return false
	}
	var cmd Command
	if err := json.Unmarshal([]byte(e.Content), &cmd); err != nil {
		r.Log.Warn("failed to parse thread content", "thread_id", e.ThreadID, "error", err)
		return false
	}
	if cmd.Action == "" {
		r.Log.Info("no command found in thread, skipping", "thread_id", e.ThreadID)
		return false
	}
	if err := r.dispatch(ctx, cmd); err != nil {
		r.Log.Error("failed to process thread", "thread_id", e.ThreadID, "error", err)
		return false
	}
	e.Synced = true
	return true
}

func (r *Runner) dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Action {
	case "create_application":
		_, err := r.Dispatcher.CreateApplication(ctx, domain.Application{
			Company:     cmd.Company,
			Role:        cmd.Role,
			JDSummary:   cmd.JDSummary,
			JDLink:      cmd.JDLink,
			Location:    cmd.Location,
			SalaryRange: cmd.SalaryRange,
			Priority:    cmd.Priority,
		})
		return err
	case "add_followup":
		task := cmd.Task
		if task == "" {
			task = "Follow up"
		}
		due, err := parseOptionalTime(cmd.DueDate)
		if err != nil {
			return errors.Wrap(err, "parse due_date")
		}
		_, err = r.Dispatcher.AddFollowUp(ctx, domain.FollowUp{
			Task:          task,
			RelatedPageID: cmd.RelatedPageID,
			DueDate:       due,
			Notes:         cmd.Notes,
		})
		return err
	case "add_network_contact":
		_, err := r.Dispatcher.AddNetworkContact(ctx, domain.NetworkContact{
			Name:     cmd.Name,
			Company:  cmd.Company,
			Role:     cmd.Role,
			LinkedIn: cmd.LinkedIn,
			Email:    cmd.Email,
			Status:   cmd.Status,
		})
		return err
	default:
		return errors.Newf("unknown action: %q", cmd.Action)
	}
}

func parseOptionalTime(iso string) (*time.Time, error) {
	if iso == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
