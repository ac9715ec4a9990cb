package prefill

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

// Import kinds, matching the CSV layouts of the four databases.
const (
	KindApplications = "applications"
	KindNetworking   = "networking"
	KindInterviews   = "interviews"
	KindFollowUps    = "followups"
)

// Recorder is the subset of the Notion client the importer inserts through.
type Recorder interface {
	CreateApplication(ctx context.Context, app domain.Application) (string, error)
	AddNetworkContact(ctx context.Context, contact domain.NetworkContact) (string, error)
	AddInterview(ctx context.Context, iv domain.Interview) (string, error)
	AddFollowUp(ctx context.Context, f domain.FollowUp) (string, error)
}

// Importer bulk-inserts rows from a header-delimited CSV file.
type Importer struct {
	Recorder Recorder
	Log      *slog.Logger
}

// Run imports path into the database selected by kind and returns how many
// rows were inserted. A failed row is logged and skipped; the batch always
// runs to the end of the file.
func (im *Importer) Run(ctx context.Context, path, kind string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open csv %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, errors.Wrapf(err, "read csv header from %s", path)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			im.Log.Warn("skipping unreadable csv row", "error", err)
			continue
		}
		row := rowReader{columns: columns, record: record}
		if err := im.insert(ctx, kind, row); err != nil {
			im.Log.Error("failed to insert row", "row", strings.Join(record, ","), "error", err)
			continue
		}
		count++
	}

	im.Log.Info("prefill finished", "kind", kind, "inserted", count)
	return count, nil
}

func (im *Importer) insert(ctx context.Context, kind string, row rowReader) error {
	switch kind {
	case KindApplications:
		_, err := im.Recorder.CreateApplication(ctx, domain.Application{
			Company:     row.get("Company"),
			Role:        row.get("Role"),
			JDSummary:   row.get("JD Summary"),
			JDLink:      row.get("JD Link"),
			Location:    row.get("Location"),
			SalaryRange: row.get("Salary Range"),
			Priority:    row.get("Priority"),
		})
		return err
	case KindNetworking:
		_, err := im.Recorder.AddNetworkContact(ctx, domain.NetworkContact{
			Name:     row.get("Name"),
			Company:  row.get("Company"),
			Role:     row.get("Role"),
			LinkedIn: row.get("LinkedIn"),
			Email:    row.get("Email"),
			Status:   row.get("Status"),
		})
		return err
	case KindInterviews:
		date, err := row.getTime("Date")
		if err != nil {
			return err
		}
		_, err = im.Recorder.AddInterview(ctx, domain.Interview{
			ApplicationPageID: row.get("Application"),
			Stage:             row.get("Stage"),
			Interviewer:       row.get("Interviewer"),
			Date:              date,
			Notes:             row.get("Notes"),
			Outcome:           row.get("Outcome"),
		})
		return err
	case KindFollowUps:
		due, err := row.getTime("Due Date")
		if err != nil {
			return err
		}
		_, err = im.Recorder.AddFollowUp(ctx, domain.FollowUp{
			Task:          row.get("Task"),
			RelatedPageID: row.get("Related Application"),
			DueDate:       due,
			Completed:     strings.EqualFold(row.get("Completed"), "true"),
			Notes:         row.get("Notes"),
		})
		return err
	default:
		return errors.Newf("unknown import kind: %q", kind)
	}
}

// rowReader maps named columns onto one CSV record. Missing columns read as
// empty strings.
type rowReader struct {
	columns map[string]int
	record  []string
}

func (r rowReader) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r rowReader) getTime(name string) (*time.Time, error) {
	v := r.get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}
	return &t, nil
}
