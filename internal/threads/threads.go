package threads

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// Entry is one queued project-thread command waiting for time-gated replay.
// Content carries an embedded JSON action descriptor.
type Entry struct {
	ThreadID    string `json:"thread_id"`
	LastUpdated string `json:"last_updated"`
	Synced      bool   `json:"synced"`
	Content     string `json:"content"`
}

// Load reads the queue file at path. A missing file is an empty queue, not
// an error.
func Load(path string, log *slog.Logger) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("no thread queue file found", "path", path)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read thread queue %s", path)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parse thread queue %s", path)
	}
	return entries, nil
}

// Save rewrites the whole queue file.
func Save(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode thread queue")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write thread queue %s", path)
	}
	return nil
}
