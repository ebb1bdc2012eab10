package interview

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is the archival snapshot of one session: config, the ordered message
// log and the final stats.
type Record struct {
	Config     Config     `json:"config"`
	Messages   []*Message `json:"messages"`
	Stats      Stats      `json:"stats"`
	ExportTime time.Time  `json:"exportTime"`
}

// Export snapshots the session for archival. The record is independent of the
// controller; later mutations do not leak into it.
func (c *Controller) Export() *Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := make([]*Message, 0, len(c.messages))
	for _, msg := range c.messages {
		copied := *msg
		if msg.Evaluation != nil {
			eval := *msg.Evaluation
			copied.Evaluation = &eval
		}
		messages = append(messages, &copied)
	}

	return &Record{
		Config:     c.cfg,
		Messages:   messages,
		Stats:      c.stats,
		ExportTime: time.Now().UTC(),
	}
}

// Restore rebuilds an ended session from an exported record, yielding the same
// ordered message log and stats.
func (c *Controller) Restore(record *Record) error {
	if record == nil {
		return fmt.Errorf("record is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimerLocked()

	messages := make([]*Message, 0, len(record.Messages))
	for _, msg := range record.Messages {
		copied := *msg
		if msg.Evaluation != nil {
			eval := *msg.Evaluation
			copied.Evaluation = &eval
		}
		messages = append(messages, &copied)
	}

	c.cfg = record.Config
	c.messages = messages
	c.stats = record.Stats
	c.status = StatusEnded
	c.remoteID = ""
	c.pool = nil
	c.suggestions = nil
	c.showSuggestions = false
	c.hints = nil
	c.sim = nil

	return nil
}

// DumpToTmpFile writes the record as indented JSON to a temp file and returns
// its name.
func (r *Record) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "interview_record_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// RecordFromFile loads a previously exported record.
func RecordFromFile(path string) (*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var record Record
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
