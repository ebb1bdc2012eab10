package backend

import "fmt"

// ReportOptions controls what the compiled report includes.
type ReportOptions struct {
	IncludeConversationLog bool   `json:"include_conversation_log"`
	HRNotes                string `json:"hr_notes,omitempty"`
}

// Report is the normalized result of a report compilation call.
type Report struct {
	Summary       string `json:"summary"`
	ReportFileURL string `json:"report_file_url"`
}

// GenerateReport asks the service to compile the session into a report.
func (c *Client) GenerateReport(sessionID string, opts *ReportOptions) (*Report, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	if opts == nil {
		opts = &ReportOptions{IncludeConversationLog: true}
	}

	url := fmt.Sprintf("%s%s/%s/report", c.APIURL, sessionsPath, sessionID)

	var report Report
	if err := c.postJSON(url, opts, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
