package backend

import "fmt"

const sessionsPath = "/sessions"

// SessionInfo is the normalized result of creating a remote session.
type SessionInfo struct {
	SessionID        string   `json:"session_id"`
	ResumeHighlights []string `json:"resume_highlights"`
}

// CreateSession opens a remote interview session bound to the given resume.
func (c *Client) CreateSession(resumeRef string) (*SessionInfo, error) {
	if resumeRef == "" {
		return nil, fmt.Errorf("resume reference is required")
	}

	payload := map[string]string{
		"resume_data_id":   resumeRef,
		"interviewer_name": "面试官",
	}

	var info SessionInfo
	if err := c.postJSON(c.APIURL+sessionsPath, payload, &info); err != nil {
		return nil, err
	}

	if info.SessionID == "" {
		return nil, fmt.Errorf("service returned empty session id")
	}

	return &info, nil
}

// EndSession closes the remote session. The service keeps the transcript for
// report generation.
func (c *Client) EndSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	url := fmt.Sprintf("%s%s/%s/end", c.APIURL, sessionsPath, sessionID)

	return c.postJSON(url, nil, nil)
}
