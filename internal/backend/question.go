package backend

import "fmt"

// Question is a single entry of the remote question pool.
type Question struct {
	ID             string   `json:"id"`
	Content        string   `json:"content"`
	Source         string   `json:"source"`
	Category       string   `json:"category"`
	ExpectedSkills []string `json:"expected_skills"`
	Difficulty     int      `json:"difficulty"`
}

// QuestionFilters narrows the generated question pool.
type QuestionFilters struct {
	Categories       []string `json:"categories"`
	CandidateLevel   string   `json:"candidate_level"`
	CountPerCategory int      `json:"count_per_category"`
	FocusOnResume    bool     `json:"focus_on_resume"`
}

// QuestionPool is the normalized result of a pool generation call.
type QuestionPool struct {
	Pool             []*Question `json:"question_pool"`
	ResumeHighlights []string    `json:"resume_highlights"`
}

// GenerateQuestions asks the service for resume-driven interview questions.
func (c *Client) GenerateQuestions(sessionID string, filters *QuestionFilters) (*QuestionPool, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	url := fmt.Sprintf("%s%s/%s/questions", c.APIURL, sessionsPath, sessionID)

	var pool QuestionPool
	if err := c.postJSON(url, filters, &pool); err != nil {
		return nil, err
	}

	return &pool, nil
}

func (p *QuestionPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Pool)
}
