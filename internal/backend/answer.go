package backend

import "fmt"

// Evaluation is the service's judgement of a single answer. The score is
// already normalized to [0,100]; recommendation tiers are derived by the
// caller so both remote and local evaluations share one threshold function.
type Evaluation struct {
	NormalizedScore float64 `json:"normalized_score"`
	ConfidenceLevel string  `json:"confidence_level"`
	Feedback        string  `json:"feedback"`
}

// FollowupSuggestion is a probing question the service recommends after an
// answer.
type FollowupSuggestion struct {
	Question string `json:"question"`
	Reason   string `json:"reason"`
}

type followupRecommendation struct {
	SuggestedFollowups []FollowupSuggestion `json:"suggested_followups"`
}

// AnswerResult is the normalized result of recording one Q&A exchange.
type AnswerResult struct {
	Evaluation             Evaluation             `json:"evaluation"`
	FollowupRecommendation followupRecommendation `json:"followup_recommendation"`
	HRActionHints          []string               `json:"hr_action_hints"`
}

// Followups returns the suggested follow-up questions, never nil.
func (r *AnswerResult) Followups() []FollowupSuggestion {
	if r == nil {
		return nil
	}
	return r.FollowupRecommendation.SuggestedFollowups
}

// RecordAnswer submits one question/answer pair for evaluation.
func (c *Client) RecordAnswer(sessionID string, question *Question, answer string) (*AnswerResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	if question == nil {
		question = &Question{}
	}

	source := question.Source
	if source == "" {
		source = "hr_custom"
	}

	difficulty := question.Difficulty
	if difficulty == 0 {
		difficulty = 5
	}

	skills := question.ExpectedSkills
	if skills == nil {
		skills = []string{}
	}

	payload := map[string]any{
		"question": map[string]any{
			"content":         question.Content,
			"source":          source,
			"category":        question.Category,
			"expected_skills": skills,
			"difficulty":      difficulty,
		},
		"answer": map[string]any{
			"content": answer,
		},
	}

	url := fmt.Sprintf("%s%s/%s/qa", c.APIURL, sessionsPath, sessionID)

	var result AnswerResult
	if err := c.postJSON(url, payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
