package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentflow/interview-assist/internal/evaluation"
)

// Role identifies the author of a log entry.
type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
	RoleSystem      Role = "system"
)

// Message is one entry of the append-only session log.
type Message struct {
	ID         string             `json:"id"`
	Role       Role               `json:"role"`
	Content    string             `json:"content"`
	Timestamp  time.Time          `json:"timestamp"`
	Evaluation *evaluation.Result `json:"evaluation,omitempty"`
	IsFollowup bool               `json:"isFollowup,omitempty"`
}

func newMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
