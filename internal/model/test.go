package model

import (
	"time"
)

// Test is a named set of questions with timing and subject metadata.
// Questions are embedded documents: they have no identity outside their
// parent Test and are stored as a single JSON column.
type Test struct {
	ID        uint         `gorm:"primarykey" json:"-"`
	TestID    string       `json:"id" gorm:"column:test_id;not null;uniqueIndex"` // external id, e.g. "jee-main-2024-1"
	Name      string       `json:"name" gorm:"not null"`
	Subject   string       `json:"subject"`
	Duration  int          `json:"duration"` // minutes
	Questions QuestionList `json:"questions" gorm:"type:jsonb"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
