package model

import (
	"time"

	"gorm.io/datatypes"
)

// Result records one completed run through a Test. TestID is a soft
// reference: a Result may outlive its Test and is only removed by the
// cascade on Test deletion.
type Result struct {
	ID              uint              `gorm:"primarykey" json:"-"`
	AttemptID       string            `json:"attemptId" gorm:"not null;uniqueIndex"`
	TestID          string            `json:"testId" gorm:"not null;index"`
	UserID          *string           `json:"userId,omitempty"`
	TotalQuestions  int               `json:"totalQuestions"`
	CorrectAnswers  int               `json:"correctAnswers"`
	WrongAnswers    int               `json:"wrongAnswers"`
	Skipped         int               `json:"skipped"`
	Score           float64           `json:"score"`
	Percentage      float64           `json:"percentage"` // 0-100
	TimeTaken       string            `json:"timeTaken"`  // display string, e.g. "42:10"
	Answers         datatypes.JSONMap `json:"answers" gorm:"type:jsonb"`       // question id -> chosen option
	QuestionTimes   datatypes.JSONMap `json:"questionTimes" gorm:"type:jsonb"` // question id -> seconds spent
	QuestionResults datatypes.JSON    `json:"questionResults" gorm:"type:jsonb"`
	CompletedAt     time.Time         `json:"completedAt" gorm:"index"`
	CreatedAt       time.Time         `json:"-"`
}
