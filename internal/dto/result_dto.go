package dto

import (
	"time"

	"gorm.io/datatypes"
)

// ResultSubmitDTO is the request body for submitting an attempt. The
// attempt id is never caller-supplied; the server generates it.
type ResultSubmitDTO struct {
	TestID          string            `json:"testId" binding:"required"`
	UserID          *string           `json:"userId,omitempty"`
	TotalQuestions  int               `json:"totalQuestions"`
	CorrectAnswers  int               `json:"correctAnswers"`
	WrongAnswers    int               `json:"wrongAnswers"`
	Skipped         int               `json:"skipped"`
	Score           float64           `json:"score"`
	Percentage      float64           `json:"percentage"`
	TimeTaken       string            `json:"timeTaken"`
	Answers         datatypes.JSONMap `json:"answers"`
	QuestionTimes   datatypes.JSONMap `json:"questionTimes"`
	QuestionResults datatypes.JSON    `json:"questionResults"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"` // defaults to submission time
}

// ResultResponseDTO is the external representation of a stored attempt.
type ResultResponseDTO struct {
	AttemptID       string            `json:"attemptId"`
	TestID          string            `json:"testId"`
	UserID          *string           `json:"userId,omitempty"`
	TotalQuestions  int               `json:"totalQuestions"`
	CorrectAnswers  int               `json:"correctAnswers"`
	WrongAnswers    int               `json:"wrongAnswers"`
	Skipped         int               `json:"skipped"`
	Score           float64           `json:"score"`
	Percentage      float64           `json:"percentage"`
	TimeTaken       string            `json:"timeTaken"`
	Answers         datatypes.JSONMap `json:"answers"`
	QuestionTimes   datatypes.JSONMap `json:"questionTimes"`
	QuestionResults datatypes.JSON    `json:"questionResults"`
	CompletedAt     time.Time         `json:"completedAt"`
}

// StatsDTO is the derived aggregate over the results of one test.
type StatsDTO struct {
	Attempts int     `json:"attempts"`
	Best     float64 `json:"best"`
	Last     float64 `json:"last"`
	Average  float64 `json:"average"` // rounded to 2 decimal places
}

// HistoryEntryDTO summarizes all attempts for one test in the history map.
type HistoryEntryDTO struct {
	Attempts      int     `json:"attempts"`
	Best          float64 `json:"best"`
	Last          float64 `json:"last"`
	LastAttemptID string  `json:"lastAttemptId"`
}
