package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Question is embedded in a Test and never addressed on its own.
// Its numeric id is only meaningful within the parent Test; the answer and
// timing maps on a Result key into it.
type Question struct {
	ID                     int      `json:"id"`
	Instructions           string   `json:"instructions,omitempty"`
	InstructionImage       *string  `json:"instructionImage,omitempty"`
	InstructionImageHeight *int     `json:"instructionImageHeight,omitempty"`
	QuestionEn             string   `json:"questionEn"`
	QuestionHi             string   `json:"questionHi,omitempty"`
	Options                []string `json:"options"`
	CorrectAnswer          int      `json:"correctAnswer"`
	SolutionText           *string  `json:"solutionText,omitempty"`
	SolutionImage          *string  `json:"solutionImage,omitempty"`
}

// QuestionList serializes the ordered question array into one JSON column.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	b, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for QuestionList")
	}
	if len(data) == 0 {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(data, q)
}
