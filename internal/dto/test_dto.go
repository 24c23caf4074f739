package dto

import "time"

// QuestionDTO mirrors the embedded question shape stored inside a Test.
type QuestionDTO struct {
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

// TestCreateDTO is the request body for creating a test (also the element
// shape of the init-data seed array).
type TestCreateDTO struct {
	TestID    string        `json:"id" binding:"required"`
	Name      string        `json:"name" binding:"required"`
	Subject   string        `json:"subject"`
	Duration  int           `json:"duration"`
	Questions []QuestionDTO `json:"questions"`
}

// TestUpdateDTO is the request body for replacing a test's fields. The
// external id comes from the path, not the body.
type TestUpdateDTO struct {
	Name      string        `json:"name"`
	Subject   string        `json:"subject"`
	Duration  int           `json:"duration"`
	Questions []QuestionDTO `json:"questions"`
}

// TestResponseDTO is the external representation of a stored test.
type TestResponseDTO struct {
	TestID    string        `json:"id"`
	Name      string        `json:"name"`
	Subject   string        `json:"subject"`
	Duration  int           `json:"duration"`
	Questions []QuestionDTO `json:"questions"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
