package domain

import "time"

// Questionnaire and Question mirror the shared database schema. They have no
// processing logic yet; the matching/generation pipeline that will consume
// them is a future feature. Diagnostics probes the questionnaires table.

type QuestionnaireStatus string

const (
	QuestionnaireStatusPending    QuestionnaireStatus = "pending"
	QuestionnaireStatusProcessing QuestionnaireStatus = "processing"
	QuestionnaireStatusCompleted  QuestionnaireStatus = "completed"
	QuestionnaireStatusFailed     QuestionnaireStatus = "failed"
)

type Questionnaire struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"user_id"`
	Name               string              `json:"name"`
	Status             QuestionnaireStatus `json:"status"`
	TotalQuestions     int                 `json:"total_questions"`
	CompletedQuestions int                 `json:"completed_questions"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type QuestionStatus string

const (
	QuestionStatusPending    QuestionStatus = "pending"
	QuestionStatusGenerating QuestionStatus = "generating"
	QuestionStatusGenerated  QuestionStatus = "generated"
	QuestionStatusEdited     QuestionStatus = "edited"
	QuestionStatusFailed     QuestionStatus = "failed"
)

type Question struct {
	ID              string         `json:"id"`
	QuestionnaireID string         `json:"questionnaire_id"`
	RowNumber       int            `json:"row_number"`
	QuestionText    string         `json:"question_text"`
	GeneratedAnswer *string        `json:"generated_answer"`
	EditedAnswer    *string        `json:"edited_answer"`
	Confidence      float64        `json:"confidence"`
	Status          QuestionStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
