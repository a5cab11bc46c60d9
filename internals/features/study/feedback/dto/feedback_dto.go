package dto

type SubmitFeedbackRequest struct {
	SubjectID        string  `json:"subject_id" validate:"required,uuid4"`
	SessionID        string  `json:"session_id" validate:"required,uuid4"`
	StressLevel      int     `json:"stress_level" validate:"required,min=1,max=5"`
	CompletionStatus string  `json:"completion_status" validate:"required,oneof=completed partial not_started"`
	DifficultyRating int     `json:"difficulty_rating" validate:"required,min=1,max=5"`
	Comments         *string `json:"comments" validate:"omitempty,max=2000"`
	Suggestions      *string `json:"suggestions" validate:"omitempty,max=2000"`
}
