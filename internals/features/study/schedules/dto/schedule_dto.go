package dto

type UpdateSessionRequest struct {
	Status         *string `json:"status" validate:"omitempty,oneof=pending in_progress completed missed"`
	ActualDuration *int    `json:"actual_duration" validate:"omitempty,min=0,max=600"`
	Notes          *string `json:"notes" validate:"omitempty,max=2000"`
}
