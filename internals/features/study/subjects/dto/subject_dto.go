package dto

type CreateSubjectRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=120"`
	Priority          int    `json:"priority" validate:"required,min=1,max=5"`
	EstimatedDuration int    `json:"estimated_duration" validate:"omitempty,min=15,max=600"`
	Difficulty        string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Color             string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateSubjectRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=120"`
	Priority          *int    `json:"priority" validate:"omitempty,min=1,max=5"`
	EstimatedDuration *int    `json:"estimated_duration" validate:"omitempty,min=15,max=600"`
	Difficulty        *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Color             *string `json:"color" validate:"omitempty,hexcolor"`
}
