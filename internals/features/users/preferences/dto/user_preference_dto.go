package dto

import prefModel "studyku_backend/internals/features/users/preferences/model"

type UpdatePreferenceRequest struct {
	AvailableTimeSlots []prefModel.AvailabilityWindow `json:"available_time_slots" validate:"omitempty,dive"`
	BreakDuration      *int                           `json:"break_duration" validate:"omitempty,min=0,max=120"`
	PreferredHours     *float64                       `json:"preferred_hours" validate:"omitempty,gt=0,max=24"`
	MaxSessionLength   *int                           `json:"max_session_length" validate:"omitempty,min=15,max=240"`
	StudyStyle         *string                        `json:"study_style" validate:"omitempty,oneof=visual auditory kinesthetic mixed"`
	NotificationsOn    *bool                          `json:"notifications_on"`
	WeeklyGoal         *float64                       `json:"weekly_goal" validate:"omitempty,min=0"`
}
