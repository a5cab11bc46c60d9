package engine

import (
	"errors"

	"github.com/google/uuid"

	schedModel "studyku_backend/internals/features/study/schedules/model"
	subjectModel "studyku_backend/internals/features/study/subjects/model"
)

var (
	// ErrNoSubjects: user belum punya subject sama sekali.
	ErrNoSubjects = errors.New("tidak ada subject untuk dialokasikan")
	// ErrNoAvailableSlots: preferensi tidak menghasilkan satu slot pun.
	ErrNoAvailableSlots = errors.New("tidak ada slot waktu yang tersedia")
)

// AllocateSubjects membagi slot ke subject sesuai urutan prioritas (descending,
// urutan input dipertahankan untuk prioritas sama). Tiap subject butuh
// ceil(durasi-estimasi / 90) sesi; slot dikonsumsi dari depan sampai kuota
// terpenuhi atau slot habis. Output mengikuti urutan prioritas subject,
// bukan urutan kronologis slot.
func AllocateSubjects(userID uuid.UUID, subjects []subjectModel.SubjectModel, slots []Slot) ([]schedModel.StudySessionModel, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailableSlots
	}

	sessions := make([]schedModel.StudySessionModel, 0, len(slots))
	slotIndex := 0

	for _, subject := range subjects {
		estimated := subject.SubjectEstimatedDuration
		if estimated <= 0 {
			estimated = subjectModel.DefaultEstimatedDuration
		}
		sessionsNeeded := (estimated + SlotDurationMinutes - 1) / SlotDurationMinutes

		for i := 0; i < sessionsNeeded && slotIndex < len(slots); i++ {
			slot := slots[slotIndex]
			sessions = append(sessions, schedModel.StudySessionModel{
				StudySessionID:        uuid.New(),
				StudySessionUserID:    userID,
				StudySessionSubjectID: subject.SubjectID,

				StudySessionSubjectName:       subject.SubjectName,
				StudySessionSubjectPriority:   subject.SubjectPriority,
				StudySessionSubjectDifficulty: subject.SubjectDifficulty,
				StudySessionSubjectColor:      subject.SubjectColor,
				StudySessionSubjectEstimated:  estimated,

				StudySessionStartTime: slot.StartTime,
				StudySessionEndTime:   slot.EndTime,
				StudySessionDuration:  slot.Duration,

				StudySessionPriority: subject.SubjectPriority,
				StudySessionStatus:   schedModel.SessionStatusPending,
			})
			slotIndex++
		}
	}

	return sessions, nil
}
