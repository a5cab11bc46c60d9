package engine

import (
	"time"

	prefModel "studyku_backend/internals/features/users/preferences/model"
)

// Panjang slot belajar tetap 90 menit; jeda default 15 menit.
const (
	SlotDurationMinutes  = 90
	DefaultBreakDuration = 15
)

// Slot: interval 90 menit siap dialokasikan; ephemeral, tidak pernah dipersist sendiri.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  int // menit
}

// GenerateTimeSlots memotong tiap jendela ketersediaan jadi slot 90 menit,
// maju per (90 + jeda) menit selama slot masih muat di dalam jendela.
// Jendela yang tidak available atau jam-nya rusak dilewati, tidak pernah fatal.
// Hasil kosong adalah outcome valid — pemanggil yang memutuskan error-nya.
func GenerateTimeSlots(date time.Time, windows []prefModel.AvailabilityWindow, breakDuration int) []Slot {
	if breakDuration <= 0 {
		breakDuration = DefaultBreakDuration
	}

	var slots []Slot
	for _, w := range windows {
		if !w.IsAvailable || w.StartTime == "" || w.EndTime == "" {
			continue
		}

		start, okStart := parseClock(date, w.StartTime)
		end, okEnd := parseClock(date, w.EndTime)
		if !okStart || !okEnd || !start.Before(end) {
			continue
		}

		current := start
		for current.Before(end) {
			sessionEnd := current.Add(SlotDurationMinutes * time.Minute)
			if sessionEnd.After(end) {
				break
			}
			slots = append(slots, Slot{
				StartTime: current,
				EndTime:   sessionEnd,
				Duration:  SlotDurationMinutes,
			})
			current = sessionEnd.Add(time.Duration(breakDuration) * time.Minute)
		}
	}
	return slots
}

// parseClock menempelkan jam "HH:MM" ke tanggal jadwal.
func parseClock(date time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), true
}
