package engine

import (
	"testing"
	"time"

	prefModel "studyku_backend/internals/features/users/preferences/model"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Senin

func window(start, end string, available bool) prefModel.AvailabilityWindow {
	return prefModel.AvailabilityWindow{
		Day:         "monday",
		StartTime:   start,
		EndTime:     end,
		IsAvailable: available,
	}
}

func TestGenerateTimeSlots_ShortWindow(t *testing.T) {
	// 09:00-12:00 dengan jeda 15: slot kedua (10:45-12:15) lewat batas jendela,
	// jadi hanya satu slot yang muat.
	slots := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("09:00", "12:00", true),
	}, 15)

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if got := slots[0].StartTime.Format("15:04"); got != "09:00" {
		t.Errorf("start = %s, want 09:00", got)
	}
	if got := slots[0].EndTime.Format("15:04"); got != "10:30" {
		t.Errorf("end = %s, want 10:30", got)
	}
	if slots[0].Duration != SlotDurationMinutes {
		t.Errorf("duration = %d, want %d", slots[0].Duration, SlotDurationMinutes)
	}
}

func TestGenerateTimeSlots_LongWindow(t *testing.T) {
	// 08:00-18:00, jeda 15: slot mulai 08:00, 09:45, 11:30, 13:15, 15:00, 16:45(→18:15 kelewat)
	slots := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("08:00", "18:00", true),
	}, 15)

	wantStarts := []string{"08:00", "09:45", "11:30", "13:15", "15:00"}
	if len(slots) != len(wantStarts) {
		t.Fatalf("len(slots) = %d, want %d", len(slots), len(wantStarts))
	}
	for i, want := range wantStarts {
		if got := slots[i].StartTime.Format("15:04"); got != want {
			t.Errorf("slot[%d].start = %s, want %s", i, got, want)
		}
		if slots[i].Duration != 90 {
			t.Errorf("slot[%d].duration = %d, want 90", i, slots[i].Duration)
		}
	}

	// Jarak antar slot minimal durasi jeda
	for i := 1; i < len(slots); i++ {
		gap := slots[i].StartTime.Sub(slots[i-1].EndTime)
		if gap < 15*time.Minute {
			t.Errorf("gap slot %d = %s, want >= 15m", i, gap)
		}
	}
}

func TestGenerateTimeSlots_SkipsUnavailableAndMalformed(t *testing.T) {
	slots := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("09:00", "12:00", false),   // tidak available
		window("", "12:00", true),         // jam kosong
		window("25:99", "12:00", true),    // jam rusak
		window("14:00", "13:00", true),    // mundur
		window("19:00", "21:00", true),    // valid → 1 slot
	}, 15)

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if got := slots[0].StartTime.Format("15:04"); got != "19:00" {
		t.Errorf("start = %s, want 19:00", got)
	}
}

func TestGenerateTimeSlots_DefaultBreak(t *testing.T) {
	// breakDuration 0 jatuh ke default 15
	withZero := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("08:00", "18:00", true),
	}, 0)
	withDefault := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("08:00", "18:00", true),
	}, DefaultBreakDuration)

	if len(withZero) != len(withDefault) {
		t.Fatalf("len = %d, want %d", len(withZero), len(withDefault))
	}
	for i := range withZero {
		if !withZero[i].StartTime.Equal(withDefault[i].StartTime) {
			t.Errorf("slot[%d] start mismatch: %v vs %v", i, withZero[i].StartTime, withDefault[i].StartTime)
		}
	}
}

func TestGenerateTimeSlots_EmptyWindows(t *testing.T) {
	if slots := GenerateTimeSlots(testDate, nil, 15); len(slots) != 0 {
		t.Fatalf("len(slots) = %d, want 0", len(slots))
	}
}

func TestGenerateTimeSlots_AnchoredToDate(t *testing.T) {
	slots := GenerateTimeSlots(testDate, []prefModel.AvailabilityWindow{
		window("09:00", "12:00", true),
	}, 15)
	if len(slots) == 0 {
		t.Fatal("expected at least one slot")
	}
	y, m, d := slots[0].StartTime.Date()
	if y != 2026 || m != time.March || d != 2 {
		t.Errorf("slot date = %04d-%02d-%02d, want 2026-03-02", y, m, d)
	}
}
