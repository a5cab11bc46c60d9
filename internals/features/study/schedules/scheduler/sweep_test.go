package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	userModel "studyku_backend/internals/features/users/users/model"
)

func fakeFleet(n int) []fleetUser {
	fleet := make([]fleetUser, 0, n)
	for i := 0; i < n; i++ {
		fleet = append(fleet, fleetUser{
			User: userModel.UserModel{UserID: uuid.New()},
		})
	}
	return fleet
}

func TestRunSweep_AllSucceed(t *testing.T) {
	var mu sync.Mutex
	seen := map[uuid.UUID]bool{}

	ok, failed := runSweep(context.Background(), "test", fakeFleet(10), 3, func(ctx context.Context, fu fleetUser) error {
		mu.Lock()
		seen[fu.User.UserID] = true
		mu.Unlock()
		return nil
	})

	if ok != 10 || failed != 0 {
		t.Fatalf("ok=%d failed=%d, want 10/0", ok, failed)
	}
	if len(seen) != 10 {
		t.Errorf("runner dipanggil untuk %d user, want 10", len(seen))
	}
}

func TestRunSweep_FailureDoesNotStopOthers(t *testing.T) {
	fleet := fakeFleet(8)
	badUser := fleet[2].User.UserID

	var mu sync.Mutex
	ran := map[uuid.UUID]bool{}

	ok, failed := runSweep(context.Background(), "test", fleet, 2, func(ctx context.Context, fu fleetUser) error {
		mu.Lock()
		ran[fu.User.UserID] = true
		mu.Unlock()
		if fu.User.UserID == badUser {
			return errors.New("boom")
		}
		return nil
	})

	if ok != 7 || failed != 1 {
		t.Fatalf("ok=%d failed=%d, want 7/1", ok, failed)
	}
	// Semua user tetap diproses walau ada yang gagal
	if len(ran) != 8 {
		t.Errorf("runner dipanggil untuk %d user, want 8", len(ran))
	}
}

func TestRunSweep_RespectsConcurrencyLimit(t *testing.T) {
	var mu sync.Mutex
	current, peak := 0, 0

	runSweep(context.Background(), "test", fakeFleet(20), 4, func(ctx context.Context, fu fleetUser) error {
		mu.Lock()
		current++
		if current > peak {
			peak = current
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		current--
		mu.Unlock()
		return nil
	})

	if peak > 4 {
		t.Errorf("peak concurrency = %d, want <= 4", peak)
	}
}

func TestRunSweep_ZeroLimitFallsBackToDefault(t *testing.T) {
	ok, failed := runSweep(context.Background(), "test", fakeFleet(3), 0, func(ctx context.Context, fu fleetUser) error {
		return nil
	})
	if ok != 3 || failed != 0 {
		t.Fatalf("ok=%d failed=%d, want 3/0", ok, failed)
	}
}

func TestRunSweep_EmptyFleet(t *testing.T) {
	called := false
	ok, failed := runSweep(context.Background(), "test", nil, 4, func(ctx context.Context, fu fleetUser) error {
		called = true
		return nil
	})
	if ok != 0 || failed != 0 || called {
		t.Fatalf("fleet kosong: ok=%d failed=%d called=%v", ok, failed, called)
	}
}

func TestRunSweep_PerUserContext(t *testing.T) {
	// Tiap runner dapat context dengan deadline sendiri
	runSweep(context.Background(), "test", fakeFleet(2), 2, func(ctx context.Context, fu fleetUser) error {
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Error("context user tanpa deadline")
			return nil
		}
		if remaining := time.Until(deadline); remaining > perUserTimeout {
			t.Errorf("deadline terlalu jauh: %s", remaining)
		}
		return nil
	})
}

func TestPreviousWeekStart(t *testing.T) {
	// Rabu 2026-03-04 → minggu penuh sebelumnya mulai Minggu 2026-02-22
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	got := previousWeekStart(now)
	want := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("previousWeekStart = %v, want %v", got, want)
	}

	// Tepat hari Minggu: mundur satu minggu penuh
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := previousWeekStart(sunday); !got.Equal(time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("previousWeekStart(minggu) = %v", got)
	}
}
