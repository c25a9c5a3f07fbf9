package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/waskull/hotelia/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationFixture struct {
	repo     *mocks.MockReservationRepo
	rooms    *mocks.MockRoomOracle
	notifier *mocks.MockReservationNotifier
	clock    *mocks.MockClock
	svc      *ReservationService
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		repo:     mocks.NewMockReservationRepo(t),
		rooms:    mocks.NewMockRoomOracle(t),
		notifier: mocks.NewMockReservationNotifier(t),
		clock:    mocks.NewMockClock(t),
	}
	f.svc = NewReservationService(f.repo, f.rooms, f.notifier, f.clock, newTestLogger(t))
	return f
}

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func stay(startDay, endDay int) (time.Time, time.Time) {
	start := time.Date(2026, time.March, startDay, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, endDay, 11, 0, 0, 0, time.UTC)
	return start, end
}

func guest(id int64) domain.Identity {
	return domain.Identity{ID: id, Email: "guest@example.com", Active: true}
}

func staff() domain.Identity {
	return domain.Identity{ID: 1, Email: "staff@example.com", Roles: []string{domain.RoleStaff}, Active: true}
}

func availableRoom(id int64, rateCents int64) *domain.Room {
	return &domain.Room{ID: id, Status: domain.RoomStatusAvailable, NightlyRateCents: rateCents}
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 13)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	res, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, int64(30000), res.TotalPriceCents) // 3 nights at 100.00
	assert.Equal(t, "guest@example.com", res.GuestEmail)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_ForAnotherUserRequiresPrivilege(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	other := int64(99)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		UserID:  &other,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Create_StaffBooksForGuest(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	owner := int64(99)

	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	res, err := f.svc.Create(context.Background(), staff(), domain.CreateReservationInput{
		RoomID:     5,
		UserID:     &owner,
		GuestEmail: "walkin@example.com",
		StartAt:    start,
		EndAt:      end,
	})

	require.NoError(t, err)
	assert.Equal(t, owner, res.UserID)
	assert.Equal(t, "walkin@example.com", res.GuestEmail)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_PastStartRejected(t *testing.T) {
	f := newReservationFixture(t)

	f.clock.EXPECT().Now().Return(testNow)

	start := testNow.Add(-48 * time.Hour)
	end := testNow.Add(24 * time.Hour)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_InvertedSpanRejected(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: end,
		EndAt:   start,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_RoomNotFound(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(404)).Return(nil, domain.ErrRoomNotFound)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  404,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestReservationService_Create_RoomNotBookable(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(
		&domain.Room{ID: 5, Status: domain.RoomStatusMaintenance, NightlyRateCents: 10000}, nil)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestReservationService_Create_HotelsDown(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(nil, domain.ErrHotelsUnavailable)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHotelsUnavailable)
}

func TestReservationService_Create_RangeConflict(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRangeConflict)

	_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRangeConflict)
}

// Two concurrent creates for the same room and span: the repository admits
// exactly one insert, so exactly one caller wins.
func TestReservationService_Create_ConcurrentSameSpan(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return().Maybe()

	var mu sync.Mutex
	inserted := false
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, r *domain.Reservation) error {
			mu.Lock()
			defer mu.Unlock()
			if inserted {
				return domain.ErrRangeConflict
			}
			inserted = true
			return nil
		})

	input := domain.CreateReservationInput{RoomID: 5, StartAt: start, EndAt: end}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Create(context.Background(), guest(int64(i+1)), input)
		}(i)
	}
	wg.Wait()

	winners, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, domain.ErrRangeConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, conflicts)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Update_Success(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending,
		StartAt: start, EndAt: end, TotalPriceCents: 20000,
	}

	newStart, newEnd := stay(15, 18)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(8)).Return(availableRoom(8, 12000), nil)
	f.repo.EXPECT().Reschedule(mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.Update(context.Background(), guest(7), "r1", domain.UpdateReservationInput{
		RoomID:  8,
		StartAt: newStart,
		EndAt:   newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), res.RoomID)
	assert.Equal(t, int64(36000), res.TotalPriceCents) // repriced: 3 nights at 120.00
}

func TestReservationService_Update_NoopWhenUnchanged(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending,
		StartAt: start, EndAt: end, TotalPriceCents: 20000,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	res, err := f.svc.Update(context.Background(), guest(7), "r1", domain.UpdateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20000), res.TotalPriceCents)
}

func TestReservationService_Update_OnlyPending(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusConfirmed,
		StartAt: start, EndAt: end,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	newStart, newEnd := stay(15, 18)
	_, err := f.svc.Update(context.Background(), guest(7), "r1", domain.UpdateReservationInput{
		RoomID:  5,
		StartAt: newStart,
		EndAt:   newEnd,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEditable)
}

func TestReservationService_Update_OtherGuestForbidden(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending,
		StartAt: start, EndAt: end,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, err := f.svc.Update(context.Background(), guest(99), "r1", domain.UpdateReservationInput{
		RoomID:  5,
		StartAt: start,
		EndAt:   end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Extend_Success(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusOccupied,
		StartAt: start, EndAt: end, TotalPriceCents: 20000,
	}

	newEnd := time.Date(2026, time.March, 14, 11, 0, 0, 0, time.UTC)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 15000), nil)
	f.repo.EXPECT().ExtendSpan(mock.Anything, "r1", newEnd, int64(60000)).Return(nil)

	res, err := f.svc.Extend(context.Background(), guest(7), "r1", newEnd)

	require.NoError(t, err)
	assert.Equal(t, newEnd, res.EndAt)
	// Whole widened span repriced at the current rate: 4 nights at 150.00.
	assert.Equal(t, int64(60000), res.TotalPriceCents)
}

func TestReservationService_Extend_MustGrow(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusOccupied,
		StartAt: start, EndAt: end,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, err := f.svc.Extend(context.Background(), guest(7), "r1", end.Add(-time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Extend_TerminalRejected(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusCompleted,
		StartAt: start, EndAt: end,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, err := f.svc.Extend(context.Background(), guest(7), "r1", end.Add(24*time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotExtendable)
}

func TestReservationService_Extend_RangeConflict(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	existing := &domain.Reservation{
		ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusConfirmed,
		StartAt: start, EndAt: end,
	}

	newEnd := end.Add(48 * time.Hour)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.repo.EXPECT().ExtendSpan(mock.Anything, "r1", newEnd, mock.Anything).Return(domain.ErrRangeConflict)

	_, err := f.svc.Extend(context.Background(), guest(7), "r1", newEnd)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRangeConflict)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return()

	err := f.svc.Cancel(context.Background(), guest(7), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotPending(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusConfirmed}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Cancel(mock.Anything, "r1").Return(domain.ErrNotCancellable)

	err := f.svc.Cancel(context.Background(), guest(7), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotCancellable)
}

func TestReservationService_Cancel_OtherGuestForbidden(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	err := f.svc.Cancel(context.Background(), guest(99), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Advance_GuestForbidden(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.Advance(context.Background(), guest(7), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Advance_OneStep(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Advance(mock.Anything, "r1", domain.StatusPending, domain.StatusConfirmed).Return(nil)

	res, err := f.svc.Advance(context.Background(), staff(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
}

func TestReservationService_Advance_ToOccupiedNotifies(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPreparing}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Advance(mock.Anything, "r1", domain.StatusPreparing, domain.StatusOccupied).Return(nil)
	f.notifier.EXPECT().NotifyRoomReady(mock.Anything, mock.Anything).Return()

	res, err := f.svc.Advance(context.Background(), staff(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOccupied, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Advance_TerminalRejected(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusCancelled}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, err := f.svc.Advance(context.Background(), staff(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Advance_LostRace(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7, Status: domain.StatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Advance(mock.Anything, "r1", domain.StatusPending, domain.StatusConfirmed).
		Return(domain.ErrInvalidTransition)

	_, err := f.svc.Advance(context.Background(), staff(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Get_OwnerAndPrivileged(t *testing.T) {
	f := newReservationFixture(t)

	existing := &domain.Reservation{ID: "r1", RoomID: 5, UserID: 7}
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	res, err := f.svc.Get(context.Background(), guest(7), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	_, err = f.svc.Get(context.Background(), guest(99), "r1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	_, err = f.svc.Get(context.Background(), staff(), "r1")
	assert.NoError(t, err)
}

func TestReservationService_List_OwnReservations(t *testing.T) {
	f := newReservationFixture(t)

	f.repo.EXPECT().ListByUser(mock.Anything, int64(7)).Return([]*domain.Reservation{{ID: "r1"}}, nil)

	res, err := f.svc.List(context.Background(), guest(7), nil)

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestReservationService_List_RoomFilterPrivilegedOnly(t *testing.T) {
	f := newReservationFixture(t)

	roomID := int64(5)
	_, err := f.svc.List(context.Background(), guest(7), &roomID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.repo.EXPECT().ListByRoom(mock.Anything, roomID).Return([]*domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)
	res, err := f.svc.List(context.Background(), staff(), &roomID)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestReservationService_CheckAvailability(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)

	f.repo.EXPECT().HasOverlap(mock.Anything, int64(5), mock.Anything, "").Return(false, nil).Once()
	available, err := f.svc.CheckAvailability(context.Background(), 5, start, end)
	require.NoError(t, err)
	assert.True(t, available)

	f.repo.EXPECT().HasOverlap(mock.Anything, int64(5), mock.Anything, "").Return(true, nil).Once()
	available, err = f.svc.CheckAvailability(context.Background(), 5, start, end)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestReservationService_CheckAvailability_BadSpan(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	_, err := f.svc.CheckAvailability(context.Background(), 5, end, start)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CancelNoShows(t *testing.T) {
	f := newReservationFixture(t)

	cancelled := []*domain.Reservation{
		{ID: "r1", RoomID: 5, UserID: 7, GuestEmail: "a@example.com"},
		{ID: "r2", RoomID: 6, UserID: 8, GuestEmail: "b@example.com"},
	}

	f.clock.EXPECT().Now().Return(testNow)
	f.repo.EXPECT().CancelNoShows(mock.Anything, testNow.Add(-6*time.Hour)).Return(cancelled, nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return().Times(2)

	result, err := f.svc.CancelNoShows(context.Background(), 6*time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_CancelNoShows_NoneExpired(t *testing.T) {
	f := newReservationFixture(t)

	f.clock.EXPECT().Now().Return(testNow)
	f.repo.EXPECT().CancelNoShows(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := f.svc.CancelNoShows(context.Background(), 6*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReservationService_CancelNoShows_RepoError(t *testing.T) {
	f := newReservationFixture(t)

	f.clock.EXPECT().Now().Return(testNow)
	f.repo.EXPECT().CancelNoShows(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := f.svc.CancelNoShows(context.Background(), 6*time.Hour)

	require.Error(t, err)
}

// A notifier that blocks or fails must not affect the reservation itself;
// delivery happens on a detached goroutine.
func TestReservationService_Create_NotifierDoesNotBlock(t *testing.T) {
	f := newReservationFixture(t)

	start, end := stay(10, 12)
	f.clock.EXPECT().Now().Return(testNow)
	f.rooms.EXPECT().GetRoom(mock.Anything, int64(5)).Return(availableRoom(5, 10000), nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	released := make(chan struct{})
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Run(
		func(ctx context.Context, r *domain.Reservation) {
			<-released
		}).Return()

	done := make(chan struct{})
	go func() {
		_, err := f.svc.Create(context.Background(), guest(7), domain.CreateReservationInput{
			RoomID:  5,
			StartAt: start,
			EndAt:   end,
		})
		assert.NoError(t, err)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("create blocked on notifier")
	}
	close(released)
	time.Sleep(50 * time.Millisecond)
}
