package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Search(ctx context.Context, name string) ([]model.User, error) {
	args := m.Called(ctx, name)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByStatus(ctx context.Context, active bool) ([]model.User, error) {
	args := m.Called(ctx, active)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*model.User)
	return created, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, id int64, patch model.UserPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type recordingNotifier struct {
	bookings []model.Booking
	err      error
}

func (n *recordingNotifier) NotifyBookingCreated(_ context.Context, booking *model.Booking, _ *model.Event) error {
	n.bookings = append(n.bookings, *booking)
	return n.err
}

func requireHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepositories(false).Users)

	dana, err := svc.CreateUser(ctx, &model.CreateUserRequest{Name: "Dana", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dana.ID)

	got, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dana", got.Name)

	_, err = svc.GetUser(ctx, 2)
	requireHTTPError(t, err, http.StatusNotFound, "USER_NOT_FOUND")

	name := "Danielle"
	require.NoError(t, svc.UpdateUser(ctx, 1, model.UserPatch{Name: &name}))
	got, _ = svc.GetUser(ctx, 1)
	assert.Equal(t, model.User{ID: 1, Name: "Danielle", IsActive: true}, *got)

	requireHTTPError(t, svc.UpdateUser(ctx, 9, model.UserPatch{Name: &name}), http.StatusNotFound, "USER_NOT_FOUND")

	require.NoError(t, svc.DeleteUser(ctx, 1))
	requireHTTPError(t, svc.DeleteUser(ctx, 1), http.StatusNotFound, "USER_NOT_FOUND")

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_StoreFailurePassesThrough(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	repo := new(mockUserRepository)
	repo.On("GetByID", ctx, int64(1)).Return(nil, storeErr)
	repo.On("Delete", ctx, int64(1)).Return(false, storeErr)
	repo.On("Search", ctx, "ian").Return(nil, storeErr)

	svc := NewUserService(repo)

	_, err := svc.GetUser(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
	assert.ErrorIs(t, svc.DeleteUser(ctx, 1), storeErr)
	_, err = svc.SearchUsers(ctx, "ian")
	assert.ErrorIs(t, err, storeErr)

	repo.AssertExpectations(t)
}

func TestEventService_GetEventIncludesBookings(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemoryRepositories(false)
	events := NewEventService(repos.Events, repos.Bookings)
	bookings := NewBookingService(repos.Bookings, repos.Events, nil)

	meetup, err := events.CreateEvent(ctx, &model.CreateEventRequest{Title: "Go Meetup", Capacity: 50})
	require.NoError(t, err)

	_, err = bookings.CreateBooking(ctx, &model.CreateBookingRequest{UserName: "Dana", EventID: meetup.ID})
	require.NoError(t, err)

	got, err := events.GetEvent(ctx, meetup.ID)
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "Dana", got.Bookings[0].UserName)

	list, err := events.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Bookings)

	_, err = events.GetEvent(ctx, 99)
	requireHTTPError(t, err, http.StatusNotFound, "EVENT_NOT_FOUND")
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(notifier BookingNotifier) (*BookingService, *model.Event) {
		repos := repository.NewMemoryRepositories(false)
		event, err := repos.Events.Create(ctx, &model.Event{Title: "Go Meetup"})
		require.NoError(t, err)
		return NewBookingService(repos.Bookings, repos.Events, notifier), event
	}

	t.Run("unknown event is rejected", func(t *testing.T) {
		svc, _ := setup(nil)

		_, err := svc.CreateBooking(ctx, &model.CreateBookingRequest{UserName: "Dana", EventID: 42})
		requireHTTPError(t, err, http.StatusBadRequest, "EVENT_NOT_FOUND")

		all, err := svc.GetBookings(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("booking with email is announced", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc, event := setup(notifier)

		booking, err := svc.CreateBooking(ctx, &model.CreateBookingRequest{
			UserName: "Dana",
			EventID:  event.ID,
			Email:    "dana@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
		require.Len(t, notifier.bookings, 1)
		assert.Equal(t, "dana@example.com", notifier.bookings[0].Email)
	})

	t.Run("booking without email is not announced", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc, event := setup(notifier)

		_, err := svc.CreateBooking(ctx, &model.CreateBookingRequest{UserName: "Dana", EventID: event.ID})
		require.NoError(t, err)
		assert.Empty(t, notifier.bookings)
	})

	t.Run("notifier failure does not fail the booking", func(t *testing.T) {
		notifier := &recordingNotifier{err: errors.New("redis down")}
		svc, event := setup(notifier)

		booking, err := svc.CreateBooking(ctx, &model.CreateBookingRequest{
			UserName: "Dana",
			EventID:  event.ID,
			Email:    "dana@example.com",
		})
		require.NoError(t, err)
		assert.NotZero(t, booking.ID)

		all, err := svc.GetBookings(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.NotNil(t, all[0].Event)
		assert.Equal(t, "Go Meetup", all[0].Event.Title)
	})
}
