package hotel

import (
	"context"
	"testing"
	"time"
)

// stubStore is an in-memory Store for exercising the Service. Slices keep
// creation order; updates replace in place, mirroring the real stores.
type stubStore struct {
	rooms          []Room
	users          []User
	bookings       []Booking
	bookingCounter int64
	failWith       error
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{}
}

func newFailingStore(test *testing.T, err error) *stubStore {
	test.Helper()
	return &stubStore{failWith: err}
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	if store.failWith != nil {
		return store.failWith
	}
	return fn(ctx, store)
}

func (store *stubStore) GetRoom(_ context.Context, number RoomNumber) (Room, error) {
	for _, room := range store.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return Room{}, ErrRoomNotFound
}

func (store *stubStore) UpsertRoom(_ context.Context, room Room) error {
	for index := range store.rooms {
		if store.rooms[index].Number == room.Number {
			store.rooms[index] = room
			return nil
		}
	}
	store.rooms = append(store.rooms, room)
	return nil
}

func (store *stubStore) GetUser(_ context.Context, id UserID) (User, error) {
	for _, user := range store.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (store *stubStore) UpsertUser(_ context.Context, user User) error {
	for index := range store.users {
		if store.users[index].ID == user.ID {
			store.users[index] = user
			return nil
		}
	}
	store.users = append(store.users, user)
	return nil
}

func (store *stubStore) NextBookingID(_ context.Context) (BookingID, error) {
	store.bookingCounter++
	return BookingID(store.bookingCounter), nil
}

func (store *stubStore) InsertBooking(_ context.Context, booking Booking) error {
	store.bookings = append(store.bookings, booking)
	return nil
}

func (store *stubStore) BookingsForRoom(_ context.Context, number RoomNumber) ([]Booking, error) {
	matches := make([]Booking, 0)
	for _, booking := range store.bookings {
		if booking.RoomNumber == number {
			matches = append(matches, booking)
		}
	}
	return matches, nil
}

func (store *stubStore) ListRooms(_ context.Context) ([]Room, error) {
	rooms := make([]Room, 0, len(store.rooms))
	for index := len(store.rooms) - 1; index >= 0; index-- {
		rooms = append(rooms, store.rooms[index])
	}
	return rooms, nil
}

func (store *stubStore) ListUsers(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(store.users))
	for index := len(store.users) - 1; index >= 0; index-- {
		users = append(users, store.users[index])
	}
	return users, nil
}

func (store *stubStore) ListBookings(_ context.Context) ([]Booking, error) {
	bookings := make([]Booking, 0, len(store.bookings))
	for index := len(store.bookings) - 1; index >= 0; index-- {
		bookings = append(bookings, store.bookings[index])
	}
	return bookings, nil
}

func (store *stubStore) Reset(_ context.Context) error {
	store.rooms = nil
	store.users = nil
	store.bookings = nil
	store.bookingCounter = 0
	return nil
}

func (store *stubStore) mustBooking(test *testing.T, id BookingID) Booking {
	test.Helper()
	for _, booking := range store.bookings {
		if booking.ID == id {
			return booking
		}
	}
	test.Fatalf("booking %d not found", id)
	return Booking{}
}

func mustNewService(test *testing.T, store Store, options ...ServiceOption) *Service {
	test.Helper()
	clock := func() int64 { return 1_700_000_000 }
	service, err := NewService(store, clock, options...)
	if err != nil {
		test.Fatalf("service init failed: %v", err)
	}
	return service
}

func mustRoomNumber(test *testing.T, raw int) RoomNumber {
	test.Helper()
	number, err := NewRoomNumber(raw)
	if err != nil {
		test.Fatalf("room number %d: %v", raw, err)
	}
	return number
}

func mustUserID(test *testing.T, raw int) UserID {
	test.Helper()
	id, err := NewUserID(raw)
	if err != nil {
		test.Fatalf("user id %d: %v", raw, err)
	}
	return id
}

func mustPrice(test *testing.T, raw int64) PriceUnits {
	test.Helper()
	price, err := NewPriceUnits(raw)
	if err != nil {
		test.Fatalf("price %d: %v", raw, err)
	}
	return price
}

func mustBalance(test *testing.T, raw int64) BalanceUnits {
	test.Helper()
	balance, err := NewBalanceUnits(raw)
	if err != nil {
		test.Fatalf("balance %d: %v", raw, err)
	}
	return balance
}

func mustStay(test *testing.T, checkIn time.Time, checkOut time.Time) StayRange {
	test.Helper()
	stay, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		test.Fatalf("stay %s to %s: %v", checkIn, checkOut, err)
	}
	return stay
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
