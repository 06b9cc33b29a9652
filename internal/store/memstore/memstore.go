// Package memstore implements hotel.Store with in-process slices guarded by
// one coarse mutex. WithTx holds the lock for its whole body, so a booking's
// availability check, balance deduction, and ledger append commit as a unit.
package memstore

import (
	"context"
	"sync"

	"github.com/skypay/hotel/pkg/hotel"
)

const (
	errorOperationStore = "store"
	errorSubjectRoom    = "room"
	errorSubjectUser    = "user"
	errorCodeGet        = "get"
)

// Store is the root handle. All public methods serialize on one mutex.
type Store struct {
	mutex sync.Mutex
	data  tables
}

// New returns an empty Store. The booking-id counter starts at zero and is
// instance-scoped; Reset clears it together with the tables.
func New() *Store {
	return &Store{}
}

// WithTx runs fn under the store lock. The transactional view skips
// re-locking, so fn may call any Store method on it.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return fn(ctx, &txView{data: &store.data})
}

func (store *Store) GetRoom(ctx context.Context, number hotel.RoomNumber) (hotel.Room, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.getRoom(number)
}

func (store *Store) UpsertRoom(ctx context.Context, room hotel.Room) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.upsertRoom(room)
}

func (store *Store) GetUser(ctx context.Context, id hotel.UserID) (hotel.User, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.getUser(id)
}

func (store *Store) UpsertUser(ctx context.Context, user hotel.User) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.upsertUser(user)
}

func (store *Store) NextBookingID(ctx context.Context) (hotel.BookingID, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.nextBookingID()
}

func (store *Store) InsertBooking(ctx context.Context, booking hotel.Booking) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.insertBooking(booking)
}

func (store *Store) BookingsForRoom(ctx context.Context, number hotel.RoomNumber) ([]hotel.Booking, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.bookingsForRoom(number)
}

func (store *Store) ListRooms(ctx context.Context) ([]hotel.Room, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.listRooms()
}

func (store *Store) ListUsers(ctx context.Context) ([]hotel.User, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.listUsers()
}

func (store *Store) ListBookings(ctx context.Context) ([]hotel.Booking, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.listBookings()
}

func (store *Store) Reset(ctx context.Context) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.data.reset()
}

// txView is the already-locked view handed to WithTx callbacks.
type txView struct {
	data *tables
}

// WithTx on a transactional view runs fn directly: the root lock is held.
func (view *txView) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	return fn(ctx, view)
}

func (view *txView) GetRoom(_ context.Context, number hotel.RoomNumber) (hotel.Room, error) {
	return view.data.getRoom(number)
}

func (view *txView) UpsertRoom(_ context.Context, room hotel.Room) error {
	return view.data.upsertRoom(room)
}

func (view *txView) GetUser(_ context.Context, id hotel.UserID) (hotel.User, error) {
	return view.data.getUser(id)
}

func (view *txView) UpsertUser(_ context.Context, user hotel.User) error {
	return view.data.upsertUser(user)
}

func (view *txView) NextBookingID(_ context.Context) (hotel.BookingID, error) {
	return view.data.nextBookingID()
}

func (view *txView) InsertBooking(_ context.Context, booking hotel.Booking) error {
	return view.data.insertBooking(booking)
}

func (view *txView) BookingsForRoom(_ context.Context, number hotel.RoomNumber) ([]hotel.Booking, error) {
	return view.data.bookingsForRoom(number)
}

func (view *txView) ListRooms(_ context.Context) ([]hotel.Room, error) {
	return view.data.listRooms()
}

func (view *txView) ListUsers(_ context.Context) ([]hotel.User, error) {
	return view.data.listUsers()
}

func (view *txView) ListBookings(_ context.Context) ([]hotel.Booking, error) {
	return view.data.listBookings()
}

func (view *txView) Reset(_ context.Context) error {
	return view.data.reset()
}

// tables holds the actual rows. Slices keep insertion order, which is
// creation order: updates replace elements in place.
type tables struct {
	rooms          []hotel.Room
	users          []hotel.User
	bookings       []hotel.Booking
	bookingCounter int64
}

func (data *tables) getRoom(number hotel.RoomNumber) (hotel.Room, error) {
	for _, room := range data.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, hotel.ErrRoomNotFound)
}

func (data *tables) upsertRoom(room hotel.Room) error {
	for index := range data.rooms {
		if data.rooms[index].Number == room.Number {
			data.rooms[index] = room
			return nil
		}
	}
	data.rooms = append(data.rooms, room)
	return nil
}

func (data *tables) getUser(id hotel.UserID) (hotel.User, error) {
	for _, user := range data.users {
		if user.ID == id {
			return user, nil
		}
	}
	return hotel.User{}, wrapStoreError(errorSubjectUser, errorCodeGet, hotel.ErrUserNotFound)
}

func (data *tables) upsertUser(user hotel.User) error {
	for index := range data.users {
		if data.users[index].ID == user.ID {
			data.users[index] = user
			return nil
		}
	}
	data.users = append(data.users, user)
	return nil
}

func (data *tables) nextBookingID() (hotel.BookingID, error) {
	data.bookingCounter++
	return hotel.BookingID(data.bookingCounter), nil
}

func (data *tables) insertBooking(booking hotel.Booking) error {
	data.bookings = append(data.bookings, booking)
	return nil
}

func (data *tables) bookingsForRoom(number hotel.RoomNumber) ([]hotel.Booking, error) {
	matches := make([]hotel.Booking, 0)
	for _, booking := range data.bookings {
		if booking.RoomNumber == number {
			matches = append(matches, booking)
		}
	}
	return matches, nil
}

func (data *tables) listRooms() ([]hotel.Room, error) {
	rooms := make([]hotel.Room, 0, len(data.rooms))
	for index := len(data.rooms) - 1; index >= 0; index-- {
		rooms = append(rooms, data.rooms[index])
	}
	return rooms, nil
}

func (data *tables) listUsers() ([]hotel.User, error) {
	users := make([]hotel.User, 0, len(data.users))
	for index := len(data.users) - 1; index >= 0; index-- {
		users = append(users, data.users[index])
	}
	return users, nil
}

func (data *tables) listBookings() ([]hotel.Booking, error) {
	bookings := make([]hotel.Booking, 0, len(data.bookings))
	for index := len(data.bookings) - 1; index >= 0; index-- {
		bookings = append(bookings, data.bookings[index])
	}
	return bookings, nil
}

func (data *tables) reset() error {
	data.rooms = nil
	data.users = nil
	data.bookings = nil
	data.bookingCounter = 0
	return nil
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}
