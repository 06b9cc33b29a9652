package hotel

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RoomNumber identifies a room.
type RoomNumber int

// UserID identifies a guest account.
type UserID int

// BookingID identifies a booking. Assigned in strictly increasing order
// by the store and never reused until the store is reset.
type BookingID int64

// PriceUnits is a nightly rate in currency-agnostic integer units.
type PriceUnits int64

// BalanceUnits is a non-negative account balance in the same units.
type BalanceUnits int64

// NewRoomNumber validates a room number.
func NewRoomNumber(raw int) (RoomNumber, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}
	return RoomNumber(raw), nil
}

// Int returns the numeric room number.
func (number RoomNumber) Int() int {
	return int(number)
}

// NewUserID validates a user id.
func NewUserID(raw int) (UserID, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	return UserID(raw), nil
}

// Int returns the numeric user id.
func (id UserID) Int() int {
	return int(id)
}

// Int64 returns the numeric booking id.
func (id BookingID) Int64() int64 {
	return int64(id)
}

// NewPriceUnits validates a nightly price and ensures it is strictly positive.
func NewPriceUnits(raw int64) (PriceUnits, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: price per night must be positive", ErrInvalidInput)
	}
	return PriceUnits(raw), nil
}

// Int64 returns the raw price.
func (price PriceUnits) Int64() int64 {
	return int64(price)
}

// NewBalanceUnits validates a balance and ensures it is not negative.
func NewBalanceUnits(raw int64) (BalanceUnits, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: balance cannot be negative", ErrInvalidInput)
	}
	return BalanceUnits(raw), nil
}

// Int64 returns the raw balance.
func (balance BalanceUnits) Int64() int64 {
	return int64(balance)
}

// RoomType enumerates the room categories.
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeJunior   RoomType = "junior"
	RoomTypeMaster   RoomType = "master"
)

// ParseRoomType normalizes and validates a room type name.
func ParseRoomType(raw string) (RoomType, error) {
	switch RoomType(strings.ToLower(strings.TrimSpace(raw))) {
	case RoomTypeStandard:
		return RoomTypeStandard, nil
	case RoomTypeJunior:
		return RoomTypeJunior, nil
	case RoomTypeMaster:
		return RoomTypeMaster, nil
	default:
		return "", fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, raw)
	}
}

// String returns the canonical room type name.
func (roomType RoomType) String() string {
	return string(roomType)
}

// DisplayName returns the human-readable room type label.
func (roomType RoomType) DisplayName() string {
	switch roomType {
	case RoomTypeStandard:
		return "Standard Suite"
	case RoomTypeJunior:
		return "Junior Suite"
	case RoomTypeMaster:
		return "Master Suite"
	default:
		return string(roomType)
	}
}

func (roomType RoomType) valid() bool {
	switch roomType {
	case RoomTypeStandard, RoomTypeJunior, RoomTypeMaster:
		return true
	}
	return false
}

// StayRange is a half-open calendar-date interval [check-in, check-out).
// Only the year, month, and day of the supplied times are significant.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange validates a stay. Check-out must be strictly after check-in;
// a zero-night stay is rejected.
func NewStayRange(checkIn time.Time, checkOut time.Time) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayRange{}, fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}
	in := midnightUTC(checkIn)
	out := midnightUTC(checkOut)
	if !out.After(in) {
		return StayRange{}, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

// CheckIn returns the first night of the stay.
func (stay StayRange) CheckIn() time.Time {
	return stay.checkIn
}

// CheckOut returns the departure date (not an occupied night).
func (stay StayRange) CheckOut() time.Time {
	return stay.checkOut
}

// Nights returns the number of whole nights in the stay.
func (stay StayRange) Nights() int {
	return int(stay.checkOut.Sub(stay.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open stays share at least one night.
// A checkout on day D and a check-in on day D do not overlap.
func (stay StayRange) Overlaps(other StayRange) bool {
	return stay.checkIn.Before(other.checkOut) && other.checkIn.Before(stay.checkOut)
}

// IsZero reports whether the stay was never constructed.
func (stay StayRange) IsZero() bool {
	return stay.checkIn.IsZero() || stay.checkOut.IsZero()
}

func midnightUTC(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Room is the live, mutable configuration for one room.
type Room struct {
	Number         RoomNumber
	Type           RoomType
	PricePerNight  PriceUnits
	CreatedUnixUTC int64
	UpdatedUnixUTC int64
}

// User is the live, mutable guest account.
type User struct {
	ID             UserID
	Balance        BalanceUnits
	CreatedUnixUTC int64
	UpdatedUnixUTC int64
}

// RoomSnapshot freezes a room's configuration at booking time.
type RoomSnapshot struct {
	Type          RoomType
	PricePerNight PriceUnits
}

// UserSnapshot freezes a guest's balance immediately before deduction.
type UserSnapshot struct {
	Balance BalanceUnits
}

// Booking is one immutable line in the reservation ledger. It carries its
// own copies of the room and user state so later SetRoom/SetUser calls never
// change what the booking reports.
type Booking struct {
	ID             BookingID
	UserID         UserID
	RoomNumber     RoomNumber
	Stay           StayRange
	Nights         int
	TotalCost      int64
	Room           RoomSnapshot
	UserBefore     UserSnapshot
	CreatedUnixUTC int64
}

// Store is the persistence contract used by Service. Lookups return
// ErrRoomNotFound / ErrUserNotFound (possibly wrapped) for missing keys.
// List operations order by creation time descending. Implementations must
// serialize WithTx bodies against each other and against mutating calls.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	GetRoom(ctx context.Context, number RoomNumber) (Room, error)
	UpsertRoom(ctx context.Context, room Room) error
	GetUser(ctx context.Context, id UserID) (User, error)
	UpsertUser(ctx context.Context, user User) error
	NextBookingID(ctx context.Context) (BookingID, error)
	InsertBooking(ctx context.Context, booking Booking) error
	BookingsForRoom(ctx context.Context, number RoomNumber) ([]Booking, error)
	ListRooms(ctx context.Context) ([]Room, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	Reset(ctx context.Context) error
}
