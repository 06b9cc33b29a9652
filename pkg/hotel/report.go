package hotel

import (
	"context"
	"fmt"
)

const (
	dateLayout = "2006-01-02"

	noRoomsPlaceholder    = "No rooms available."
	noUsersPlaceholder    = "No users available."
	noBookingsPlaceholder = "No bookings available."
)

// RoomReport renders every room as a display row, most recent first.
// An empty registry yields a single placeholder row.
func (service *Service) RoomReport(requestContext context.Context) ([]string, error) {
	rooms, err := service.store.ListRooms(requestContext)
	if err != nil {
		return nil, err
	}
	return FormatRooms(rooms), nil
}

// UserReport renders every user as a display row, most recent first.
func (service *Service) UserReport(requestContext context.Context) ([]string, error) {
	users, err := service.store.ListUsers(requestContext)
	if err != nil {
		return nil, err
	}
	return FormatUsers(users), nil
}

// BookingReport renders the ledger as display rows, most recent first.
// Rows show only the frozen snapshots, never the live room or user state.
func (service *Service) BookingReport(requestContext context.Context) ([]string, error) {
	bookings, err := service.store.ListBookings(requestContext)
	if err != nil {
		return nil, err
	}
	return FormatBookings(bookings), nil
}

// FormatRooms renders rooms in the order given.
func FormatRooms(rooms []Room) []string {
	if len(rooms) == 0 {
		return []string{noRoomsPlaceholder}
	}
	rows := make([]string, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, fmt.Sprintf(
			"Room Number: %d, Type: %s, Price/Night: %d",
			room.Number.Int(), room.Type.DisplayName(), room.PricePerNight.Int64(),
		))
	}
	return rows
}

// FormatUsers renders users in the order given.
func FormatUsers(users []User) []string {
	if len(users) == 0 {
		return []string{noUsersPlaceholder}
	}
	rows := make([]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, fmt.Sprintf(
			"User ID: %d, Balance: %d",
			user.ID.Int(), user.Balance.Int64(),
		))
	}
	return rows
}

// FormatBookings renders bookings in the order given.
func FormatBookings(bookings []Booking) []string {
	if len(bookings) == 0 {
		return []string{noBookingsPlaceholder}
	}
	rows := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, fmt.Sprintf(
			"Booking ID: %d, User ID: %d, Room Number: %d, Check-in: %s, Check-out: %s, Nights: %d, Total Price: %d, Room Type at Booking: %s, Price/Night at Booking: %d, User Balance at Booking: %d",
			booking.ID.Int64(),
			booking.UserID.Int(),
			booking.RoomNumber.Int(),
			booking.Stay.CheckIn().Format(dateLayout),
			booking.Stay.CheckOut().Format(dateLayout),
			booking.Nights,
			booking.TotalCost,
			booking.Room.Type.DisplayName(),
			booking.Room.PricePerNight.Int64(),
			booking.UserBefore.Balance.Int64(),
		))
	}
	return rows
}
