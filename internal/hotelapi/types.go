package hotelapi

import (
	"github.com/gin-gonic/gin"
	"github.com/skypay/hotel/pkg/hotel"
)

type setRoomRequest struct {
	RoomNumber    int    `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
}

type setUserRequest struct {
	UserID  int   `json:"userId"`
	Balance int64 `json:"balance"`
}

type bookRoomRequest struct {
	UserID     int    `json:"userId"`
	RoomNumber int    `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

type roomResponse struct {
	RoomNumber    int    `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	DisplayName   string `json:"displayName"`
	PricePerNight int64  `json:"pricePerNight"`
}

type userResponse struct {
	UserID  int   `json:"userId"`
	Balance int64 `json:"balance"`
}

type bookingResponse struct {
	BookingID              int64  `json:"bookingId"`
	UserID                 int    `json:"userId"`
	RoomNumber             int    `json:"roomNumber"`
	CheckIn                string `json:"checkIn"`
	CheckOut               string `json:"checkOut"`
	Nights                 int    `json:"nights"`
	TotalCost              int64  `json:"totalCost"`
	RoomTypeAtBooking      string `json:"roomTypeAtBooking"`
	PricePerNightAtBooking int64  `json:"pricePerNightAtBooking"`
	UserBalanceAtBooking   int64  `json:"userBalanceAtBooking"`
}

func roomView(room hotel.Room) roomResponse {
	return roomResponse{
		RoomNumber:    room.Number.Int(),
		RoomType:      room.Type.String(),
		DisplayName:   room.Type.DisplayName(),
		PricePerNight: room.PricePerNight.Int64(),
	}
}

func userView(user hotel.User) userResponse {
	return userResponse{
		UserID:  user.ID.Int(),
		Balance: user.Balance.Int64(),
	}
}

func bookingView(booking hotel.Booking) bookingResponse {
	return bookingResponse{
		BookingID:              booking.ID.Int64(),
		UserID:                 booking.UserID.Int(),
		RoomNumber:             booking.RoomNumber.Int(),
		CheckIn:                booking.Stay.CheckIn().Format(dateLayout),
		CheckOut:               booking.Stay.CheckOut().Format(dateLayout),
		Nights:                 booking.Nights,
		TotalCost:              booking.TotalCost,
		RoomTypeAtBooking:      booking.Room.Type.String(),
		PricePerNightAtBooking: booking.Room.PricePerNight.Int64(),
		UserBalanceAtBooking:   booking.UserBefore.Balance.Int64(),
	}
}

func errorResponse(code string, message string) gin.H {
	return gin.H{"error": code, "message": message}
}
