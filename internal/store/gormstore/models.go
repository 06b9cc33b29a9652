package gormstore

import (
	"time"

	"gorm.io/datatypes"
)

// Room represents the rooms table.
type Room struct {
	RoomNumber    int64     `gorm:"primaryKey;autoIncrement:false"`
	RoomType      string    `gorm:"not null"`
	PricePerNight int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (Room) TableName() string { return "rooms" }

// User represents the users table.
type User struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	Balance   int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (User) TableName() string { return "users" }

// Booking mirrors the bookings table. Identity comes from the engine's
// monotonic counter, not a database sequence, and the frozen room/user
// snapshot travels as one JSON document.
type Booking struct {
	BookingID  int64          `gorm:"primaryKey;autoIncrement:false"`
	UserID     int64          `gorm:"not null;index:idx_bookings_user"`
	RoomNumber int64          `gorm:"not null;index:idx_bookings_room"`
	CheckIn    time.Time      `gorm:"not null"`
	CheckOut   time.Time      `gorm:"not null"`
	Nights     int64          `gorm:"not null"`
	TotalCost  int64          `gorm:"not null"`
	Snapshot   datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_bookings_created"`
}

func (Booking) TableName() string { return "bookings" }

// bookingSnapshot is the JSON shape of the Snapshot column.
type bookingSnapshot struct {
	RoomType      string `json:"room_type"`
	PricePerNight int64  `json:"price_per_night"`
	UserBalance   int64  `json:"user_balance"`
}
