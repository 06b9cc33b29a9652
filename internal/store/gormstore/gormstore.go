package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/skypay/hotel/pkg/hotel"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	constraintBookingPrimary = "bookings_pkey"
	pgUniqueViolationCode    = "23505"
	sqliteConstraintCode     = 19
	errorOperationStore      = "store"
	errorSubjectRoom         = "room"
	errorSubjectUser         = "user"
	errorSubjectBooking      = "booking"
	errorCodeDuplicate       = "duplicate"
	errorCodeGet             = "get"
	errorCodeInsert          = "insert"
	errorCodeInvalid         = "invalid"
	errorCodeList            = "list"
	errorCodeNextID          = "next_id"
	errorCodeReset           = "reset"
	errorCodeUpsert          = "upsert"
)

// Store implements hotel.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) GetRoom(ctx context.Context, number hotel.RoomNumber) (hotel.Room, error) {
	var row Room
	err := store.db.WithContext(ctx).
		Where("room_number = ?", number.Int()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, hotel.ErrRoomNotFound)
		}
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeGet, err)
	}
	room, err := mapRoom(row)
	if err != nil {
		return hotel.Room{}, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
	}
	return room, nil
}

func (store *Store) UpsertRoom(ctx context.Context, room hotel.Room) error {
	row := Room{
		RoomNumber:    int64(room.Number.Int()),
		RoomType:      room.Type.String(),
		PricePerNight: room.PricePerNight.Int64(),
		CreatedAt:     time.Unix(room.CreatedUnixUTC, 0).UTC(),
		UpdatedAt:     time.Unix(room.UpdatedUnixUTC, 0).UTC(),
	}
	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "room_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"room_type", "price_per_night", "updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeUpsert, err)
	}
	return nil
}

func (store *Store) GetUser(ctx context.Context, id hotel.UserID) (hotel.User, error) {
	var row User
	err := store.db.WithContext(ctx).
		Where("user_id = ?", id.Int()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel.User{}, wrapStoreError(errorSubjectUser, errorCodeGet, hotel.ErrUserNotFound)
		}
		return hotel.User{}, wrapStoreError(errorSubjectUser, errorCodeGet, err)
	}
	user, err := mapUser(row)
	if err != nil {
		return hotel.User{}, wrapStoreError(errorSubjectUser, errorCodeInvalid, err)
	}
	return user, nil
}

func (store *Store) UpsertUser(ctx context.Context, user hotel.User) error {
	row := User{
		UserID:    int64(user.ID.Int()),
		Balance:   user.Balance.Int64(),
		CreatedAt: time.Unix(user.CreatedUnixUTC, 0).UTC(),
		UpdatedAt: time.Unix(user.UpdatedUnixUTC, 0).UTC(),
	}
	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"balance", "updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return wrapStoreError(errorSubjectUser, errorCodeUpsert, err)
	}
	return nil
}

func (store *Store) NextBookingID(ctx context.Context) (hotel.BookingID, error) {
	var next sqlNextID
	err := store.db.WithContext(ctx).
		Model(&Booking{}).
		Select("coalesce(max(booking_id),0)+1 as next").
		Scan(&next).Error
	if err != nil {
		return 0, wrapStoreError(errorSubjectBooking, errorCodeNextID, err)
	}
	return hotel.BookingID(next.Next), nil
}

func (store *Store) InsertBooking(ctx context.Context, booking hotel.Booking) error {
	snapshot, err := json.Marshal(bookingSnapshot{
		RoomType:      booking.Room.Type.String(),
		PricePerNight: booking.Room.PricePerNight.Int64(),
		UserBalance:   booking.UserBefore.Balance.Int64(),
	})
	if err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
	}
	row := Booking{
		BookingID:  booking.ID.Int64(),
		UserID:     int64(booking.UserID.Int()),
		RoomNumber: int64(booking.RoomNumber.Int()),
		CheckIn:    booking.Stay.CheckIn(),
		CheckOut:   booking.Stay.CheckOut(),
		Nights:     int64(booking.Nights),
		TotalCost:  booking.TotalCost,
		Snapshot:   datatypes.JSON(snapshot),
		CreatedAt:  time.Unix(booking.CreatedUnixUTC, 0).UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	err = store.db.WithContext(ctx).Create(&row).Error
	if isBookingConflict(err) {
		return wrapStoreError(errorSubjectBooking, errorCodeDuplicate, err)
	}
	if err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) BookingsForRoom(ctx context.Context, number hotel.RoomNumber) ([]hotel.Booking, error) {
	var rows []Booking
	err := store.db.WithContext(ctx).
		Where("room_number = ?", number.Int()).
		Order("booking_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	return mapBookings(rows)
}

func (store *Store) ListRooms(ctx context.Context) ([]hotel.Room, error) {
	var rows []Room
	err := store.db.WithContext(ctx).
		Order("created_at DESC, room_number DESC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectRoom, errorCodeList, err)
	}
	rooms := make([]hotel.Room, 0, len(rows))
	for _, row := range rows {
		room, err := mapRoom(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRoom, errorCodeInvalid, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (store *Store) ListUsers(ctx context.Context) ([]hotel.User, error) {
	var rows []User
	err := store.db.WithContext(ctx).
		Order("created_at DESC, user_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectUser, errorCodeList, err)
	}
	users := make([]hotel.User, 0, len(rows))
	for _, row := range rows {
		user, err := mapUser(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectUser, errorCodeInvalid, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (store *Store) ListBookings(ctx context.Context) ([]hotel.Booking, error) {
	var rows []Booking
	err := store.db.WithContext(ctx).
		Order("created_at DESC, booking_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectBooking, errorCodeList, err)
	}
	return mapBookings(rows)
}

func (store *Store) Reset(ctx context.Context) error {
	session := store.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&Booking{}).Error; err != nil {
		return wrapStoreError(errorSubjectBooking, errorCodeReset, err)
	}
	if err := session.Delete(&User{}).Error; err != nil {
		return wrapStoreError(errorSubjectUser, errorCodeReset, err)
	}
	if err := session.Delete(&Room{}).Error; err != nil {
		return wrapStoreError(errorSubjectRoom, errorCodeReset, err)
	}
	return nil
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}

type sqlNextID struct {
	Next int64
}

func mapRoom(row Room) (hotel.Room, error) {
	number, err := hotel.NewRoomNumber(int(row.RoomNumber))
	if err != nil {
		return hotel.Room{}, err
	}
	roomType, err := hotel.ParseRoomType(row.RoomType)
	if err != nil {
		return hotel.Room{}, err
	}
	price, err := hotel.NewPriceUnits(row.PricePerNight)
	if err != nil {
		return hotel.Room{}, err
	}
	return hotel.Room{
		Number:         number,
		Type:           roomType,
		PricePerNight:  price,
		CreatedUnixUTC: row.CreatedAt.Unix(),
		UpdatedUnixUTC: row.UpdatedAt.Unix(),
	}, nil
}

func mapUser(row User) (hotel.User, error) {
	id, err := hotel.NewUserID(int(row.UserID))
	if err != nil {
		return hotel.User{}, err
	}
	balance, err := hotel.NewBalanceUnits(row.Balance)
	if err != nil {
		return hotel.User{}, err
	}
	return hotel.User{
		ID:             id,
		Balance:        balance,
		CreatedUnixUTC: row.CreatedAt.Unix(),
		UpdatedUnixUTC: row.UpdatedAt.Unix(),
	}, nil
}

func mapBookings(rows []Booking) ([]hotel.Booking, error) {
	bookings := make([]hotel.Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := mapBooking(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectBooking, errorCodeInvalid, err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func mapBooking(row Booking) (hotel.Booking, error) {
	userID, err := hotel.NewUserID(int(row.UserID))
	if err != nil {
		return hotel.Booking{}, err
	}
	roomNumber, err := hotel.NewRoomNumber(int(row.RoomNumber))
	if err != nil {
		return hotel.Booking{}, err
	}
	stay, err := hotel.NewStayRange(row.CheckIn, row.CheckOut)
	if err != nil {
		return hotel.Booking{}, err
	}
	var snapshot bookingSnapshot
	if err := json.Unmarshal(row.Snapshot, &snapshot); err != nil {
		return hotel.Booking{}, err
	}
	roomType, err := hotel.ParseRoomType(snapshot.RoomType)
	if err != nil {
		return hotel.Booking{}, err
	}
	price, err := hotel.NewPriceUnits(snapshot.PricePerNight)
	if err != nil {
		return hotel.Booking{}, err
	}
	balance, err := hotel.NewBalanceUnits(snapshot.UserBalance)
	if err != nil {
		return hotel.Booking{}, err
	}
	return hotel.Booking{
		ID:             hotel.BookingID(row.BookingID),
		UserID:         userID,
		RoomNumber:     roomNumber,
		Stay:           stay,
		Nights:         int(row.Nights),
		TotalCost:      row.TotalCost,
		Room:           hotel.RoomSnapshot{Type: roomType, PricePerNight: price},
		UserBefore:     hotel.UserSnapshot{Balance: balance},
		CreatedUnixUTC: row.CreatedAt.Unix(),
	}, nil
}

func isBookingConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintBookingPrimary
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
