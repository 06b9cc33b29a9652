package hotel

import (
	"context"
	"errors"
	"fmt"
)

// Service contains the reservation logic over a Store.
type Service struct {
	store  Store
	nowFn  func() int64
	logger OperationLogger
}

// NewService wires a Service.
func NewService(store Store, now func() int64, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{store: store, nowFn: now}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// SetRoom creates a room or updates an existing one in place. Updating keeps
// the room's identity, so bookings made earlier keep reporting the snapshot
// they were created with.
func (service *Service) SetRoom(ctx context.Context, number RoomNumber, roomType RoomType, pricePerNight PriceUnits) error {
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if err := validateRoomInput(number, roomType, pricePerNight); err != nil {
			return err
		}
		now := service.nowFn()
		existing, err := transactionStore.GetRoom(ctx, number)
		switch {
		case err == nil:
			existing.Type = roomType
			existing.PricePerNight = pricePerNight
			existing.UpdatedUnixUTC = now
			return transactionStore.UpsertRoom(ctx, existing)
		case errors.Is(err, ErrRoomNotFound):
			return transactionStore.UpsertRoom(ctx, Room{
				Number:         number,
				Type:           roomType,
				PricePerNight:  pricePerNight,
				CreatedUnixUTC: now,
				UpdatedUnixUTC: now,
			})
		default:
			return err
		}
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationSetRoom,
		RoomNumber: number,
		Amount:     pricePerNight.Int64(),
		Error:      operationError,
	})
	return operationError
}

// SetUser creates a user or replaces an existing user's balance in place.
func (service *Service) SetUser(ctx context.Context, id UserID, balance BalanceUnits) error {
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if err := validateUserInput(id, balance); err != nil {
			return err
		}
		now := service.nowFn()
		existing, err := transactionStore.GetUser(ctx, id)
		switch {
		case err == nil:
			existing.Balance = balance
			existing.UpdatedUnixUTC = now
			return transactionStore.UpsertUser(ctx, existing)
		case errors.Is(err, ErrUserNotFound):
			return transactionStore.UpsertUser(ctx, User{
				ID:             id,
				Balance:        balance,
				CreatedUnixUTC: now,
				UpdatedUnixUTC: now,
			})
		default:
			return err
		}
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationSetUser,
		UserID:    id,
		Amount:    balance.Int64(),
		Error:     operationError,
	})
	return operationError
}

// BookRoom books a room for a user over a stay. Every check runs before any
// mutation: a rejected booking leaves the user's balance and the ledger
// untouched. On success the total cost is deducted and the booking is
// appended with frozen room and user snapshots, in one store transaction.
func (service *Service) BookRoom(ctx context.Context, userID UserID, roomNumber RoomNumber, stay StayRange) (Booking, error) {
	var booking Booking
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if err := validateBookingInput(userID, roomNumber, stay); err != nil {
			return err
		}
		user, err := transactionStore.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		room, err := transactionStore.GetRoom(ctx, roomNumber)
		if err != nil {
			return err
		}
		priorBookings, err := transactionStore.BookingsForRoom(ctx, roomNumber)
		if err != nil {
			return err
		}
		for _, prior := range priorBookings {
			if prior.Stay.Overlaps(stay) {
				return ErrRoomNotAvailable
			}
		}
		nights := stay.Nights()
		totalCost := int64(nights) * room.PricePerNight.Int64()
		if user.Balance.Int64() < totalCost {
			return ErrInsufficientBalance
		}
		balanceBefore := user.Balance
		user.Balance = BalanceUnits(user.Balance.Int64() - totalCost)
		user.UpdatedUnixUTC = service.nowFn()
		if err := transactionStore.UpsertUser(ctx, user); err != nil {
			return err
		}
		bookingID, err := transactionStore.NextBookingID(ctx)
		if err != nil {
			return err
		}
		booking = Booking{
			ID:             bookingID,
			UserID:         userID,
			RoomNumber:     roomNumber,
			Stay:           stay,
			Nights:         nights,
			TotalCost:      totalCost,
			Room:           RoomSnapshot{Type: room.Type, PricePerNight: room.PricePerNight},
			UserBefore:     UserSnapshot{Balance: balanceBefore},
			CreatedUnixUTC: service.nowFn(),
		}
		return transactionStore.InsertBooking(ctx, booking)
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationBookRoom,
		UserID:     userID,
		RoomNumber: roomNumber,
		BookingID:  booking.ID,
		Amount:     booking.TotalCost,
		Error:      operationError,
	})
	if operationError != nil {
		return Booking{}, operationError
	}
	return booking, nil
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

func validateRoomInput(number RoomNumber, roomType RoomType, pricePerNight PriceUnits) error {
	if number <= 0 {
		return fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}
	if !roomType.valid() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, string(roomType))
	}
	if pricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrInvalidInput)
	}
	return nil
}

func validateUserInput(id UserID, balance BalanceUnits) error {
	if id <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if balance < 0 {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidInput)
	}
	return nil
}

func validateBookingInput(userID UserID, roomNumber RoomNumber, stay StayRange) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if roomNumber <= 0 {
		return fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}
	if stay.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}
	return nil
}
