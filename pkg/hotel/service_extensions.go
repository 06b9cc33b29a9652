package hotel

import "context"

// ListRooms returns every room, most recently created first. Updating a room
// does not move it: reporting position is pinned to first creation.
func (service *Service) ListRooms(requestContext context.Context) ([]Room, error) {
	return service.store.ListRooms(requestContext)
}

// ListUsers returns every user, most recently created first.
func (service *Service) ListUsers(requestContext context.Context) ([]User, error) {
	return service.store.ListUsers(requestContext)
}

// ListBookings returns the whole ledger, most recently created first.
func (service *Service) ListBookings(requestContext context.Context) ([]Booking, error) {
	return service.store.ListBookings(requestContext)
}

// ClearAll wipes rooms, users, and bookings and resets the booking-id
// counter. The next booking after a reset gets id 1 again.
func (service *Service) ClearAll(requestContext context.Context) error {
	operationError := service.store.WithTx(requestContext, func(ctx context.Context, transactionStore Store) error {
		return transactionStore.Reset(ctx)
	})
	service.logOperation(requestContext, OperationLog{
		Operation: operationClearAll,
		Error:     operationError,
	})
	return operationError
}
