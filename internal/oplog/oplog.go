// Package oplog adapts hotel.OperationLogger onto zap.
package oplog

import (
	"context"

	"github.com/skypay/hotel/pkg/hotel"
	"go.uber.org/zap"
)

// Logger forwards engine operation records to a zap logger.
type Logger struct {
	logger *zap.Logger
}

// New returns a Logger writing through the supplied zap logger.
func New(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

// LogOperation emits one structured line per engine operation. Rejections log
// at warn level with the domain error attached; the engine itself never logs.
func (adapter *Logger) LogOperation(_ context.Context, entry hotel.OperationLog) {
	if adapter.logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	}
	if entry.UserID != 0 {
		fields = append(fields, zap.Int("user_id", entry.UserID.Int()))
	}
	if entry.RoomNumber != 0 {
		fields = append(fields, zap.Int("room_number", entry.RoomNumber.Int()))
	}
	if entry.BookingID != 0 {
		fields = append(fields, zap.Int64("booking_id", entry.BookingID.Int64()))
	}
	if entry.Amount != 0 {
		fields = append(fields, zap.Int64("amount", entry.Amount))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
		adapter.logger.Warn("operation rejected", fields...)
		return
	}
	adapter.logger.Info("operation applied", fields...)
}
