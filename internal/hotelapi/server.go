// Package hotelapi exposes the reservation engine over HTTP. It is a thin
// adapter: parsing, value-type construction, and error-to-status mapping
// live here, the semantics stay in pkg/hotel.
package hotelapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skypay/hotel/pkg/hotel"
	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	requestIDHeader = "X-Request-ID"
)

// Run boots the HTTP facade using the supplied configuration and engine.
func Run(ctx context.Context, cfg Config, service *hotel.Service, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	router := NewRouter(cfg, service, logger)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("hotel api listening", zap.String("addr", cfg.ListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// NewRouter wires the gin routes. Exposed separately so tests can drive the
// handlers through httptest without binding a socket.
func NewRouter(cfg Config, service *hotel.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := &httpHandler{service: service, logger: logger}

	api := router.Group("/api")
	api.POST("/rooms", handler.handleSetRoom)
	api.GET("/rooms", handler.handleListRooms)
	api.POST("/users", handler.handleSetUser)
	api.GET("/users", handler.handleListUsers)
	api.POST("/bookings", handler.handleBookRoom)
	api.GET("/bookings", handler.handleListBookings)
	api.POST("/admin/reset", handler.handleReset)

	return router
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

type httpHandler struct {
	service *hotel.Service
	logger  *zap.Logger
}

func (handler *httpHandler) handleSetRoom(ctx *gin.Context) {
	var request setRoomRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	number, err := hotel.NewRoomNumber(request.RoomNumber)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	roomType, err := hotel.ParseRoomType(request.RoomType)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	price, err := hotel.NewPriceUnits(request.PricePerNight)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	if err := handler.service.SetRoom(ctx.Request.Context(), number, roomType, price); err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("room %d created or updated", number.Int())})
}

func (handler *httpHandler) handleSetUser(ctx *gin.Context) {
	var request setUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	id, err := hotel.NewUserID(request.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	balance, err := hotel.NewBalanceUnits(request.Balance)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	if err := handler.service.SetUser(ctx.Request.Context(), id, balance); err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("user %d created or updated", id.Int())})
}

func (handler *httpHandler) handleBookRoom(ctx *gin.Context) {
	var request bookRoomRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	userID, err := hotel.NewUserID(request.UserID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	roomNumber, err := hotel.NewRoomNumber(request.RoomNumber)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	stay, err := parseStay(request.CheckIn, request.CheckOut)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	booking, err := handler.service.BookRoom(ctx.Request.Context(), userID, roomNumber, stay)
	if err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, bookingView(booking))
}

func (handler *httpHandler) handleListRooms(ctx *gin.Context) {
	rooms, err := handler.service.ListRooms(ctx.Request.Context())
	if err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	views := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, roomView(room))
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": views})
}

func (handler *httpHandler) handleListUsers(ctx *gin.Context) {
	users, err := handler.service.ListUsers(ctx.Request.Context())
	if err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	views := make([]userResponse, 0, len(users))
	for _, user := range users {
		views = append(views, userView(user))
	}
	ctx.JSON(http.StatusOK, gin.H{"users": views})
}

func (handler *httpHandler) handleListBookings(ctx *gin.Context) {
	bookings, err := handler.service.ListBookings(ctx.Request.Context())
	if err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	views := make([]bookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, bookingView(booking))
	}
	ctx.JSON(http.StatusOK, gin.H{"bookings": views})
}

func (handler *httpHandler) handleReset(ctx *gin.Context) {
	if err := handler.service.ClearAll(ctx.Request.Context()); err != nil {
		handler.respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "all stores cleared"})
}

func parseStay(checkIn string, checkOut string) (hotel.StayRange, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return hotel.StayRange{}, fmt.Errorf("%w: check-in date must be %s", hotel.ErrInvalidInput, dateLayout)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return hotel.StayRange{}, fmt.Errorf("%w: check-out date must be %s", hotel.ErrInvalidInput, dateLayout)
	}
	return hotel.NewStayRange(in, out)
}

// respondEngineError maps engine rejections onto transport statuses and
// reports anything unrecognized as an internal failure.
func (handler *httpHandler) respondEngineError(ctx *gin.Context, err error) {
	code, status, known := classifyError(err)
	if !known {
		handler.logger.Error("engine failure", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse("internal", "internal error"))
		return
	}
	ctx.JSON(status, errorResponse(code, err.Error()))
}

func respondDomainError(ctx *gin.Context, err error) {
	code, status, known := classifyError(err)
	if !known {
		code, status = "invalid_input", http.StatusBadRequest
	}
	ctx.JSON(status, errorResponse(code, err.Error()))
}

func classifyError(err error) (string, int, bool) {
	switch {
	case errors.Is(err, hotel.ErrUserNotFound):
		return "user_not_found", http.StatusNotFound, true
	case errors.Is(err, hotel.ErrRoomNotFound):
		return "room_not_found", http.StatusNotFound, true
	case errors.Is(err, hotel.ErrRoomNotAvailable):
		return "room_not_available", http.StatusBadRequest, true
	case errors.Is(err, hotel.ErrInsufficientBalance):
		return "insufficient_balance", http.StatusBadRequest, true
	case errors.Is(err, hotel.ErrInvalidInput):
		return "invalid_input", http.StatusBadRequest, true
	default:
		return "", 0, false
	}
}
