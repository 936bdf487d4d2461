package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "cinebook/internal/models/db_models"
	"cinebook/internal/models/request_models"
	resp "cinebook/internal/models/response_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, accountID uuid.UUID, req request_models.CreateBookingRequest) (*resp.BookingResponse, error)
	ListTheaterBookings(ctx context.Context, staffID uuid.UUID, status string, page, pageSize int) (*resp.BookingPage, error)
	UpdateBookingStatus(ctx context.Context, staffID, bookingID uuid.UUID, req request_models.UpdateBookingStatusRequest) (*resp.BookingResponse, error)
}

type bookingService struct {
	bookings repositories.BookingRepository
	theaters repositories.TheaterRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(bookings repositories.BookingRepository, theaters repositories.TheaterRepository, logger *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		theaters: theaters,
		now:      time.Now,
		log:      logger.Named("booking"),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, accountID uuid.UUID, req request_models.CreateBookingRequest) (*resp.BookingResponse, error) {
	theaterID, err := uuid.Parse(req.TheaterID)
	if err != nil {
		return nil, utils.ErrTheaterNotFound
	}
	if req.TotalAmount <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	theater, err := s.theaters.FindByID(ctx, theaterID)
	if err != nil {
		return nil, utils.DatabaseError("find theater", err)
	}
	if theater == nil {
		return nil, utils.ErrTheaterNotFound
	}

	seats, err := json.Marshal(req.Seats)
	if err != nil {
		return nil, err
	}

	booking := &dbm.Booking{
		TheaterID:     theaterID,
		AccountID:     accountID,
		TotalAmount:   utils.RoundMoney(req.TotalAmount),
		BookedAt:      s.now(),
		Status:        dbm.BookingStatusPending,
		PaymentStatus: dbm.PaymentStatusPending,
		Seats:         datatypes.JSON(seats),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, utils.DatabaseError("create booking", err)
	}

	out := s.toBookingResponse(*booking)
	return &out, nil
}

func (s *bookingService) ListTheaterBookings(ctx context.Context, staffID uuid.UUID, status string, page, pageSize int) (*resp.BookingPage, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	st := dbm.BookingStatus(status)
	if st != "" && !st.Valid() {
		return nil, utils.ErrInvalidStatus
	}

	out := &resp.BookingPage{Items: []resp.BookingResponse{}, Page: page, PageSize: pageSize}

	theaterIDs, err := s.theaters.ListIDsByManager(ctx, staffID)
	if err != nil {
		return nil, utils.DatabaseError("list managed theaters", err)
	}
	if len(theaterIDs) == 0 {
		return out, nil
	}

	bookings, total, err := s.bookings.ListByTheaters(ctx, theaterIDs, st, page, pageSize)
	if err != nil {
		return nil, utils.DatabaseError("list bookings", err)
	}
	for _, b := range bookings {
		out.Items = append(out.Items, s.toBookingResponse(b))
	}
	out.Total = total
	return out, nil
}

// UpdateBookingStatus only touches bookings of theaters the caller manages;
// anything else reads as not found.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, staffID, bookingID uuid.UUID, req request_models.UpdateBookingStatusRequest) (*resp.BookingResponse, error) {
	status := dbm.BookingStatus(req.Status)
	payment := dbm.PaymentStatus(req.PaymentStatus)
	if status == "" && payment == "" {
		return nil, utils.ErrInvalidStatus
	}
	if (status != "" && !status.Valid()) || (payment != "" && !payment.Valid()) {
		return nil, utils.ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("find booking", err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	theater, err := s.theaters.FindByID(ctx, booking.TheaterID)
	if err != nil {
		return nil, utils.DatabaseError("find theater", err)
	}
	if theater == nil || theater.ManagerID != staffID {
		return nil, utils.ErrBookingNotFound
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status, payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrBookingNotFound
		}
		return nil, utils.DatabaseError("update booking status", err)
	}

	if status != "" {
		booking.Status = status
	}
	if payment != "" {
		booking.PaymentStatus = payment
	}
	s.log.Info("booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(booking.Status)),
		zap.String("payment_status", string(booking.PaymentStatus)),
	)

	out := s.toBookingResponse(*booking)
	return &out, nil
}

func (s *bookingService) toBookingResponse(b dbm.Booking) resp.BookingResponse {
	seats := []string{}
	if len(b.Seats) > 0 {
		if err := json.Unmarshal(b.Seats, &seats); err != nil {
			s.log.Warn("unreadable seat list", zap.String("booking_id", b.ID.String()), zap.Error(err))
			seats = []string{}
		}
	}
	return resp.BookingResponse{
		ID:            b.ID.String(),
		TheaterID:     b.TheaterID.String(),
		AccountID:     b.AccountID.String(),
		TotalAmount:   b.TotalAmount,
		BookedAt:      b.BookedAt,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Seats:         seats,
	}
}
