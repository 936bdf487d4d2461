package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cinebook/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *dbm.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Booking, error)
	ListByTheaters(ctx context.Context, theaterIDs []uuid.UUID, status dbm.BookingStatus, page, pageSize int) ([]dbm.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.BookingStatus, payment dbm.PaymentStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *dbm.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Booking, error) {
	var booking dbm.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByTheaters(ctx context.Context, theaterIDs []uuid.UUID, status dbm.BookingStatus, page, pageSize int) ([]dbm.Booking, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("theater_id IN ?", theaterIDs)
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&dbm.Booking{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("booked_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, total, err
}

// UpdateStatus writes only the non-empty statuses.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.BookingStatus, payment dbm.PaymentStatus) error {
	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
	}
	if payment != "" {
		updates["payment_status"] = payment
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
