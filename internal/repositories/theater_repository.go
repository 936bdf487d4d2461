package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cinebook/internal/models/db_models"
)

type TheaterRepository interface {
	Create(ctx context.Context, theater *dbm.Theater) error
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Theater, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]dbm.Theater, error)
	// ListIDsByManager resolves the theaters a staff member owns.
	ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

type theaterRepository struct {
	db *gorm.DB
}

func NewTheaterRepository(db *gorm.DB) TheaterRepository {
	return &theaterRepository{db: db}
}

func (r *theaterRepository) Create(ctx context.Context, theater *dbm.Theater) error {
	return r.db.WithContext(ctx).Create(theater).Error
}

func (r *theaterRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Theater, error) {
	var theater dbm.Theater
	err := r.db.WithContext(ctx).First(&theater, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &theater, nil
}

func (r *theaterRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]dbm.Theater, error) {
	var theaters []dbm.Theater
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&theaters).Error
	return theaters, err
}

func (r *theaterRepository) ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&dbm.Theater{}).
		Where("manager_id = ?", managerID).
		Pluck("id", &ids).Error
	return ids, err
}
