package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "cinebook/internal/models/db_models"
	"cinebook/internal/models/request_models"
	resp "cinebook/internal/models/response_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

type TheaterService interface {
	CreateTheater(ctx context.Context, req request_models.CreateTheaterRequest) (*resp.TheaterResponse, error)
	ListManagedTheaters(ctx context.Context, staffID uuid.UUID) ([]resp.TheaterResponse, error)
}

type theaterService struct {
	theaters repositories.TheaterRepository
	accounts repositories.AccountRepository
	log      *zap.Logger
}

func NewTheaterService(theaters repositories.TheaterRepository, accounts repositories.AccountRepository, logger *zap.Logger) TheaterService {
	return &theaterService{theaters: theaters, accounts: accounts, log: logger.Named("theater")}
}

// CreateTheater requires the manager to be an existing staff account.
func (s *theaterService) CreateTheater(ctx context.Context, req request_models.CreateTheaterRequest) (*resp.TheaterResponse, error) {
	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		return nil, utils.ErrInvalidManager
	}

	manager, err := s.accounts.FindById(ctx, managerID)
	if err != nil {
		return nil, utils.DatabaseError("find manager", err)
	}
	if manager == nil || manager.Role != dbm.RoleStaff {
		return nil, utils.ErrInvalidManager
	}

	theater := &dbm.Theater{
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: managerID,
	}
	if err := s.theaters.Create(ctx, theater); err != nil {
		return nil, utils.DatabaseError("create theater", err)
	}

	s.log.Info("theater created", zap.String("theater_id", theater.ID.String()), zap.String("manager_id", managerID.String()))

	out := toTheaterResponse(*theater)
	return &out, nil
}

func (s *theaterService) ListManagedTheaters(ctx context.Context, staffID uuid.UUID) ([]resp.TheaterResponse, error) {
	theaters, err := s.theaters.ListByManager(ctx, staffID)
	if err != nil {
		return nil, utils.DatabaseError("list theaters by manager", err)
	}

	out := make([]resp.TheaterResponse, 0, len(theaters))
	for _, t := range theaters {
		out = append(out, toTheaterResponse(t))
	}
	return out, nil
}

func toTheaterResponse(t dbm.Theater) resp.TheaterResponse {
	return resp.TheaterResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Location:  t.Location,
		ManagerID: t.ManagerID.String(),
		CreatedAt: t.CreatedAt,
	}
}
