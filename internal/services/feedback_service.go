package services

import (
	"context"

	"github.com/google/uuid"

	"cinebook/internal/models/db_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID uuid.UUID, theaterID *uuid.UUID, comment string, rating int) error
	GetFeedback(ctx context.Context, theaterID *uuid.UUID, page, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, userID uuid.UUID, theaterID *uuid.UUID, comment string, rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}

	feedback := &db_models.Feedback{
		AccountID: userID,
		TheaterID: theaterID,
		Comment:   comment,
		Rating:    rating,
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return utils.DatabaseError("create feedback", err)
	}
	return nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, theaterID *uuid.UUID, page, pageSize int) ([]db_models.Feedback, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx, theaterID, page, pageSize)
	if err != nil {
		return nil, utils.DatabaseError("list feedback", err)
	}
	return feedbacks, nil
}
