package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"cinebook/internal/models/db_models"
	"cinebook/pkg/utils"
)

type fakeFeedbackRepo struct {
	created []db_models.Feedback
	err     error
}

func (f *fakeFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListFeedback(ctx context.Context, theaterID *uuid.UUID, page, pageSize int) ([]db_models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Feedback
	for _, fb := range f.created {
		if theaterID == nil || (fb.TheaterID != nil && *fb.TheaterID == *theaterID) {
			out = append(out, fb)
		}
	}
	return out, nil
}

func TestAddFeedbackRatingRange(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo)

	for _, rating := range []int{0, 6, -1} {
		if err := svc.AddFeedback(context.Background(), uuid.New(), nil, "meh", rating); !errors.Is(err, utils.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid feedback stored: %+v", repo.created)
	}

	theater := uuid.New()
	if err := svc.AddFeedback(context.Background(), uuid.New(), &theater, "great sound", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddFeedback(context.Background(), uuid.New(), nil, "app is slow", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := svc.GetFeedback(context.Background(), &theater, 1, 10)
	if err != nil || len(list) != 1 || list[0].Rating != 5 {
		t.Fatalf("unexpected theater feedback: %+v, %v", list, err)
	}
}

func TestFeedbackStorageError(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{err: errors.New("db down")})
	if err := svc.AddFeedback(context.Background(), uuid.New(), nil, "ok", 3); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
	if _, err := svc.GetFeedback(context.Background(), nil, 0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
}
