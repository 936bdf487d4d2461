package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cinebook/internal/models/request_models"
	resp "cinebook/internal/models/response_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

type RevenueStatsService interface {
	GetRevenueStats(ctx context.Context, staffID uuid.UUID, q request_models.RevenueStatsQuery) (*resp.RevenueStatsPaginatedResponse, error)
}

type revenueStatsService struct {
	theaters repositories.TheaterRepository
	stats    repositories.RevenueStatsRepository
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewRevenueStatsService(
	theaters repositories.TheaterRepository,
	stats repositories.RevenueStatsRepository,
	loc *time.Location,
	logger *zap.Logger,
) RevenueStatsService {
	return &revenueStatsService{
		theaters: theaters,
		stats:    stats,
		loc:      loc,
		now:      time.Now,
		log:      logger.Named("revenue_stats"),
	}
}

func (s *revenueStatsService) GetRevenueStats(ctx context.Context, staffID uuid.UUID, q request_models.RevenueStatsQuery) (*resp.RevenueStatsPaginatedResponse, error) {
	opts := ResolveRevenueStatsOptions(q, s.now(), s.loc)

	out := &resp.RevenueStatsPaginatedResponse{
		Data: []resp.RevenueBucket{},
		Pagination: resp.Pagination{
			CurrentPage:  opts.Page,
			ItemsPerPage: opts.Limit,
		},
		Summary: resp.RevenueSummary{
			PeriodType: string(opts.Granularity),
			DateRange: resp.DateRange{
				Start: utils.FormatDate(opts.Start),
				End:   utils.FormatDate(opts.End),
			},
		},
	}

	theaterIDs, err := s.theaters.ListIDsByManager(ctx, staffID)
	if err != nil {
		return nil, utils.DatabaseError("list managed theaters", err)
	}
	if len(theaterIDs) == 0 {
		return out, nil
	}

	filter := repositories.RevenueFilter{
		TheaterIDs:  theaterIDs,
		Start:       opts.Start,
		End:         opts.End,
		Granularity: opts.Granularity,
		Timezone:    utils.SQLZoneName(s.loc),
	}

	var (
		totalItems int64
		rows       []repositories.RevenueBucketRow
		totals     repositories.RevenueTotalsRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.stats.CountRevenueBuckets(gctx, filter)
		if err != nil {
			return utils.DatabaseError("count revenue buckets", err)
		}
		totalItems = n
		return nil
	})
	g.Go(func() error {
		r, err := s.stats.ListRevenueBuckets(gctx, filter, opts.Sort, opts.Offset(), opts.Limit)
		if err != nil {
			return utils.DatabaseError("list revenue buckets", err)
		}
		rows = r
		return nil
	})
	g.Go(func() error {
		t, err := s.stats.SumRevenue(gctx, filter)
		if err != nil {
			return utils.DatabaseError("sum revenue", err)
		}
		totals = t
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("revenue stats query failed", zap.String("staff_id", staffID.String()), zap.Error(err))
		return nil, err
	}

	for _, row := range rows {
		out.Data = append(out.Data, toRevenueBucket(row, opts.Granularity))
	}

	totalPages := int(totalItems / int64(opts.Limit))
	if totalItems%int64(opts.Limit) != 0 {
		totalPages++
	}
	out.Pagination.TotalPages = totalPages
	out.Pagination.TotalItems = totalItems
	out.Pagination.HasNext = opts.Page < totalPages
	out.Pagination.HasPrev = opts.Page > 1

	out.Summary.TotalRevenue = utils.RoundMoney(totals.TotalRevenue)
	out.Summary.TotalBookings = totals.TotalBookings
	out.Summary.AverageRevenuePerPeriod = utils.Average(totals.TotalRevenue, totalItems)

	s.log.Debug("revenue stats built",
		zap.String("staff_id", staffID.String()),
		zap.Int("theaters", len(theaterIDs)),
		zap.String("period", string(opts.Granularity)),
		zap.Int64("buckets", totalItems),
	)
	return out, nil
}

// toRevenueBucket keys the row by the wall-clock fields of its bucket start.
func toRevenueBucket(row repositories.RevenueBucketRow, g repositories.Granularity) resp.RevenueBucket {
	t := row.BucketStart
	b := resp.RevenueBucket{
		Revenue:             utils.RoundMoney(row.Revenue),
		BookingsCount:       row.BookingsCount,
		AverageBookingValue: utils.Average(row.Revenue, row.BookingsCount),
	}
	switch g {
	case repositories.GranularityWeek:
		year, week := t.ISOWeek()
		b.Period = resp.BucketPeriod{Year: year, Week: week}
		b.Date = fmt.Sprintf("%d-W%d", year, week)
	case repositories.GranularityMonth:
		b.Period = resp.BucketPeriod{Year: t.Year(), Month: int(t.Month())}
		b.Date = t.Format("2006-01")
	default:
		b.Period = resp.BucketPeriod{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
		b.Date = t.Format(utils.DateLayout)
	}
	return b
}
