package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"cinebook/internal/models/request_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

const (
	defaultRevenuePage  = 1
	defaultRevenueLimit = 10
)

// Trailing window length per granularity when no explicit dates are given.
// Months are counted as 30-day blocks.
var defaultWindowDays = map[repositories.Granularity]int{
	repositories.GranularityDay:   30,
	repositories.GranularityWeek:  84,
	repositories.GranularityMonth: 360,
}

// RevenueStatsOptions is the fully resolved form of a RevenueStatsQuery.
type RevenueStatsOptions struct {
	Granularity repositories.Granularity
	Start       time.Time
	End         time.Time
	Page        int
	Limit       int
	Sort        repositories.RevenueSort
}

// Offset saturates at math.MaxInt so an oversized page lands past the last
// bucket instead of wrapping to a negative offset.
func (o RevenueStatsOptions) Offset() int {
	if o.Page < 1 || o.Limit < 1 {
		return 0
	}
	if o.Page-1 > math.MaxInt/o.Limit {
		return math.MaxInt
	}
	return (o.Page - 1) * o.Limit
}

// ResolveRevenueStatsOptions applies the default for every missing or
// unrecognised parameter. It never fails.
func ResolveRevenueStatsOptions(q request_models.RevenueStatsQuery, now time.Time, loc *time.Location) RevenueStatsOptions {
	if loc == nil {
		loc = utils.LoadLocationOrDefault("")
	}
	now = now.In(loc)

	opts := RevenueStatsOptions{
		Granularity: parseGranularity(q.Period),
		Page:        positiveIntOr(q.Page, defaultRevenuePage),
		Limit:       positiveIntOr(q.Limit, defaultRevenueLimit),
		Sort: repositories.RevenueSort{
			Field: parseSortField(q.SortBy),
			Desc:  !strings.EqualFold(strings.TrimSpace(q.SortOrder), "asc"),
		},
	}

	start, errStart := utils.ParseDateIn(strings.TrimSpace(q.StartDate), loc)
	end, errEnd := utils.ParseDateIn(strings.TrimSpace(q.EndDate), loc)
	if q.StartDate != "" && q.EndDate != "" && errStart == nil && errEnd == nil {
		opts.Start = utils.StartOfDay(start)
		opts.End = utils.EndOfDay(end)
		return opts
	}

	days := defaultWindowDays[opts.Granularity]
	opts.End = utils.EndOfDay(now)
	opts.Start = utils.StartOfDay(now.AddDate(0, 0, -days))
	return opts
}

func parseGranularity(s string) repositories.Granularity {
	switch g := repositories.Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case repositories.GranularityWeek, repositories.GranularityMonth:
		return g
	default:
		return repositories.GranularityDay
	}
}

func parseSortField(s string) repositories.RevenueSortField {
	switch f := repositories.RevenueSortField(strings.ToLower(strings.TrimSpace(s))); f {
	case repositories.SortByRevenue, repositories.SortByBookings:
		return f
	default:
		return repositories.SortByDate
	}
}

func positiveIntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
