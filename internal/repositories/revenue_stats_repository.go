package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cinebook/internal/models/db_models"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

type RevenueSortField string

const (
	SortByDate     RevenueSortField = "date"
	SortByRevenue  RevenueSortField = "revenue"
	SortByBookings RevenueSortField = "bookings"
)

// RevenueFilter selects the revenue-countable bookings of a set of theaters
// inside an inclusive time window.
type RevenueFilter struct {
	TheaterIDs  []uuid.UUID
	Start       time.Time
	End         time.Time
	Granularity Granularity
	// IANA zone the buckets are cut in.
	Timezone string
}

type RevenueSort struct {
	Field RevenueSortField
	Desc  bool
}

type RevenueStatsRepository interface {
	CountRevenueBuckets(ctx context.Context, f RevenueFilter) (int64, error)
	ListRevenueBuckets(ctx context.Context, f RevenueFilter, sort RevenueSort, offset, limit int) ([]RevenueBucketRow, error)
	SumRevenue(ctx context.Context, f RevenueFilter) (RevenueTotalsRow, error)
}

type revenueStatsRepository struct {
	db *gorm.DB
}

func NewRevenueStatsRepository(db *gorm.DB) RevenueStatsRepository {
	return &revenueStatsRepository{db: db}
}

// ---------- Row helpers ----------

// RevenueBucketRow.BucketStart holds the local wall-clock start of the bucket
// (date_trunc of the zoned booking time), so its Year/Month/Day are the bucket key.
type RevenueBucketRow struct {
	BucketStart   time.Time `gorm:"column:bucket_start"`
	Revenue       float64   `gorm:"column:revenue"`
	BookingsCount int64     `gorm:"column:bookings_count"`
}

type RevenueTotalsRow struct {
	TotalRevenue  float64 `gorm:"column:total_revenue"`
	TotalBookings int64   `gorm:"column:total_bookings"`
}

// ---------- Helpers ----------

// revenueCountable is the one predicate shared by the count, data and summary passes.
func revenueCountable(f RevenueFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		pairs := make([][]interface{}, 0, len(dbm.RevenueCountable))
		for _, p := range dbm.RevenueCountable {
			pairs = append(pairs, []interface{}{string(p.Status), string(p.PaymentStatus)})
		}
		return db.
			Where("bookings.theater_id IN ?", f.TheaterIDs).
			Where("bookings.booked_at BETWEEN ? AND ?", f.Start, f.End).
			Where("(bookings.status, bookings.payment_status) IN ?", pairs)
	}
}

// truncUnit maps a granularity to its date_trunc field. date_trunc('week') starts on ISO Monday.
func truncUnit(g Granularity) string {
	switch g {
	case GranularityWeek:
		return "week"
	case GranularityMonth:
		return "month"
	default:
		return "day"
	}
}

// revenueOrderClause builds ORDER BY from whitelisted fields only; bucket start breaks ties.
func revenueOrderClause(s RevenueSort) string {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	switch s.Field {
	case SortByRevenue:
		return "revenue " + dir + ", b.bucket_start " + dir
	case SortByBookings:
		return "bookings_count " + dir + ", b.bucket_start " + dir
	default:
		return "b.bucket_start " + dir
	}
}

func (r *revenueStatsRepository) bucketed(ctx context.Context, f RevenueFilter) *gorm.DB {
	inner := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Scopes(revenueCountable(f)).
		Select("date_trunc(?, bookings.booked_at AT TIME ZONE ?) AS bucket_start, bookings.total_amount", truncUnit(f.Granularity), f.Timezone)
	return r.db.WithContext(ctx).Table("(?) AS b", inner)
}

// ---------- Passes ----------

func (r *revenueStatsRepository) CountRevenueBuckets(ctx context.Context, f RevenueFilter) (int64, error) {
	var n int64
	err := r.bucketed(ctx, f).
		Select("COUNT(DISTINCT b.bucket_start)").
		Scan(&n).Error
	return n, err
}

func (r *revenueStatsRepository) ListRevenueBuckets(ctx context.Context, f RevenueFilter, sort RevenueSort, offset, limit int) ([]RevenueBucketRow, error) {
	var rows []RevenueBucketRow
	err := r.bucketed(ctx, f).
		Select("b.bucket_start AS bucket_start, COALESCE(SUM(b.total_amount), 0) AS revenue, COUNT(*) AS bookings_count").
		Group("b.bucket_start").
		Order(revenueOrderClause(sort)).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *revenueStatsRepository) SumRevenue(ctx context.Context, f RevenueFilter) (RevenueTotalsRow, error) {
	var row RevenueTotalsRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Scopes(revenueCountable(f)).
		Select("COALESCE(SUM(bookings.total_amount), 0) AS total_revenue, COUNT(*) AS total_bookings").
		Scan(&row).Error
	return row, err
}
