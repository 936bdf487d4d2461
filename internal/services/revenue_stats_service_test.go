package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "cinebook/internal/models/db_models"
	"cinebook/internal/models/request_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

var ict = time.FixedZone("ICT", 7*3600)

func newTestRevenueService(theaters repositories.TheaterRepository, stats repositories.RevenueStatsRepository, now time.Time) *revenueStatsService {
	return &revenueStatsService{
		theaters: theaters,
		stats:    stats,
		loc:      ict,
		now:      func() time.Time { return now },
		log:      zap.NewNop(),
	}
}

func booking(theaterID uuid.UUID, amount float64, at time.Time, status dbm.BookingStatus, payment dbm.PaymentStatus) dbm.Booking {
	return dbm.Booking{
		BaseModel:     dbm.BaseModel{ID: uuid.New()},
		TheaterID:     theaterID,
		TotalAmount:   amount,
		BookedAt:      at,
		Status:        status,
		PaymentStatus: payment,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, ict)
}

func TestGetRevenueStatsNoTheaters(t *testing.T) {
	staff := uuid.New()
	stats := &memRevenueStats{loc: ict}
	svc := newTestRevenueService(ownedBy(uuid.New()), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{Page: "2", Limit: "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.calls.Load() != 0 {
		t.Fatalf("expected no aggregation passes, got %d", stats.calls.Load())
	}
	if out.Data == nil || len(out.Data) != 0 {
		t.Fatalf("expected empty non-nil data, got %#v", out.Data)
	}
	p := out.Pagination
	if p.TotalPages != 0 || p.TotalItems != 0 || p.HasNext || p.HasPrev {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if p.CurrentPage != 2 || p.ItemsPerPage != 5 {
		t.Fatalf("expected page 2 limit 5 echoed, got %+v", p)
	}
	s := out.Summary
	if s.TotalRevenue != 0 || s.TotalBookings != 0 || s.AverageRevenuePerPeriod != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.PeriodType != "day" || s.DateRange.Start != "2024-02-14" || s.DateRange.End != "2024-03-15" {
		t.Fatalf("unexpected summary window: %+v", s)
	}
}

func TestGetRevenueStatsSingleDayScenario(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 100, day(2024, 1, 1), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 200, day(2024, 1, 1), dbm.BookingStatusUsed, dbm.PaymentStatusCompleted),
		booking(theater, 300, day(2024, 1, 1), dbm.BookingStatusCancelled, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		Period: "day", StartDate: "2024-01-01", EndDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Data) != 1 {
		t.Fatalf("expected one bucket, got %d", len(out.Data))
	}
	b := out.Data[0]
	if b.Date != "2024-01-01" || b.Revenue != 300 || b.BookingsCount != 2 || b.AverageBookingValue != 150 {
		t.Fatalf("unexpected bucket: %+v", b)
	}
	if b.Period.Year != 2024 || b.Period.Month != 1 || b.Period.Day != 1 || b.Period.Week != 0 {
		t.Fatalf("unexpected period key: %+v", b.Period)
	}
	if out.Summary.TotalRevenue != 300 || out.Summary.TotalBookings != 2 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if out.Summary.AverageRevenuePerPeriod != 300 {
		t.Fatalf("expected average per period 300, got %v", out.Summary.AverageRevenuePerPeriod)
	}
	if out.Pagination.TotalItems != 1 || out.Pagination.TotalPages != 1 || out.Pagination.HasNext || out.Pagination.HasPrev {
		t.Fatalf("unexpected pagination: %+v", out.Pagination)
	}
}

func TestGetRevenueStatsExcludesUnpaidBookings(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 1000, day(2024, 1, 2), dbm.BookingStatusConfirmed, dbm.PaymentStatusFailed),
		booking(theater, 1000, day(2024, 1, 2), dbm.BookingStatusCompleted, dbm.PaymentStatusRefunded),
		booking(theater, 1000, day(2024, 1, 2), dbm.BookingStatusUsed, dbm.PaymentStatusPending),
		booking(theater, 1000, day(2024, 1, 3), dbm.BookingStatusPending, dbm.PaymentStatusPending),
		booking(theater, 50, day(2024, 1, 2), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		StartDate: "2024-01-01", EndDate: "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].Revenue != 50 || out.Data[0].BookingsCount != 1 {
		t.Fatalf("expected only the paid booking to count, got %+v", out.Data)
	}
	if out.Summary.TotalRevenue != 50 || out.Summary.TotalBookings != 1 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
}

func TestGetRevenueStatsIgnoresOtherTheaters(t *testing.T) {
	staff, mine, other := uuid.New(), uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(mine, 80, day(2024, 1, 2), dbm.BookingStatusCompleted, dbm.PaymentStatusCompleted),
		booking(other, 999, day(2024, 1, 2), dbm.BookingStatusCompleted, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, mine), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		StartDate: "2024-01-01", EndDate: "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary.TotalRevenue != 80 {
		t.Fatalf("expected 80, got %v", out.Summary.TotalRevenue)
	}
}

func TestGetRevenueStatsPaginationKeepsSummary(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict}
	for d := 1; d <= 5; d++ {
		stats.bookings = append(stats.bookings,
			booking(theater, float64(100*d), day(2024, 1, d), dbm.BookingStatusCompleted, dbm.PaymentStatusCompleted))
	}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	var (
		bucketRevenue  float64
		bucketBookings int64
		dates          []string
	)
	for page := 1; page <= 3; page++ {
		out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
			StartDate: "2024-01-01", EndDate: "2024-01-31",
			Page: strconv.Itoa(page), Limit: "2", SortOrder: "asc",
		})
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", page, err)
		}
		p := out.Pagination
		if p.TotalItems != 5 || p.TotalPages != 3 {
			t.Fatalf("page %d: unexpected totals %+v", page, p)
		}
		if p.HasNext != (page < 3) || p.HasPrev != (page > 1) {
			t.Fatalf("page %d: unexpected flags %+v", page, p)
		}
		if out.Summary.TotalRevenue != 1500 || out.Summary.TotalBookings != 5 {
			t.Fatalf("page %d: summary changed with page: %+v", page, out.Summary)
		}
		if out.Summary.AverageRevenuePerPeriod != 300 {
			t.Fatalf("page %d: expected 300 per period, got %v", page, out.Summary.AverageRevenuePerPeriod)
		}
		for _, b := range out.Data {
			bucketRevenue += b.Revenue
			bucketBookings += b.BookingsCount
			dates = append(dates, b.Date)
		}
	}
	if bucketRevenue != 1500 || bucketBookings != 5 {
		t.Fatalf("buckets sum to %v/%d, want 1500/5", bucketRevenue, bucketBookings)
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want %v", dates, want)
		}
	}
}

func TestGetRevenueStatsHugeLimit(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 100, day(2024, 1, 1), dbm.BookingStatusCompleted, dbm.PaymentStatusCompleted),
		booking(theater, 200, day(2024, 1, 2), dbm.BookingStatusCompleted, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	tests := []struct {
		name     string
		page     string
		limit    string
		wantLen  int
		wantPrev bool
	}{
		{"max limit", "1", strconv.Itoa(math.MaxInt), 2, false},
		{"offset past the end", "3", strconv.Itoa(math.MaxInt/2 + 1), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
				StartDate: "2024-01-01", EndDate: "2024-01-31", Page: tt.page, Limit: tt.limit,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			p := out.Pagination
			if p.TotalItems != 2 || p.TotalPages != 1 || p.HasNext || p.HasPrev != tt.wantPrev {
				t.Fatalf("unexpected pagination: %+v", p)
			}
			if len(out.Data) != tt.wantLen {
				t.Fatalf("expected %d buckets, got %+v", tt.wantLen, out.Data)
			}
			if out.Summary.TotalRevenue != 300 {
				t.Fatalf("unexpected summary: %+v", out.Summary)
			}
		})
	}
}

func TestGetRevenueStatsSortByRevenueDesc(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 500, day(2024, 1, 2), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 1200, day(2024, 1, 1), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		StartDate: "2024-01-01", EndDate: "2024-01-31", SortBy: "revenue", SortOrder: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Data) != 2 || out.Data[0].Revenue != 1200 || out.Data[1].Revenue != 500 {
		t.Fatalf("expected 1200 first, got %+v", out.Data)
	}
}

func TestGetRevenueStatsAverageRounding(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 100, day(2024, 1, 1), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 100, day(2024, 1, 1), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 33.33, day(2024, 1, 1), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 400, day(2024, 1, 2), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
		booking(theater, 400, day(2024, 1, 3), dbm.BookingStatusConfirmed, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		StartDate: "2024-01-01", EndDate: "2024-01-03", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.Data[0].AverageBookingValue; got != 77.78 {
		t.Fatalf("average booking value = %v, want 77.78", got)
	}
	if got := out.Summary.AverageRevenuePerPeriod; got != 344.44 {
		t.Fatalf("average revenue per period = %v, want 344.44", got)
	}
}

func TestGetRevenueStatsWeekAndMonthLabels(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 10, day(2024, 12, 31), dbm.BookingStatusUsed, dbm.PaymentStatusCompleted),
		booking(theater, 20, day(2025, 1, 2), dbm.BookingStatusUsed, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2025, 3, 15))

	week, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		Period: "week", StartDate: "2024-12-30", EndDate: "2025-01-05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week.Data) != 1 {
		t.Fatalf("expected one ISO week bucket, got %+v", week.Data)
	}
	wb := week.Data[0]
	if wb.Date != "2025-W1" || wb.Period.Year != 2025 || wb.Period.Week != 1 || wb.Revenue != 30 {
		t.Fatalf("unexpected week bucket: %+v", wb)
	}
	if week.Summary.PeriodType != "week" {
		t.Fatalf("period type = %q", week.Summary.PeriodType)
	}

	month, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		Period: "month", StartDate: "2024-12-01", EndDate: "2025-01-31", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(month.Data) != 2 || month.Data[0].Date != "2024-12" || month.Data[1].Date != "2025-01" {
		t.Fatalf("unexpected month buckets: %+v", month.Data)
	}
	if p := month.Data[1].Period; p.Year != 2025 || p.Month != 1 || p.Day != 0 {
		t.Fatalf("unexpected month period: %+v", p)
	}
}

func TestGetRevenueStatsInvertedRange(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	stats := &memRevenueStats{loc: ict, bookings: []dbm.Booking{
		booking(theater, 10, day(2024, 1, 5), dbm.BookingStatusUsed, dbm.PaymentStatusCompleted),
	}}
	svc := newTestRevenueService(ownedBy(staff, theater), stats, day(2024, 3, 15))

	out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{
		StartDate: "2024-01-10", EndDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Data) != 0 || out.Pagination.TotalPages != 0 || out.Summary.TotalRevenue != 0 {
		t.Fatalf("expected no buckets, got %+v", out)
	}
}

func TestGetRevenueStatsStorageErrors(t *testing.T) {
	staff, theater := uuid.New(), uuid.New()
	boom := errors.New("connection reset")

	t.Run("ownership lookup", func(t *testing.T) {
		theaters := fakeTheaterRepo{
			listIDsFn: func(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
				return nil, boom
			},
		}
		svc := newTestRevenueService(theaters, &memRevenueStats{loc: ict}, day(2024, 3, 15))
		_, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{})
		if !errors.Is(err, utils.ErrDatabaseError) || !errors.Is(err, boom) {
			t.Fatalf("expected wrapped database error, got %v", err)
		}
	})

	t.Run("aggregation", func(t *testing.T) {
		svc := newTestRevenueService(ownedBy(staff, theater), &memRevenueStats{loc: ict, err: boom}, day(2024, 3, 15))
		out, err := svc.GetRevenueStats(context.Background(), staff, request_models.RevenueStatsQuery{})
		if out != nil {
			t.Fatalf("expected no partial response, got %+v", out)
		}
		if !errors.Is(err, utils.ErrDatabaseError) || !errors.Is(err, boom) {
			t.Fatalf("expected wrapped database error, got %v", err)
		}
	})
}
