package services

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	dbm "cinebook/internal/models/db_models"
	"cinebook/internal/repositories"
)

type fakeTheaterRepo struct {
	createFn  func(ctx context.Context, theater *dbm.Theater) error
	findFn    func(ctx context.Context, id uuid.UUID) (*dbm.Theater, error)
	listFn    func(ctx context.Context, managerID uuid.UUID) ([]dbm.Theater, error)
	listIDsFn func(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

func (f fakeTheaterRepo) Create(ctx context.Context, theater *dbm.Theater) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, theater)
}

func (f fakeTheaterRepo) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Theater, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(ctx, id)
}

func (f fakeTheaterRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]dbm.Theater, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, managerID)
}

func (f fakeTheaterRepo) ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	if f.listIDsFn == nil {
		return nil, nil
	}
	return f.listIDsFn(ctx, managerID)
}

// ownedBy answers ListIDsByManager for a single staff member.
func ownedBy(staffID uuid.UUID, theaterIDs ...uuid.UUID) fakeTheaterRepo {
	return fakeTheaterRepo{
		listIDsFn: func(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
			if managerID != staffID {
				return nil, nil
			}
			return theaterIDs, nil
		},
	}
}

type fakeAccountRepo struct {
	byEmail  map[string]*dbm.Account
	byID     map[uuid.UUID]*dbm.Account
	insertFn func(account *dbm.Account) error
}

func newFakeAccountRepo(accounts ...*dbm.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{byEmail: map[string]*dbm.Account{}, byID: map[uuid.UUID]*dbm.Account{}}
	for _, a := range accounts {
		f.byEmail[a.Email] = a
		f.byID[a.ID] = a
	}
	return f
}

func (f *fakeAccountRepo) InsertTx(account *dbm.Account, ctx context.Context) error {
	if f.insertFn != nil {
		if err := f.insertFn(account); err != nil {
			return err
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byEmail[account.Email] = account
	f.byID[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	return f.byEmail[email], nil
}

// memRevenueStats evaluates the revenue passes over an in-memory booking set,
// cutting buckets the way date_trunc does on the zoned booking time.
type memRevenueStats struct {
	bookings []dbm.Booking
	loc      *time.Location
	calls    atomic.Int32
	err      error
}

func (m *memRevenueStats) buckets(f repositories.RevenueFilter) []repositories.RevenueBucketRow {
	owned := map[uuid.UUID]bool{}
	for _, id := range f.TheaterIDs {
		owned[id] = true
	}

	index := map[time.Time]int{}
	var rows []repositories.RevenueBucketRow
	for _, b := range m.bookings {
		if !owned[b.TheaterID] || b.BookedAt.Before(f.Start) || b.BookedAt.After(f.End) {
			continue
		}
		if !dbm.IsRevenueCountable(b.Status, b.PaymentStatus) {
			continue
		}
		key := truncLocal(b.BookedAt.In(m.loc), f.Granularity)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, repositories.RevenueBucketRow{BucketStart: key})
		}
		rows[i].Revenue += b.TotalAmount
		rows[i].BookingsCount++
	}
	return rows
}

func truncLocal(t time.Time, g repositories.Granularity) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case repositories.GranularityWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case repositories.GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func (m *memRevenueStats) CountRevenueBuckets(ctx context.Context, f repositories.RevenueFilter) (int64, error) {
	m.calls.Add(1)
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.buckets(f))), nil
}

func (m *memRevenueStats) ListRevenueBuckets(ctx context.Context, f repositories.RevenueFilter, s repositories.RevenueSort, offset, limit int) ([]repositories.RevenueBucketRow, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	rows := m.buckets(f)
	less := func(a, b repositories.RevenueBucketRow) bool {
		switch s.Field {
		case repositories.SortByRevenue:
			if a.Revenue != b.Revenue {
				return a.Revenue < b.Revenue
			}
		case repositories.SortByBookings:
			if a.BookingsCount != b.BookingsCount {
				return a.BookingsCount < b.BookingsCount
			}
		}
		return a.BucketStart.Before(b.BucketStart)
	}
	sort.Slice(rows, func(i, j int) bool {
		if s.Desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	if offset >= len(rows) {
		return nil, nil
	}
	end := len(rows)
	if limit < end-offset {
		end = offset + limit
	}
	return rows[offset:end], nil
}

func (m *memRevenueStats) SumRevenue(ctx context.Context, f repositories.RevenueFilter) (repositories.RevenueTotalsRow, error) {
	m.calls.Add(1)
	if m.err != nil {
		return repositories.RevenueTotalsRow{}, m.err
	}
	var out repositories.RevenueTotalsRow
	for _, r := range m.buckets(f) {
		out.TotalRevenue += r.Revenue
		out.TotalBookings += r.BookingsCount
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*dbm.Booking
	listFn   func(theaterIDs []uuid.UUID, status dbm.BookingStatus, page, pageSize int) ([]dbm.Booking, int64, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *dbm.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if f.bookings == nil {
		f.bookings = map[uuid.UUID]*dbm.Booking{}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ListByTheaters(ctx context.Context, theaterIDs []uuid.UUID, status dbm.BookingStatus, page, pageSize int) ([]dbm.Booking, int64, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(theaterIDs, status, page, pageSize)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.BookingStatus, payment dbm.PaymentStatus) error {
	b := f.bookings[id]
	if status != "" {
		b.Status = status
	}
	if payment != "" {
		b.PaymentStatus = payment
	}
	return nil
}
