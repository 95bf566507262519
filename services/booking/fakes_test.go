package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
)

// fakeCatalog is an in-memory CatalogRepository.
type fakeCatalog struct {
	packages map[string]models.Package
	rooms    []models.Room
	holidays map[string]bool
	extras   map[string]models.ExtraItem
	promos   map[string]models.PromoCode
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		packages: map[string]models.Package{},
		holidays: map[string]bool{},
		extras:   map[string]models.ExtraItem{},
		promos:   map[string]models.PromoCode{},
	}
}

func (f *fakeCatalog) GetPackage(_ context.Context, id string) (*models.Package, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, nil
	}
	return &pkg, nil
}

func (f *fakeCatalog) ListPackages(_ context.Context) ([]models.Package, error) {
	var out []models.Package
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) ListRooms(_ context.Context) ([]models.Room, error) {
	return f.rooms, nil
}

func (f *fakeCatalog) ListHolidays(_ context.Context, from, to string) ([]models.Holiday, error) {
	var out []models.Holiday
	for d := range f.holidays {
		if d >= from && d <= to {
			out = append(out, models.Holiday{Date: d})
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListExtraItems(_ context.Context) ([]models.ExtraItem, error) {
	var out []models.ExtraItem
	for _, it := range f.extras {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeCatalog) GetExtraItems(_ context.Context, ids []string) ([]models.ExtraItem, error) {
	var out []models.ExtraItem
	for _, id := range ids {
		if it, ok := f.extras[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetPromoByCode(_ context.Context, code string) (*models.PromoCode, error) {
	promo, ok := f.promos[code]
	if !ok {
		return nil, nil
	}
	return &promo, nil
}

// fakeBookings is an in-memory BookingRepository with the same transactional
// guarantees the Mongo implementation provides.
type fakeBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
	promos   *fakeCatalog // shared so usage increments are visible to reads
}

func newFakeBookings(catalog *fakeCatalog) *fakeBookings {
	return &fakeBookings{promos: catalog}
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) GetByToken(_ context.Context, token string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ChangeToken == token && token != "" {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) GetByPaymentRef(_ context.Context, ref string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].PaymentRef == ref {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) ListActiveByRoomDate(_ context.Context, roomID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Date == date && b.Status != models.StatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListActiveByRoomsDate(_ context.Context, roomIDs []string, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rooms := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		rooms[id] = true
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if rooms[b.RoomID] && b.Date == date && b.Status != models.StatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) conflictsLocked(roomID, date string, start, end int, excludeID string) bool {
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.Date != date || b.Status == models.StatusCancelled || b.ID == excludeID {
			continue
		}
		if b.Start < end && start < b.End {
			return true
		}
	}
	return false
}

// CreateWithPromo serializes writers under the mutex and re-checks for
// conflicts before inserting, the same contract the mongo implementation
// gets from its room-day guard document: of two racing creates for
// overlapping intervals exactly one wins.
func (f *fakeBookings) CreateWithPromo(_ context.Context, booking *models.Booking, promoCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictsLocked(booking.RoomID, booking.Date, booking.Start, booking.End, booking.ID) {
		return bookingRepo.ErrSlotTaken
	}
	if promoCode != "" {
		promo, ok := f.promos.promos[promoCode]
		if !ok {
			return bookingRepo.ErrPromoExhausted
		}
		if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
			return bookingRepo.ErrPromoExhausted
		}
		promo.UsedCount++
		f.promos.promos[promoCode] = promo
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookings) Reschedule(_ context.Context, id, token, roomID, date string, start, end int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictsLocked(roomID, date, start, end, id) {
		return bookingRepo.ErrSlotTaken
	}
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.ID == id && b.ChangeToken == token && token != "" && b.Status != models.StatusCancelled {
			b.RoomID = roomID
			b.Date = date
			b.Start = start
			b.End = end
			b.ChangeToken = ""
			return nil
		}
	}
	return bookingRepo.ErrTokenNotFound
}

func (f *fakeBookings) CancelByToken(_ context.Context, token string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.ChangeToken == token && token != "" {
			b.Status = models.StatusCancelled
			b.ChangeToken = ""
			out := *b
			return &out, nil
		}
	}
	return nil, bookingRepo.ErrTokenNotFound
}

func (f *fakeBookings) SetStatusByPaymentRef(_ context.Context, ref, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].PaymentRef == ref {
			f.bookings[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrPaymentRefNotFound
}

func (f *fakeBookings) ListStalePending(_ context.Context, before time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.StatusPending && b.CreatedAt.Before(before) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) DeleteByIDs(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if !drop[b.ID] {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

func (f *fakeBookings) EnsureIndexes(_ context.Context) error { return nil }

// fakeGateway is an in-memory payment.Gateway.
type fakeGateway struct {
	mu      sync.Mutex
	orders  int
	placed  map[string]bool
	failure error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{placed: map[string]bool{}}
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount float64, email, bookingID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failure != nil {
		return "", g.failure
	}
	g.orders++
	return "pi_" + bookingID, nil
}

func (g *fakeGateway) OrderPlaced(_ context.Context, ref string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failure != nil {
		return false, g.failure
	}
	return g.placed[ref], nil
}

// fakeMailer counts sends.
type fakeMailer struct {
	mu                                 sync.Mutex
	confirmed, rescheduled, cancelled int
}

func (m *fakeMailer) SendBookingConfirmed(_ context.Context, _ *models.Booking, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmed++
	return nil
}

func (m *fakeMailer) SendBookingRescheduled(_ context.Context, _ *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rescheduled++
	return nil
}

func (m *fakeMailer) SendBookingCancelled(_ context.Context, _ *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled++
	return nil
}

// testPolicy mirrors the production defaults with a fixed UTC calendar so
// tests never depend on the host timezone database.
func testPolicy() CalendarPolicy {
	return CalendarPolicy{
		WeekdayOpen:    10 * 60,
		WeekendOpen:    9 * 60,
		Close:          21 * 60,
		LeadTime:       60,
		SlotStep:       30,
		DefaultCleanup: 15,
		Location:       time.UTC,
	}
}

// testNow is well before the test dates so the lead-time filter stays out of
// the way unless a test opts in.
var testNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() (*DefaultBookingEngine, *fakeCatalog, *fakeBookings, *fakeGateway, *fakeMailer) {
	catalog := newFakeCatalog()
	bookings := newFakeBookings(catalog)
	gateway := newFakeGateway()
	mailer := &fakeMailer{}

	engine := NewDefaultBookingEngine(
		catalog, bookings, gateway, mailer,
		testPolicy(), 18*time.Minute, "http://localhost:8080",
	)
	engine.Now = func() time.Time { return testNow }

	catalog.packages["MEDIUM"] = models.Package{
		ID:              "MEDIUM",
		Name:            "Medium Session",
		DurationMinutes: 120,
		CleanupMinutes:  15,
		Price:           500,
		AllowedRoomIDs:  []string{"R1", "R2"},
		RoomPriority:    []string{"R1", "R2"},
	}
	catalog.rooms = []models.Room{{ID: "R1", Name: "Room One"}, {ID: "R2", Name: "Room Two"}}
	return engine, catalog, bookings, gateway, mailer
}

func catalogPackage(duration, cleanup int) models.Package {
	return models.Package{
		ID:              "PKG",
		DurationMinutes: duration,
		CleanupMinutes:  cleanup,
		Price:           100,
		AllowedRoomIDs:  []string{"R1"},
	}
}

func seedBooking(bookings *fakeBookings, id, room, date string, start, end int, status string) {
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID:        id,
		PackageID: "MEDIUM",
		RoomID:    room,
		Date:      date,
		Start:     start,
		End:       end,
		Status:    status,
		CreatedAt: testNow,
	})
}
