package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	"barberpro/models"
)

// memProviderRepo is an in-memory ProviderRepository for service tests.
type memProviderRepo struct {
	mu         sync.Mutex
	providers  map[string]*models.Provider
	exceptions []models.ScheduleException
	templates  map[string]*models.ScheduleTemplate
}

func newMemProviderRepo() *memProviderRepo {
	return &memProviderRepo{
		providers: make(map[string]*models.Provider),
		templates: make(map[string]*models.ScheduleTemplate),
	}
}

func (r *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProviderRepo) UpdateWorkingHours(id string, hours models.WorkingHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.providers[id]; ok {
		p.WorkingHours = hours
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *memProviderRepo) ListExceptions(id string) ([]models.ScheduleException, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ScheduleException
	for _, e := range r.exceptions {
		if e.ProviderID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memProviderRepo) AddException(exc *models.ScheduleException) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exceptions = append(r.exceptions, *exc)
	return nil
}

func (r *memProviderRepo) CreateTemplate(t *models.ScheduleTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *memProviderRepo) GetTemplate(id string) (*models.ScheduleTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

// memBookingRepo is an in-memory BookingRepository.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) ListByProviderDate(providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByProviderDateRange(providerID, from, to string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date >= from && b.Date <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListPendingCreatedBefore(cutoff time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.StatusPending && !b.CreatedAt.After(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) Search(q models.BookingSearchQuery) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if q.ProviderID != "" && b.ProviderID != q.ProviderID {
			continue
		}
		if q.ClientID != "" && b.ClientID != q.ClientID {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

// memCatalogRepo is an in-memory ServiceRepository.
type memCatalogRepo struct {
	services map[string]*models.Service
}

func (r *memCatalogRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memCatalogRepo) ListByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func testFixtures(t *testing.T) (*memProviderRepo, *memBookingRepo, *memCatalogRepo) {
	t.Helper()
	day := models.DayHours{
		IsOpen:    true,
		OpenTime:  tod(t, "09:00"),
		CloseTime: tod(t, "17:00"),
		Breaks: []models.BreakWindow{
			{Start: tod(t, "13:00"), End: tod(t, "14:00")},
		},
	}
	providers := newMemProviderRepo()
	providers.providers["prov-1"] = &models.Provider{
		ID:           "prov-1",
		BusinessName: "Corte Clásico",
		Timezone:     "UTC",
		WorkingHours: models.WorkingHours{
			models.Monday:    day,
			models.Tuesday:   day,
			models.Wednesday: day,
			models.Thursday:  day,
			models.Friday:    day,
		},
		IsActive: true,
	}
	catalog := &memCatalogRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", ProviderID: "prov-1", Name: "Corte de pelo", Duration: 30, Price: 1500, IsActive: true},
		"svc-2": {ID: "svc-2", ProviderID: "prov-1", Name: "Corte y barba", Duration: 60, Price: 2500, IsActive: true},
	}}
	return providers, newMemBookingRepo(), catalog
}

func newTestService(t *testing.T) (*DefaultBookingService, *memBookingRepo) {
	t.Helper()
	providers, bookings, catalog := testFixtures(t)
	svc := NewBookingService(bookings, providers, catalog, nil, Options{
		SlotStep:          15 * time.Minute,
		SuggestionCount:   3,
		PendingExpiration: 2 * time.Hour,
		BulkLimit:         50,
		DefaultTimezone:   "UTC",
	})
	return svc, bookings
}

func TestGetAvailabilityEndToEnd(t *testing.T) {
	svc, repo := newTestService(t)

	// Pre-book 10:00-10:30 on the Monday under test.
	repo.Create(&models.Booking{
		ID: "bk-1", ProviderID: "prov-1", ServiceID: "svc-1",
		Date: "2026-09-07", StartTime: at(10, 0), EndTime: at(10, 30),
		Status: models.StatusConfirmed,
	})

	avail, err := svc.GetAvailability("prov-1", "svc-1", "2026-09-07")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if avail.Count != len(avail.Slots) || avail.Count == 0 {
		t.Fatalf("bad slot count %d vs %d slots", avail.Count, len(avail.Slots))
	}
	if avail.WorkingHours == nil || avail.WorkingHours.OpenTime.String() != "09:00" {
		t.Fatalf("working hours = %+v", avail.WorkingHours)
	}
	for _, s := range avail.Slots {
		if s.Start.Equal(at(10, 0)) || s.Start.Equal(at(10, 15)) {
			t.Errorf("slot %s overlaps the existing booking", s.Start.Format("15:04"))
		}
	}
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetAvailability("prov-1", "svc-nope", "2026-09-07")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateBookingLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	req := models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-1",
		StartTime: at(10, 0),
	}

	b, err := svc.CreateBooking(req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.Status != models.StatusPending {
		t.Fatalf("status = %s, want PENDING", b.Status)
	}
	if !b.EndTime.Equal(at(10, 30)) {
		t.Fatalf("endTime = %v, want 10:30 (30-minute service)", b.EndTime)
	}
	if b.TotalAmount != 1500 {
		t.Fatalf("totalAmount = %v", b.TotalAmount)
	}
	if len(b.Timeline) != 1 || b.Timeline[0].Event != "created" {
		t.Fatalf("timeline = %+v", b.Timeline)
	}

	// The same interval is now taken.
	_, err = svc.CreateBooking(req)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.Report.PrimaryType() != models.ConflictOverlap {
		t.Fatalf("primary = %s", ce.Report.PrimaryType())
	}
	if len(ce.Report.SuggestedSlots) == 0 {
		t.Fatal("conflict report must suggest alternatives")
	}
}

func TestCreateBookingAutoConfirm(t *testing.T) {
	providers, bookings, catalog := testFixtures(t)
	svc := NewBookingService(bookings, providers, catalog, nil, Options{
		SlotStep: 15 * time.Minute, AutoConfirm: true, DefaultTimezone: "UTC",
	})

	b, err := svc.CreateBooking(models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-1", StartTime: at(11, 0),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("status = %s, want CONFIRMED", b.Status)
	}
	if len(b.Timeline) != 2 || b.Timeline[1].Event != "confirmed" {
		t.Fatalf("timeline = %+v", b.Timeline)
	}
}

func TestCreateBookingConcurrentClaims(t *testing.T) {
	svc, _ := newTestService(t)
	req := models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-x",
		StartTime: at(15, 0),
	}

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(req)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("%d concurrent claims won the same slot, want exactly 1", won)
	}
}

func TestRescheduleExcludesSelf(t *testing.T) {
	svc, _ := newTestService(t)
	b, err := svc.CreateBooking(models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-1", StartTime: at(10, 0),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	// Move 15 minutes later; the new interval overlaps the old one, which must
	// not count as a conflict.
	updated, err := svc.Reschedule(b.ID, models.RescheduleRequest{
		NewStartTime: at(10, 15), Actor: "client-1",
	})
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !updated.StartTime.Equal(at(10, 15)) || !updated.EndTime.Equal(at(10, 45)) {
		t.Fatalf("rescheduled to %v-%v", updated.StartTime, updated.EndTime)
	}
	last := updated.Timeline[len(updated.Timeline)-1]
	if last.Event != "rescheduled" {
		t.Fatalf("timeline = %+v", updated.Timeline)
	}
}

func TestRescheduleWithServiceChange(t *testing.T) {
	svc, _ := newTestService(t)
	b, err := svc.CreateBooking(models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-1", StartTime: at(10, 0),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	updated, err := svc.Reschedule(b.ID, models.RescheduleRequest{
		NewStartTime: at(14, 0), NewServiceID: "svc-2",
	})
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !updated.EndTime.Equal(at(15, 0)) {
		t.Fatalf("endTime = %v, want 15:00 (60-minute service)", updated.EndTime)
	}
	if updated.TotalAmount != 2500 {
		t.Fatalf("totalAmount = %v, want the new service's price", updated.TotalAmount)
	}
}

func TestRescheduleRejectsTerminalStates(t *testing.T) {
	svc, repo := newTestService(t)
	repo.Create(&models.Booking{
		ID: "done", ProviderID: "prov-1", ServiceID: "svc-1",
		Date: "2026-09-07", StartTime: at(10, 0), EndTime: at(10, 30),
		Status: models.StatusCompleted,
	})

	_, err := svc.Reschedule("done", models.RescheduleRequest{NewStartTime: at(11, 0)})
	var ite *IllegalTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("expected IllegalTransitionError, got %v", err)
	}
}

func TestBulkUpdatePartialFailure(t *testing.T) {
	svc, repo := newTestService(t)
	base := models.Booking{
		ProviderID: "prov-1", ServiceID: "svc-1", Date: "2026-09-07",
		StartTime: at(10, 0), EndTime: at(10, 30),
	}
	for i, status := range []models.BookingStatus{
		models.StatusPending, models.StatusPending, models.StatusPending,
		models.StatusPending, models.StatusCompleted,
	} {
		b := base
		b.ID = string(rune('a' + i))
		b.Status = status
		repo.Create(&b)
	}

	result, err := svc.BulkUpdate(models.BulkUpdateRequest{
		BookingIDs: []string{"a", "b", "c", "d", "e"},
		Action:     models.ActionCancel,
		Reason:     "provider closed early",
	})
	if err != nil {
		t.Fatalf("BulkUpdate: %v", err)
	}
	if result.Summary.Total != 5 || result.Summary.Successful != 4 || result.Summary.Failed != 1 {
		t.Fatalf("summary = %+v", result.Summary)
	}
	if len(result.Failed) != 1 || result.Failed[0].BookingID != "e" {
		t.Fatalf("failed = %+v", result.Failed)
	}
}

func TestBulkUpdateLimitEnforced(t *testing.T) {
	providers, bookings, catalog := testFixtures(t)
	svc := NewBookingService(bookings, providers, catalog, nil, Options{BulkLimit: 2, DefaultTimezone: "UTC"})

	_, err := svc.BulkUpdate(models.BulkUpdateRequest{
		BookingIDs: []string{"a", "b", "c"},
		Action:     models.ActionCancel,
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSweepExpirations(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	repo.Create(&models.Booking{
		ID: "stale", ProviderID: "prov-1", Date: "2026-09-07",
		StartTime: at(10, 0), EndTime: at(10, 30),
		Status: models.StatusPending, CreatedAt: now.Add(-3 * time.Hour),
	})
	repo.Create(&models.Booking{
		ID: "fresh", ProviderID: "prov-1", Date: "2026-09-07",
		StartTime: at(11, 0), EndTime: at(11, 30),
		Status: models.StatusPending, CreatedAt: now.Add(-1 * time.Hour),
	})
	repo.Create(&models.Booking{
		ID: "confirmed", ProviderID: "prov-1", Date: "2026-09-07",
		StartTime: at(12, 0), EndTime: at(12, 30),
		Status: models.StatusConfirmed, CreatedAt: now.Add(-5 * time.Hour),
	})

	expired, err := svc.SweepExpirations(now)
	if err != nil {
		t.Fatalf("SweepExpirations: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expired = %d, want 1", expired)
	}

	stale, _ := repo.GetByID("stale")
	if stale.Status != models.StatusCancelled || stale.CancelReason != models.CancelReasonExpired {
		t.Fatalf("stale booking = %+v", stale)
	}
	fresh, _ := repo.GetByID("fresh")
	if fresh.Status != models.StatusPending {
		t.Fatalf("fresh booking expired prematurely: %s", fresh.Status)
	}

	// Running the sweep again finds nothing new.
	expired, err = svc.SweepExpirations(now)
	if err != nil || expired != 0 {
		t.Fatalf("second sweep = (%d, %v), want (0, nil)", expired, err)
	}
}

func TestUpdateStatusFlow(t *testing.T) {
	svc, _ := newTestService(t)
	b, err := svc.CreateBooking(models.BookingRequest{
		ProviderID: "prov-1", ServiceID: "svc-1", ClientID: "client-1", StartTime: at(10, 0),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	for _, action := range []models.BookingAction{models.ActionConfirm, models.ActionStart, models.ActionComplete} {
		if b, err = svc.UpdateStatus(b.ID, action, "", "provider-1"); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", action, err)
		}
	}
	if b.Status != models.StatusCompleted {
		t.Fatalf("status = %s", b.Status)
	}
	// created, confirmed, started, completed.
	if len(b.Timeline) != 4 {
		t.Fatalf("timeline = %+v", b.Timeline)
	}
}
