package booking

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	bookingRepo "hotelms/database/repository/booking"
	"hotelms/models"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) FindOverlapping(serviceID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID || b.ID == excludeID || !b.Active() {
			continue
		}
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ExistsByReference(ref string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingReference == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAllDetailed() ([]models.BookingDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BookingDetail
	for _, b := range r.bookings {
		out = append(out, models.BookingDetail{Booking: *b})
	}
	return out, nil
}

func (r *fakeBookingRepo) RevenueStats() (*models.RevenueStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.RevenueStats{}
	for _, b := range r.bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		stats.TotalRevenue += b.TotalPrice
		stats.TotalBookings++
	}
	if stats.TotalBookings > 0 {
		stats.AvgPrice = stats.TotalRevenue / float64(stats.TotalBookings)
	}
	return stats, nil
}

// fakeServiceRepo is an in-memory ServiceRepository.
type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) UpdateFields(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil
	}
	if v, ok := fields["price"].(float64); ok {
		s.Price = v
	}
	if v, ok := fields["serviceName"].(string); ok {
		s.ServiceName = v
	}
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) AddImage(id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok {
		s.Images = append(s.Images, url)
	}
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateFields(id string, fields map[string]any) error {
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AppendNotification(id string, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Notifications = append(u.Notifications, n)
	}
	return nil
}

func newTestEngine() (*DefaultBookingEngine, *fakeBookingRepo, *fakeServiceRepo, *fakeUserRepo) {
	bookings := newFakeBookingRepo()
	services := newFakeServiceRepo()
	users := newFakeUserRepo()
	engine := NewDefaultBookingEngine(bookings, services, users, nil, nil, nil)
	return engine, bookings, services, users
}

func seedGuestAndRoom(services *fakeServiceRepo, users *fakeUserRepo) {
	users.Create(&models.User{ID: "u1", Name: "Alice Mwangi", Email: "alice@example.com", Role: models.RoleCustomer})
	services.Create(&models.Service{ID: "s1", ServiceName: "Deluxe Room 101", Category: models.CategoryRoom, Price: 100})
}

func TestCreateBookingPricesStay(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID:       "u1",
		ServiceID:    "s1",
		CheckInDate:  "2026-01-01",
		CheckOutDate: "2026-01-03",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if b.TotalPrice != 200 {
		t.Errorf("TotalPrice = %v, want 200", b.TotalPrice)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", b.Status)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(b.BookingReference) {
		t.Errorf("BookingReference = %q, want 6 digits", b.BookingReference)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)
	users.Create(&models.User{ID: "u2", Name: "Brian Otieno", Email: "brian@example.com", Role: models.RoleCustomer})

	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-01-10", CheckOutDate: "2026-01-15",
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u2", ServiceID: "s1", CheckInDate: "2026-01-12", CheckOutDate: "2026-01-14",
	})
	if CodeOf(err) != CodeConflict {
		t.Errorf("overlapping booking: code = %q, want conflict", CodeOf(err))
	}

	// Back-to-back stays share a boundary day and must not conflict.
	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u2", ServiceID: "s1", CheckInDate: "2026-01-15", CheckOutDate: "2026-01-17",
	}); err != nil {
		t.Errorf("adjacent booking rejected: %v", err)
	}
}

func TestCreateBookingInvalidDates(t *testing.T) {
	engine, bookings, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"checkout before checkin", "2026-01-10", "2026-01-05"},
		{"equal dates", "2026-01-10", "2026-01-10"},
		{"garbage checkin", "not-a-date", "2026-01-10"},
		{"missing checkout", "2026-01-10", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.CreateBooking(context.Background(), CreateBookingInput{
				UserID: "u1", ServiceID: "s1", CheckInDate: tc.checkIn, CheckOutDate: tc.checkOut,
			})
			if CodeOf(err) != CodeInvalidInput {
				t.Errorf("code = %q, want invalidInput", CodeOf(err))
			}
		})
	}

	if len(bookings.bookings) != 0 {
		t.Errorf("invalid requests persisted %d bookings", len(bookings.bookings))
	}
}

func TestCreateBookingUnknownUserOrService(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	_, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "ghost", ServiceID: "s1", CheckInDate: "2026-01-01", CheckOutDate: "2026-01-02",
	})
	if CodeOf(err) != CodeNotFound {
		t.Errorf("unknown user: code = %q, want notFound", CodeOf(err))
	}

	_, err = engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "ghost", CheckInDate: "2026-01-01", CheckOutDate: "2026-01-02",
	})
	if CodeOf(err) != CodeNotFound {
		t.Errorf("unknown service: code = %q, want notFound", CodeOf(err))
	}
}

func TestDeleteBookingFreesInterval(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-02-01", CheckOutDate: "2026-02-05",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if err := engine.DeleteBooking(b.ID); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}

	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-02-01", CheckOutDate: "2026-02-05",
	}); err != nil {
		t.Errorf("rebooking freed interval failed: %v", err)
	}

	if err := engine.DeleteBooking(b.ID); CodeOf(err) != CodeNotFound {
		t.Errorf("second delete: code = %q, want notFound", CodeOf(err))
	}
}

func TestUpdateBookingInvalidDateFails(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-03-01", CheckOutDate: "2026-03-03",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	_, err = engine.UpdateBooking(b.ID, UpdateBookingInput{CheckInDate: "bogus"})
	if CodeOf(err) != CodeInvalidInput {
		t.Errorf("code = %q, want invalidInput", CodeOf(err))
	}

	// The stored booking keeps its original dates.
	kept, _ := engine.BookingRepo.GetByID(b.ID)
	if !kept.CheckIn.Equal(b.CheckIn) || !kept.CheckOut.Equal(b.CheckOut) {
		t.Error("failed update mutated stored dates")
	}
}

func TestUpdateBookingRepricesAtCurrentRate(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-04-01", CheckOutDate: "2026-04-03",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	services.UpdateFields("s1", map[string]any{"price": 150.0})

	updated, err := engine.UpdateBooking(b.ID, UpdateBookingInput{
		CheckInDate: "2026-04-01", CheckOutDate: "2026-04-04",
	})
	if err != nil {
		t.Fatalf("UpdateBooking failed: %v", err)
	}
	if updated.TotalPrice != 450 {
		t.Errorf("TotalPrice = %v, want 450 (3 days at new rate)", updated.TotalPrice)
	}
}

func TestUpdateBookingOverlapExcludesSelf(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-05-01", CheckOutDate: "2026-05-05",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// Shrinking the same stay overlaps only itself and must succeed.
	if _, err := engine.UpdateBooking(b.ID, UpdateBookingInput{
		CheckInDate: "2026-05-02", CheckOutDate: "2026-05-04",
	}); err != nil {
		t.Errorf("self-overlapping update failed: %v", err)
	}
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-06-01", CheckOutDate: "2026-06-02",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if _, err := engine.UpdateBooking(b.ID, UpdateBookingInput{Status: "teleported"}); CodeOf(err) != CodeInvalidInput {
		t.Errorf("bad status: code = %q, want invalidInput", CodeOf(err))
	}
	updated, err := engine.UpdateBooking(b.ID, UpdateBookingInput{Status: models.BookingStatusCancelled})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if updated.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q, want cancelled", updated.Status)
	}
}

func TestReactivatingBookingChecksOverlap(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)
	users.Create(&models.User{ID: "u2", Name: "Brian Otieno", Email: "brian@example.com", Role: models.RoleCustomer})

	first, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-11-01", CheckOutDate: "2026-11-05",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if _, err := engine.UpdateBooking(first.ID, UpdateBookingInput{Status: models.BookingStatusCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// The freed interval is taken by someone else.
	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u2", ServiceID: "s1", CheckInDate: "2026-11-02", CheckOutDate: "2026-11-04",
	}); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	// A status-only flip back to confirmed must re-check the interval.
	_, err = engine.UpdateBooking(first.ID, UpdateBookingInput{Status: models.BookingStatusConfirmed})
	if CodeOf(err) != CodeConflict {
		t.Errorf("reactivating over an active booking: code = %q, want conflict", CodeOf(err))
	}
	kept, _ := engine.BookingRepo.GetByID(first.ID)
	if kept.Active() {
		t.Error("failed reactivation left the booking active")
	}
}

func TestReactivatingBookingWithFreeInterval(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-11-10", CheckOutDate: "2026-11-12",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if _, err := engine.UpdateBooking(b.ID, UpdateBookingInput{Status: models.BookingStatusCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	updated, err := engine.UpdateBooking(b.ID, UpdateBookingInput{Status: models.BookingStatusConfirmed})
	if err != nil {
		t.Fatalf("reactivation over a free interval failed: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", updated.Status)
	}
}

func TestCancelledBookingDoesNotBlock(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-07-01", CheckOutDate: "2026-07-05",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if _, err := engine.UpdateBooking(b.ID, UpdateBookingInput{Status: models.BookingStatusCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-07-02", CheckOutDate: "2026-07-04",
	}); err != nil {
		t.Errorf("booking over cancelled stay failed: %v", err)
	}
}

func TestGetBookingAccess(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)
	users.Create(&models.User{ID: "u2", Name: "Brian Otieno", Email: "brian@example.com", Role: models.RoleCustomer})

	b, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-08-01", CheckOutDate: "2026-08-02",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if _, err := engine.GetBooking(b.ID, "u1", models.RoleCustomer); err != nil {
		t.Errorf("owner denied: %v", err)
	}
	if _, err := engine.GetBooking(b.ID, "u2", models.RoleCustomer); CodeOf(err) != CodeForbidden {
		t.Errorf("stranger: code = %q, want forbidden", CodeOf(err))
	}
	detail, err := engine.GetBooking(b.ID, "admin-1", models.RoleAdmin)
	if err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if detail.User == nil || detail.User.Name != "Alice Mwangi" {
		t.Error("missing user summary on detail")
	}
	if detail.Service == nil || detail.Service.ServiceName != "Deluxe Room 101" {
		t.Error("missing service summary on detail")
	}

	// Once the owner account is gone only elevated roles may view.
	users.Delete("u1")
	if _, err := engine.GetBooking(b.ID, "u1", models.RoleCustomer); CodeOf(err) != CodeForbidden {
		t.Errorf("orphaned booking for customer: code = %q, want forbidden", CodeOf(err))
	}
	if _, err := engine.GetBooking(b.ID, "admin-1", models.RoleManager); err != nil {
		t.Errorf("orphaned booking for manager: %v", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	ok, err := engine.CheckAvailability("s1", "2026-09-01", "2026-09-05")
	if err != nil || !ok {
		t.Errorf("empty calendar: available = %v, err = %v", ok, err)
	}

	if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05",
	}); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	ok, err = engine.CheckAvailability("s1", "2026-09-03", "2026-09-06")
	if err != nil || ok {
		t.Errorf("overlapping range: available = %v, err = %v", ok, err)
	}

	if _, err := engine.CheckAvailability("ghost", "2026-09-01", "2026-09-02"); CodeOf(err) != CodeNotFound {
		t.Errorf("unknown service: code = %q, want notFound", CodeOf(err))
	}
}

func TestConcurrentCreateBookingSameInterval(t *testing.T) {
	engine, bookings, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.CreateBooking(context.Background(), CreateBookingInput{
				UserID: "u1", ServiceID: "s1", CheckInDate: "2026-12-01", CheckOutDate: "2026-12-05",
			})
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case CodeOf(err) == CodeConflict:
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d concurrent requests succeeded, want exactly 1", succeeded)
	}
	if conflicted != n-1 {
		t.Errorf("%d requests conflicted, want %d", conflicted, n-1)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("store holds %d bookings, want 1", len(bookings.bookings))
	}
}

func TestConcurrentCreateBookingUniqueReferences(t *testing.T) {
	engine, bookings, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	// Disjoint intervals so every request succeeds.
	const n = 12
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			checkIn := date("2027-01-01").AddDate(0, 0, i*3)
			_, errs[i] = engine.CreateBooking(context.Background(), CreateBookingInput{
				UserID:       "u1",
				ServiceID:    "s1",
				CheckInDate:  checkIn.Format("2006-01-02"),
				CheckOutDate: checkIn.AddDate(0, 0, 2).Format("2006-01-02"),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	refs := make(map[string]bool)
	for _, b := range bookings.bookings {
		if refs[b.BookingReference] {
			t.Errorf("duplicate booking reference %q", b.BookingReference)
		}
		refs[b.BookingReference] = true
	}
	if len(refs) != n {
		t.Errorf("got %d distinct references, want %d", len(refs), n)
	}
}

func TestRevenueStats(t *testing.T) {
	engine, _, services, users := newTestEngine()
	seedGuestAndRoom(services, users)

	stats, err := engine.GetRevenueStats(context.Background())
	if err != nil {
		t.Fatalf("GetRevenueStats failed: %v", err)
	}
	if stats.TotalRevenue != 0 || stats.TotalBookings != 0 || stats.AvgPrice != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	for _, dates := range [][2]string{
		{"2026-10-01", "2026-10-03"}, // 200
		{"2026-10-05", "2026-10-08"}, // 300
	} {
		if _, err := engine.CreateBooking(context.Background(), CreateBookingInput{
			UserID: "u1", ServiceID: "s1", CheckInDate: dates[0], CheckOutDate: dates[1],
		}); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	stats, err = engine.GetRevenueStats(context.Background())
	if err != nil {
		t.Fatalf("GetRevenueStats failed: %v", err)
	}
	if stats.TotalRevenue != 500 || stats.TotalBookings != 2 || stats.AvgPrice != 250 {
		t.Errorf("stats = %+v, want revenue 500, bookings 2, avg 250", stats)
	}
}
