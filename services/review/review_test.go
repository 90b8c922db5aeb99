package review

import (
	"errors"
	"sync"
	"testing"

	reviewRepo "hotelms/database/repository/review"
	"hotelms/models"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(rv *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.UserID == rv.UserID && existing.ServiceID == rv.ServiceID {
			return reviewRepo.ErrDuplicate
		}
	}
	r.reviews = append(r.reviews, *rv)
	return nil
}

func (r *fakeReviewRepo) ListByService(serviceID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ServiceID == serviceID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) { return nil, nil }

func (r *fakeServiceRepo) Create(svc *models.Service) error { return nil }

func (r *fakeServiceRepo) UpdateFields(id string, f map[string]any) error { return nil }

func (r *fakeServiceRepo) Delete(id string) error { return nil }

func (r *fakeServiceRepo) AddImage(id, url string) error { return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Create(u *models.User) error { return nil }

func (r *fakeUserRepo) UpdateFields(id string, f map[string]any) error { return nil }

func (r *fakeUserRepo) Delete(id string) error { return nil }

func (r *fakeUserRepo) AppendNotification(id string, n models.Notification) error { return nil }

func newTestReviewService() *DefaultReviewService {
	return &DefaultReviewService{
		Repo: &fakeReviewRepo{},
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.Service{
			"s1": {ID: "s1", ServiceName: "Deluxe Room 101", Category: models.CategoryRoom, Price: 100},
		}},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Alice Mwangi"},
		}},
	}
}

func TestAddReview(t *testing.T) {
	svc := newTestReviewService()

	r, err := svc.AddReview("u1", "s1", 4, "Great stay")
	if err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if r.UserName != "Alice Mwangi" {
		t.Errorf("UserName = %q, want denormalized name", r.UserName)
	}

	reviews, err := svc.ListServiceReviews("s1")
	if err != nil {
		t.Fatalf("ListServiceReviews failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("got %d reviews, want 1", len(reviews))
	}
}

func TestAddReviewValidation(t *testing.T) {
	svc := newTestReviewService()

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.AddReview("u1", "s1", rating, "x"); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if _, err := svc.AddReview("u1", "s1", 3, ""); err == nil {
		t.Error("empty comment accepted")
	}
	if _, err := svc.AddReview("u1", "ghost", 3, "x"); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestAddReviewDuplicate(t *testing.T) {
	svc := newTestReviewService()

	if _, err := svc.AddReview("u1", "s1", 5, "First"); err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if _, err := svc.AddReview("u1", "s1", 2, "Changed my mind"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestListReviewsUnknownService(t *testing.T) {
	svc := newTestReviewService()
	if _, err := svc.ListServiceReviews("ghost"); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}
