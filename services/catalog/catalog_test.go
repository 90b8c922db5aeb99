package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hotelms/models"
)

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
	if v, ok := fields["serviceName"].(string); ok {
		s.ServiceName = v
	}
	if v, ok := fields["category"].(string); ok {
		s.Category = v
	}
	if v, ok := fields["price"].(float64); ok {
		s.Price = v
	}
	if v, ok := fields["description"].(string); ok {
		s.Description = v
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

// fakeStorage records uploads and returns a deterministic URL.
type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) UploadFile(_ context.Context, localFilePath, destFolder string) (string, error) {
	f.uploads = append(f.uploads, localFilePath)
	return "https://cdn.example.com/" + destFolder + "/img.jpg", nil
}

func validInput() ServiceInput {
	return ServiceInput{
		ServiceName: "Deluxe Room 101",
		Category:    models.CategoryRoom,
		Type:        "Double",
		Price:       120,
		Description: "Sea view double room",
	}
}

func TestCreateService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}

	created, err := svc.CreateService(validInput())
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated ID")
	}

	fetched, err := svc.GetServiceByID(created.ID)
	if err != nil {
		t.Fatalf("GetServiceByID failed: %v", err)
	}
	if fetched.ServiceName != "Deluxe Room 101" {
		t.Errorf("ServiceName = %q", fetched.ServiceName)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}

	bad := validInput()
	bad.Category = "Penthouse"
	if _, err := svc.CreateService(bad); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("bad category: err = %v, want ErrInvalidCategory", err)
	}

	bad = validInput()
	bad.Price = 0
	if _, err := svc.CreateService(bad); err == nil {
		t.Error("zero price accepted")
	}

	bad = validInput()
	bad.ServiceName = ""
	if _, err := svc.CreateService(bad); err == nil {
		t.Error("empty name accepted")
	}
}

func TestUpdateService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}
	created, _ := svc.CreateService(validInput())

	updated, err := svc.UpdateService(created.ID, ServiceInput{Price: 150})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if updated.Price != 150 {
		t.Errorf("Price = %v, want 150", updated.Price)
	}
	if updated.ServiceName != created.ServiceName {
		t.Error("partial update clobbered name")
	}

	if _, err := svc.UpdateService(created.ID, ServiceInput{Category: "Penthouse"}); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("err = %v, want ErrInvalidCategory", err)
	}
	if _, err := svc.UpdateService("ghost", ServiceInput{Price: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeServiceRepo()}
	created, _ := svc.CreateService(validInput())

	if err := svc.DeleteService(created.ID); err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if err := svc.DeleteService(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestUploadServiceImage(t *testing.T) {
	store := &fakeStorage{}
	repo := newFakeServiceRepo()
	svc := &DefaultCatalogService{Repo: repo, Storage: store}
	created, _ := svc.CreateService(validInput())

	url, err := svc.UploadServiceImage(context.Background(), created.ID, "/tmp/img.jpg")
	if err != nil {
		t.Fatalf("UploadServiceImage failed: %v", err)
	}
	if url == "" {
		t.Error("expected image URL")
	}

	fetched, _ := svc.GetServiceByID(created.ID)
	if len(fetched.Images) != 1 || fetched.Images[0] != url {
		t.Errorf("Images = %v, want [%s]", fetched.Images, url)
	}

	if _, err := svc.UploadServiceImage(context.Background(), "ghost", "/tmp/img.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	bare := &DefaultCatalogService{Repo: repo}
	if _, err := bare.UploadServiceImage(context.Background(), created.ID, "/tmp/img.jpg"); !errors.Is(err, ErrUploadsDisabled) {
		t.Errorf("err = %v, want ErrUploadsDisabled", err)
	}
}
