package service

import (
	"context"
	"errors"
	"io"
	"testing"

	catalogerrors "campusbook/internal/catalog/errors"
	"campusbook/internal/catalog/validator"
	"campusbook/pkg/config"
	mongotx "campusbook/pkg/db/mongo"
	apperrors "campusbook/pkg/errors"
	"campusbook/pkg/logger"
	"campusbook/pkg/model"
)

type mockFacilityRepository struct {
	createFunc   func(ctx context.Context, facility *model.Facility) error
	findByIDFunc func(ctx context.Context, id string) (*model.Facility, error)
	findAllFunc  func(ctx context.Context) ([]*model.Facility, error)
	updateFunc   func(ctx context.Context, id string, facility *model.Facility) error
	deleteFunc   func(ctx context.Context, id string) error
	countFunc    func(ctx context.Context) (int64, error)

	created []*model.Facility
}

func (m *mockFacilityRepository) Create(ctx context.Context, facility *model.Facility) error {
	m.created = append(m.created, facility)
	if m.createFunc != nil {
		return m.createFunc(ctx, facility)
	}
	return nil
}

func (m *mockFacilityRepository) FindByID(ctx context.Context, id string) (*model.Facility, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockFacilityRepository) FindAll(ctx context.Context) ([]*model.Facility, error) {
	return m.findAllFunc(ctx)
}

func (m *mockFacilityRepository) Update(ctx context.Context, id string, facility *model.Facility) error {
	return m.updateFunc(ctx, id, facility)
}

func (m *mockFacilityRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockFacilityRepository) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

func (m *mockFacilityRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(ctx)
}

type mockMediaRepository struct {
	createFunc   func(ctx context.Context, media *model.MediaResource) error
	findByIDFunc func(ctx context.Context, id string) (*model.MediaResource, error)
	findAllFunc  func(ctx context.Context) ([]*model.MediaResource, error)
	updateFunc   func(ctx context.Context, id string, media *model.MediaResource) error
	deleteFunc   func(ctx context.Context, id string) error
	countFunc    func(ctx context.Context) (int64, error)

	created []*model.MediaResource
}

func (m *mockMediaRepository) Create(ctx context.Context, media *model.MediaResource) error {
	m.created = append(m.created, media)
	if m.createFunc != nil {
		return m.createFunc(ctx, media)
	}
	return nil
}

func (m *mockMediaRepository) FindByID(ctx context.Context, id string) (*model.MediaResource, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockMediaRepository) FindAll(ctx context.Context) ([]*model.MediaResource, error) {
	return m.findAllFunc(ctx)
}

func (m *mockMediaRepository) Update(ctx context.Context, id string, media *model.MediaResource) error {
	return m.updateFunc(ctx, id, media)
}

func (m *mockMediaRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockMediaRepository) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:  logger.ERROR,
			Format: logger.TEXT,
			Output: io.Discard,
		}),
	}
}

func newTestService(facilities *mockFacilityRepository, media *mockMediaRepository) CatalogService {
	cfg := testConfig()
	return NewCatalogService(facilities, media, validator.NewCatalogValidator(cfg.Log), cfg)
}

func TestEnsureSeedPopulatesEmptyCatalog(t *testing.T) {
	facilities := &mockFacilityRepository{
		countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	media := &mockMediaRepository{
		countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}

	svc := newTestService(facilities, media)
	if err := svc.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("EnsureSeed failed: %v", err)
	}

	if len(facilities.created) == 0 {
		t.Error("expected seed facilities to be created")
	}
	if len(media.created) == 0 {
		t.Error("expected seed media resources to be created")
	}
}

func TestEnsureSeedSkipsPopulatedCatalog(t *testing.T) {
	tests := []struct {
		name          string
		facilityCount int64
		mediaCount    int64
	}{
		{"facilities present", 3, 0},
		{"media present", 0, 2},
		{"both present", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facilities := &mockFacilityRepository{
				countFunc: func(ctx context.Context) (int64, error) { return tt.facilityCount, nil },
			}
			media := &mockMediaRepository{
				countFunc: func(ctx context.Context) (int64, error) { return tt.mediaCount, nil },
			}

			svc := newTestService(facilities, media)
			if err := svc.EnsureSeed(context.Background()); err != nil {
				t.Fatalf("EnsureSeed failed: %v", err)
			}

			if len(facilities.created) != 0 || len(media.created) != 0 {
				t.Error("seed must be a no-op when the catalog already holds data")
			}
		})
	}
}

func TestCreateFacilityValidation(t *testing.T) {
	svc := newTestService(&mockFacilityRepository{}, &mockMediaRepository{})

	err := svc.CreateFacility(context.Background(), &model.Facility{Name: "x"})
	if err == nil {
		t.Fatal("expected validation error for too-short name")
	}

	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestGetFacilityMapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"not found", catalogerrors.ErrFacilityNotFound, apperrors.CodeNotFound},
		{"invalid id", catalogerrors.ErrInvalidID, apperrors.CodeInvalidInput},
		{"internal", errors.New("boom"), apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facilities := &mockFacilityRepository{
				findByIDFunc: func(ctx context.Context, id string) (*model.Facility, error) {
					return nil, tt.repoErr
				},
			}

			svc := newTestService(facilities, &mockMediaRepository{})
			_, err := svc.GetFacility(context.Background(), "64f000000000000000000001")
			if err == nil {
				t.Fatal("expected error")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdateFacilityMergesFields(t *testing.T) {
	existing := &model.Facility{
		ID:       "64f000000000000000000001",
		Name:     "Main Auditorium",
		Capacity: 600,
		Location: "Central Block",
	}

	var persisted *model.Facility
	facilities := &mockFacilityRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Facility, error) {
			clone := *existing
			return &clone, nil
		},
		updateFunc: func(ctx context.Context, id string, facility *model.Facility) error {
			persisted = facility
			return nil
		},
	}

	capacity := 550
	svc := newTestService(facilities, &mockMediaRepository{})
	updated, err := svc.UpdateFacility(context.Background(), existing.ID, &model.FacilityUpdate{
		Capacity: &capacity,
	})
	if err != nil {
		t.Fatalf("UpdateFacility failed: %v", err)
	}

	if updated.Capacity != 550 {
		t.Errorf("capacity = %d, want 550", updated.Capacity)
	}
	if updated.Name != "Main Auditorium" {
		t.Errorf("name = %q, unchanged fields must survive the merge", updated.Name)
	}
	if persisted == nil || persisted.Capacity != 550 {
		t.Error("merged facility was not persisted")
	}
}

func TestCreateMediaNormalizesCategory(t *testing.T) {
	media := &mockMediaRepository{}
	svc := newTestService(&mockFacilityRepository{}, media)

	draft := &model.MediaResource{Name: "  PA System ", Category: " Audio "}
	if err := svc.CreateMedia(context.Background(), draft); err != nil {
		t.Fatalf("CreateMedia failed: %v", err)
	}

	if draft.Name != "PA System" {
		t.Errorf("name = %q, want trimmed", draft.Name)
	}
	if draft.Category != "audio" {
		t.Errorf("category = %q, want normalized lowercase", draft.Category)
	}
}

func TestDeleteMediaNotFound(t *testing.T) {
	media := &mockMediaRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return catalogerrors.ErrMediaNotFound
		},
	}

	svc := newTestService(&mockFacilityRepository{}, media)
	err := svc.DeleteMedia(context.Background(), "64f000000000000000000010")
	if err == nil {
		t.Fatal("expected not found error")
	}

	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}
}
