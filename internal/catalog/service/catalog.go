package service

import (
	"context"
	"errors"

	catalogerrors "campusbook/internal/catalog/errors"
	"campusbook/internal/catalog/repository"
	"campusbook/internal/catalog/validator"
	"campusbook/pkg/config"
	apperrors "campusbook/pkg/errors"
	"campusbook/pkg/model"
	"campusbook/pkg/sanitizer"
)

type CatalogService interface {
	CreateFacility(ctx context.Context, facility *model.Facility) error
	GetFacility(ctx context.Context, id string) (*model.Facility, error)
	ListFacilities(ctx context.Context) ([]*model.Facility, error)
	UpdateFacility(ctx context.Context, id string, updates *model.FacilityUpdate) (*model.Facility, error)
	DeleteFacility(ctx context.Context, id string) error

	CreateMedia(ctx context.Context, media *model.MediaResource) error
	GetMedia(ctx context.Context, id string) (*model.MediaResource, error)
	ListMedia(ctx context.Context) ([]*model.MediaResource, error)
	UpdateMedia(ctx context.Context, id string, updates *model.MediaResourceUpdate) (*model.MediaResource, error)
	DeleteMedia(ctx context.Context, id string) error

	EnsureSeed(ctx context.Context) error
}

type catalogService struct {
	facilities repository.FacilityRepository
	media      repository.MediaRepository
	validator  *validator.CatalogValidator
	cfg        *config.Config
}

func NewCatalogService(
	facilities repository.FacilityRepository,
	media repository.MediaRepository,
	validator *validator.CatalogValidator,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		facilities: facilities,
		media:      media,
		validator:  validator,
		cfg:        cfg,
	}
}

func (s *catalogService) CreateFacility(ctx context.Context, facility *model.Facility) error {
	s.sanitizeFacility(facility)

	if err := s.validator.ValidateFacility(facility); err != nil {
		s.cfg.Log.Warn("Facility validation failed", "name", facility.Name, "error", err)
		return apperrors.Validation("Facility validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.facilities.Create(ctx, facility); err != nil {
		s.cfg.Log.Error("Failed to create facility", "name", facility.Name, "error", err)
		return apperrors.Internal("Failed to create facility", err)
	}

	s.cfg.Log.Info("Facility created successfully", "id", facility.ID, "name", facility.Name)
	return nil
}

func (s *catalogService) GetFacility(ctx context.Context, id string) (*model.Facility, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Facility ID cannot be empty")
	}

	facility, err := s.facilities.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapFacilityError(id, err, "Failed to retrieve facility")
	}

	return facility, nil
}

func (s *catalogService) ListFacilities(ctx context.Context) ([]*model.Facility, error) {
	facilities, err := s.facilities.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list facilities", "error", err)
		return nil, apperrors.Internal("Failed to retrieve facilities", err)
	}
	return facilities, nil
}

func (s *catalogService) UpdateFacility(ctx context.Context, id string, updates *model.FacilityUpdate) (*model.Facility, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Facility ID cannot be empty")
	}

	if err := s.validator.ValidateFacilityUpdate(updates); err != nil {
		s.cfg.Log.Warn("Facility update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.facilities.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapFacilityError(id, err, "Failed to check facility existence")
	}

	merged := s.mergeFacilityUpdates(existing, updates)
	s.sanitizeFacility(merged)
	if err := s.validator.ValidateFacility(merged); err != nil {
		return nil, apperrors.Validation("Facility validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.facilities.Update(ctx, id, merged); err != nil {
		return nil, s.mapFacilityError(id, err, "Failed to update facility")
	}

	s.cfg.Log.Info("Facility updated successfully", "id", id)
	return merged, nil
}

func (s *catalogService) DeleteFacility(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Facility ID cannot be empty")
	}

	// No cascade: events booked against this facility keep their
	// denormalized facility-name snapshot and stale id.
	if err := s.facilities.Delete(ctx, id); err != nil {
		return s.mapFacilityError(id, err, "Failed to delete facility")
	}

	s.cfg.Log.Info("Facility deleted successfully", "id", id)
	return nil
}

func (s *catalogService) CreateMedia(ctx context.Context, media *model.MediaResource) error {
	s.sanitizeMedia(media)

	if err := s.validator.ValidateMedia(media); err != nil {
		s.cfg.Log.Warn("Media resource validation failed", "name", media.Name, "error", err)
		return apperrors.Validation("Media resource validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.media.Create(ctx, media); err != nil {
		s.cfg.Log.Error("Failed to create media resource", "name", media.Name, "error", err)
		return apperrors.Internal("Failed to create media resource", err)
	}

	s.cfg.Log.Info("Media resource created successfully", "id", media.ID, "name", media.Name)
	return nil
}

func (s *catalogService) GetMedia(ctx context.Context, id string) (*model.MediaResource, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Media resource ID cannot be empty")
	}

	media, err := s.media.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapMediaError(id, err, "Failed to retrieve media resource")
	}

	return media, nil
}

func (s *catalogService) ListMedia(ctx context.Context) ([]*model.MediaResource, error) {
	media, err := s.media.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list media resources", "error", err)
		return nil, apperrors.Internal("Failed to retrieve media resources", err)
	}
	return media, nil
}

func (s *catalogService) UpdateMedia(ctx context.Context, id string, updates *model.MediaResourceUpdate) (*model.MediaResource, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Media resource ID cannot be empty")
	}

	if err := s.validator.ValidateMediaUpdate(updates); err != nil {
		s.cfg.Log.Warn("Media update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.media.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapMediaError(id, err, "Failed to check media resource existence")
	}

	merged := s.mergeMediaUpdates(existing, updates)
	s.sanitizeMedia(merged)
	if err := s.validator.ValidateMedia(merged); err != nil {
		return nil, apperrors.Validation("Media resource validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.media.Update(ctx, id, merged); err != nil {
		return nil, s.mapMediaError(id, err, "Failed to update media resource")
	}

	s.cfg.Log.Info("Media resource updated successfully", "id", id)
	return merged, nil
}

func (s *catalogService) DeleteMedia(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Media resource ID cannot be empty")
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return s.mapMediaError(id, err, "Failed to delete media resource")
	}

	s.cfg.Log.Info("Media resource deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *catalogService) sanitizeFacility(f *model.Facility) {
	f.Name = sanitizer.NormalizeText(f.Name)
	f.Location = sanitizer.NormalizeText(f.Location)
	f.Resources = sanitizer.NormalizeTags(f.Resources)
}

func (s *catalogService) sanitizeMedia(m *model.MediaResource) {
	m.Name = sanitizer.NormalizeText(m.Name)
	m.Category = sanitizer.NormalizeTag(m.Category)
}

func (s *catalogService) mergeFacilityUpdates(existing *model.Facility, updates *model.FacilityUpdate) *model.Facility {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Capacity != nil {
		merged.Capacity = *updates.Capacity
	}
	if updates.Location != nil {
		merged.Location = *updates.Location
	}
	if updates.Resources != nil {
		merged.Resources = *updates.Resources
	}

	return &merged
}

func (s *catalogService) mergeMediaUpdates(existing *model.MediaResource, updates *model.MediaResourceUpdate) *model.MediaResource {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}

	return &merged
}

func (s *catalogService) mapFacilityError(id string, err error, internalMsg string) error {
	if errors.Is(err, catalogerrors.ErrFacilityNotFound) {
		return apperrors.NotFoundWithID("Facility", id)
	}
	if errors.Is(err, catalogerrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid facility ID format")
	}
	s.cfg.Log.Error(internalMsg, "id", id, "error", err)
	return apperrors.Internal(internalMsg, err)
}

func (s *catalogService) mapMediaError(id string, err error, internalMsg string) error {
	if errors.Is(err, catalogerrors.ErrMediaNotFound) {
		return apperrors.NotFoundWithID("Media resource", id)
	}
	if errors.Is(err, catalogerrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid media resource ID format")
	}
	s.cfg.Log.Error(internalMsg, "id", id, "error", err)
	return apperrors.Internal(internalMsg, err)
}
