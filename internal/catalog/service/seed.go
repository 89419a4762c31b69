package service

import (
	"context"

	apperrors "campusbook/pkg/errors"
	"campusbook/pkg/model"
)

// EnsureSeed loads the sample catalog into an empty deployment. It runs
// once at startup and is a no-op whenever either collection already holds
// data, so repeated restarts never duplicate the samples.
func (s *catalogService) EnsureSeed(ctx context.Context) error {
	facilityCount, err := s.facilities.Count(ctx)
	if err != nil {
		return apperrors.Internal("Failed to count facilities for seeding", err)
	}
	mediaCount, err := s.media.Count(ctx)
	if err != nil {
		return apperrors.Internal("Failed to count media resources for seeding", err)
	}

	if facilityCount > 0 || mediaCount > 0 {
		s.cfg.Log.Debug("Catalog already populated, skipping seed",
			"facilities", facilityCount,
			"media", mediaCount,
		)
		return nil
	}

	for _, facility := range seedFacilities() {
		if err := s.facilities.Create(ctx, facility); err != nil {
			return apperrors.Internal("Failed to seed facilities", err)
		}
	}
	for _, media := range seedMedia() {
		if err := s.media.Create(ctx, media); err != nil {
			return apperrors.Internal("Failed to seed media resources", err)
		}
	}

	s.cfg.Log.Info("Catalog seeded with sample data",
		"facilities", len(seedFacilities()),
		"media", len(seedMedia()),
	)
	return nil
}

func seedFacilities() []*model.Facility {
	return []*model.Facility{
		{
			Name:      "Main Auditorium",
			Capacity:  600,
			Location:  "Central Block, Ground Floor",
			Resources: []string{"stage", "greenroom", "ac"},
		},
		{
			Name:      "Seminar Hall A",
			Capacity:  150,
			Location:  "Academic Block 1, Second Floor",
			Resources: []string{"podium", "ac"},
		},
		{
			Name:      "Conference Room",
			Capacity:  40,
			Location:  "Administrative Block, First Floor",
			Resources: []string{"whiteboard", "videoconferencing"},
		},
		{
			Name:      "Open Air Theatre",
			Capacity:  1000,
			Location:  "Behind Sports Complex",
			Resources: []string{"stage"},
		},
	}
}

func seedMedia() []*model.MediaResource {
	return []*model.MediaResource{
		{Name: "Full HD Projector", Category: "projector"},
		{Name: "PA System", Category: "audio"},
		{Name: "Wireless Mic Kit", Category: "audio"},
		{Name: "LED Video Wall", Category: "display"},
	}
}
