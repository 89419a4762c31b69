package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"campusbook/pkg/config"
	apperrors "campusbook/pkg/errors"
	"campusbook/pkg/interval"
	"campusbook/pkg/model"
)

// ScheduleSource exposes the slice of the event schedule that can collide
// with a queried window.
type ScheduleSource interface {
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*model.Event, error)
}

type FacilityCatalog interface {
	FindAll(ctx context.Context) ([]*model.Facility, error)
}

type MediaCatalog interface {
	FindAll(ctx context.Context) ([]*model.MediaResource, error)
}

type AvailabilityService interface {
	Query(ctx context.Context, window interval.Interval, excludeEventID string) (*model.Availability, error)
}

type availabilityService struct {
	schedule   ScheduleSource
	facilities FacilityCatalog
	media      MediaCatalog
	cfg        *config.Config
}

func NewAvailabilityService(
	schedule ScheduleSource,
	facilities FacilityCatalog,
	media MediaCatalog,
	cfg *config.Config,
) AvailabilityService {
	return &availabilityService{
		schedule:   schedule,
		facilities: facilities,
		media:      media,
		cfg:        cfg,
	}
}

// Query computes which catalog resources are free for the window. The
// result is advisory only; create and update redo the authoritative check
// under locks. excludeEventID makes reschedule previews ignore the event
// being edited.
func (s *availabilityService) Query(ctx context.Context, window interval.Interval, excludeEventID string) (*model.Availability, error) {
	if err := window.Validate(); err != nil {
		return nil, apperrors.InvalidInput("end_time must be after start_time")
	}

	var (
		wg         sync.WaitGroup
		facilities []*model.Facility
		media      []*model.MediaResource
		events     []*model.Event

		facilitiesErr error
		mediaErr      error
		eventsErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		facilities, facilitiesErr = s.facilities.FindAll(ctx)
	}()
	go func() {
		defer wg.Done()
		media, mediaErr = s.media.FindAll(ctx)
	}()
	go func() {
		defer wg.Done()
		events, eventsErr = s.schedule.FindOverlapping(ctx, window.Start, window.End)
	}()
	wg.Wait()

	if facilitiesErr != nil {
		s.cfg.Log.Error("Failed to load facilities for availability", "error", facilitiesErr)
		return nil, apperrors.Internal("Failed to load facility catalog", facilitiesErr)
	}
	if mediaErr != nil {
		s.cfg.Log.Error("Failed to load media resources for availability", "error", mediaErr)
		return nil, apperrors.Internal("Failed to load media catalog", mediaErr)
	}
	if eventsErr != nil {
		s.cfg.Log.Error("Failed to load events for availability", "error", eventsErr)
		return nil, apperrors.Internal("Failed to load event schedule", eventsErr)
	}

	takenFacilities, takenMedia := takenResources(events, window, excludeEventID)

	result := &model.Availability{
		AvailableFacilities: make([]*model.Facility, 0, len(facilities)),
		AvailableMedia:      make([]*model.MediaResource, 0, len(media)),
		TakenFacilityIDs:    sortedKeys(takenFacilities),
		TakenMediaIDs:       sortedKeys(takenMedia),
	}

	for _, facility := range facilities {
		if _, taken := takenFacilities[facility.ID]; !taken {
			result.AvailableFacilities = append(result.AvailableFacilities, facility)
		}
	}
	for _, resource := range media {
		if _, taken := takenMedia[resource.ID]; !taken {
			result.AvailableMedia = append(result.AvailableMedia, resource)
		}
	}

	return result, nil
}

// takenResources collects resource ids claimed by events that block the
// window: overlapping, conflict-active, and not the excluded event.
func takenResources(events []*model.Event, window interval.Interval, excludeEventID string) (map[string]struct{}, map[string]struct{}) {
	takenFacilities := make(map[string]struct{})
	takenMedia := make(map[string]struct{})

	for _, event := range events {
		if excludeEventID != "" && event.ID == excludeEventID {
			continue
		}
		if !event.Status.ActiveForConflict() {
			continue
		}
		if !interval.Overlaps(window.Start, window.End, event.StartTime, event.EndTime) {
			continue
		}

		if event.Allocation.FacilityID != "" {
			takenFacilities[event.Allocation.FacilityID] = struct{}{}
		}
		for _, mediaID := range event.Allocation.MediaIDs {
			takenMedia[mediaID] = struct{}{}
		}
	}

	return takenFacilities, takenMedia
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
