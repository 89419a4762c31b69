package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	eventserrors "campusbook/internal/events/errors"
	"campusbook/internal/events/proofstore"
	"campusbook/internal/events/repository"
	"campusbook/internal/events/validator"
	"campusbook/pkg/config"
	apperrors "campusbook/pkg/errors"
	"campusbook/pkg/kafka"
	"campusbook/pkg/model"
	"campusbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

const lockIDPrefix = "resource_lock_"

// Publisher emits lifecycle notifications. Satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// FacilityLookup resolves facilities for the denormalized name snapshot.
type FacilityLookup interface {
	FindByID(ctx context.Context, id string) (*model.Facility, error)
}

type EventService interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, status string, limit int, offset int64) ([]*model.Event, int64, error)
	Update(ctx context.Context, id string, updates *model.EventUpdate) (*model.Event, error)
	AttachProofs(ctx context.Context, id string, uploads []proofstore.Upload) (*model.Event, error)
}

type eventService struct {
	events     repository.EventRepository
	locks      repository.ResourceLockRepository
	facilities FacilityLookup
	validator  *validator.EventValidator
	proofs     proofstore.Store
	publisher  Publisher
	cfg        *config.Config
}

func NewEventService(
	events repository.EventRepository,
	locks repository.ResourceLockRepository,
	facilities FacilityLookup,
	validator *validator.EventValidator,
	proofs proofstore.Store,
	publisher Publisher,
	cfg *config.Config,
) EventService {
	return &eventService{
		events:     events,
		locks:      locks,
		facilities: facilities,
		validator:  validator,
		proofs:     proofs,
		publisher:  publisher,
		cfg:        cfg,
	}
}

func (s *eventService) Create(ctx context.Context, event *model.Event) error {
	s.sanitizeEvent(event)
	if event.Status == "" {
		event.Status = model.StatusPending
	}
	if event.Proofs == nil {
		event.Proofs = []model.Proof{}
	}

	if err := s.validator.Validate(event); err != nil {
		s.cfg.Log.Warn("Event validation failed", "title", event.Title, "error", err)
		return apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	s.resolveFacilitySnapshot(ctx, event)

	releaseLocks, err := s.acquireResourceLocks(ctx, event.Allocation)
	if err != nil {
		return err
	}
	defer releaseLocks()

	err = s.events.ExecuteTransaction(ctx, func(txCtx mongo.SessionContext) error {
		if err := s.verifyNoConflict(txCtx, event); err != nil {
			return err
		}
		if err := s.events.Create(txCtx, event); err != nil {
			s.cfg.Log.Error("Failed to create event", "title", event.Title, "error", err)
			return apperrors.Internal("Failed to create event", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Event created successfully",
		"id", event.ID,
		"title", event.Title,
		"status", event.Status,
	)
	s.publishLifecycle(ctx, "event.created", event)
	return nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event ID cannot be empty")
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapEventError(id, err, "Failed to retrieve event")
	}

	return event, nil
}

func (s *eventService) List(ctx context.Context, status string, limit int, offset int64) ([]*model.Event, int64, error) {
	filter := model.EventStatus("")
	if status != "" {
		filter = model.EventStatus(status)
		if !filter.Valid() {
			return nil, 0, apperrors.InvalidInput(fmt.Sprintf("Invalid status filter: %s", status))
		}
	}

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	events, err := s.events.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list events", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve events", err)
	}

	total, err := s.events.Count(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to count events", "error", err)
		return nil, 0, apperrors.Internal("Failed to count events", err)
	}

	if events == nil {
		events = []*model.Event{}
	}
	return events, total, nil
}

func (s *eventService) Update(ctx context.Context, id string, updates *model.EventUpdate) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Event update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapEventError(id, err, "Failed to check event existence")
	}

	if updates.Status != "" && !existing.Status.CanTransitionTo(updates.Status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf(
			"Cannot transition event from %s to %s", existing.Status, updates.Status,
		))
	}

	merged := s.mergeEventUpdates(existing, updates)
	s.sanitizeEvent(merged)
	if err := s.validator.Validate(merged); err != nil {
		return nil, apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	// A schedule-touching update re-runs the full conflict check even when
	// the merged times match the stored ones.
	if updates.TouchesSchedule() {
		if updates.Allocation != nil {
			s.resolveFacilitySnapshot(ctx, merged)
		}

		releaseLocks, err := s.acquireResourceLocks(ctx, merged.Allocation)
		if err != nil {
			return nil, err
		}
		defer releaseLocks()

		err = s.events.ExecuteTransaction(ctx, func(txCtx mongo.SessionContext) error {
			if err := s.verifyNoConflict(txCtx, merged); err != nil {
				return err
			}
			return s.updateEvent(txCtx, id, merged)
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.updateEvent(ctx, id, merged); err != nil {
			return nil, err
		}
	}

	s.cfg.Log.Info("Event updated successfully", "id", id, "status", merged.Status)
	s.publishLifecycle(ctx, "event.updated", merged)
	return merged, nil
}

func (s *eventService) AttachProofs(ctx context.Context, id string, uploads []proofstore.Upload) (*model.Event, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event ID cannot be empty")
	}
	if len(uploads) == 0 {
		return nil, apperrors.InvalidInput("At least one proof file is required")
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapEventError(id, err, "Failed to check event existence")
	}

	if event.Status != model.StatusCompleted {
		return nil, apperrors.InvalidInput(fmt.Sprintf(
			"Proofs can only be attached to completed events, current status: %s", event.Status,
		))
	}

	staged, err := s.proofs.Stage(ctx, id, uploads)
	if err != nil {
		s.cfg.Log.Error("Failed to store proof uploads", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to store proof uploads", err)
	}

	combined := append(append([]model.Proof{}, event.Proofs...), staged...)
	if err := s.events.UpdateProofs(ctx, id, combined); err != nil {
		s.proofs.Discard(staged)
		return nil, s.mapEventError(id, err, "Failed to attach proofs")
	}

	event.Proofs = combined
	s.cfg.Log.Info("Proofs attached successfully", "id", id, "count", len(staged))
	s.publishLifecycle(ctx, "event.proofs_attached", event)
	return event, nil
}

// --- Helpers ---

func (s *eventService) sanitizeEvent(e *model.Event) {
	e.Title = sanitizer.NormalizeText(e.Title)
	e.Description = sanitizer.NormalizeText(e.Description)
	e.Organizer = sanitizer.NormalizeText(e.Organizer)
	e.FacultyInCharge = sanitizer.NormalizeText(e.FacultyInCharge)
	e.Club = sanitizer.NormalizeText(e.Club)
	e.Allocation.MediaIDs = sanitizer.NormalizeIDs(e.Allocation.MediaIDs)
}

// resolveFacilitySnapshot denormalizes the facility name onto the event.
// A missing or since-deleted facility is not an error, the snapshot is
// simply left empty.
func (s *eventService) resolveFacilitySnapshot(ctx context.Context, event *model.Event) {
	event.Allocation.FacilityName = ""
	if event.Allocation.FacilityID == "" {
		return
	}

	facility, err := s.facilities.FindByID(ctx, event.Allocation.FacilityID)
	if err != nil {
		s.cfg.Log.Debug("Facility snapshot unresolved",
			"facility_id", event.Allocation.FacilityID,
			"error", err,
		)
		return
	}
	event.Allocation.FacilityName = facility.Name
}

// acquireResourceLocks takes an advisory lock per claimed resource, in
// sorted order so concurrent requests claiming overlapping resource sets
// cannot deadlock each other. The returned function releases whatever was
// acquired.
func (s *eventService) acquireResourceLocks(ctx context.Context, alloc model.Allocation) (func(), error) {
	resourceIDs := make([]string, 0, len(alloc.MediaIDs)+1)
	if alloc.FacilityID != "" {
		resourceIDs = append(resourceIDs, alloc.FacilityID)
	}
	resourceIDs = append(resourceIDs, alloc.MediaIDs...)
	sort.Strings(resourceIDs)

	acquired := make([]string, 0, len(resourceIDs))
	release := func() {
		for _, lockID := range acquired {
			if err := s.locks.Delete(context.WithoutCancel(ctx), lockID); err != nil {
				s.cfg.Log.Warn("Failed to release resource lock", "lock_id", lockID, "error", err)
			}
		}
	}

	for _, resourceID := range resourceIDs {
		lock := &model.ResourceLock{
			ID:        lockIDPrefix + resourceID,
			ExpiresAt: time.Now().UTC().Add(s.cfg.ResourceLockTTL),
		}
		if err := s.locks.Create(ctx, lock); err != nil {
			release()
			s.cfg.Log.Warn("Resource lock contention", "resource_id", resourceID, "error", err)
			return nil, apperrors.Conflict("Another booking for the same resources is in progress, please retry")
		}
		acquired = append(acquired, lock.ID)
	}

	return release, nil
}

func (s *eventService) verifyNoConflict(ctx context.Context, event *model.Event) error {
	others, err := s.events.FindOverlapping(ctx, event.StartTime, event.EndTime)
	if err != nil {
		s.cfg.Log.Error("Failed to load overlapping events", "error", err)
		return apperrors.Internal("Failed to check resource availability", err)
	}

	conflict := findConflict(event, others)
	if conflict == nil {
		return nil
	}

	details := map[string]any{
		"conflicting_event_id":    conflict.EventID,
		"conflicting_event_title": conflict.EventTitle,
	}
	if conflict.FacilityID != "" {
		details["facility_id"] = conflict.FacilityID
	}
	if conflict.MediaID != "" {
		details["media_id"] = conflict.MediaID
	}

	s.cfg.Log.Warn("Resource conflict detected",
		"title", event.Title,
		"conflicting_event_id", conflict.EventID,
	)
	return apperrors.ConflictWithDetails("Requested resources are already booked for this time window", details)
}

func (s *eventService) updateEvent(ctx context.Context, id string, event *model.Event) error {
	if err := s.events.Update(ctx, id, event); err != nil {
		return s.mapEventError(id, err, "Failed to update event")
	}
	return nil
}

func (s *eventService) mergeEventUpdates(existing *model.Event, updates *model.EventUpdate) *model.Event {
	merged := *existing

	if updates.Title != "" {
		merged.Title = updates.Title
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Organizer != "" {
		merged.Organizer = updates.Organizer
	}
	if updates.FacultyInCharge != "" {
		merged.FacultyInCharge = updates.FacultyInCharge
	}
	if updates.Club != nil {
		merged.Club = *updates.Club
	}
	if updates.StartTime != nil {
		merged.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		merged.EndTime = *updates.EndTime
	}
	if updates.Allocation != nil {
		merged.Allocation = *updates.Allocation
	}
	if updates.Requirements != nil {
		merged.Requirements = *updates.Requirements
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}

	return &merged
}

func (s *eventService) mapEventError(id string, err error, internalMsg string) error {
	if errors.Is(err, eventserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Event", id)
	}
	if errors.Is(err, eventserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid event ID format")
	}
	if apperrors.IsAppError(err) {
		return err
	}
	s.cfg.Log.Error(internalMsg, "id", id, "error", err)
	return apperrors.Internal(internalMsg, err)
}

func (s *eventService) publishLifecycle(ctx context.Context, eventType string, event *model.Event) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(event.ID).
		WithEventType(eventType).
		WithSource("campusbook").
		WithValue(event).
		Build()

	if err := s.publisher.Publish(context.WithoutCancel(ctx), msg); err != nil {
		s.cfg.Log.Warn("Failed to publish lifecycle notification",
			"event_type", eventType,
			"id", event.ID,
			"error", err,
		)
	}
}
