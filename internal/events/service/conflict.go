package service

import (
	"campusbook/pkg/interval"
	"campusbook/pkg/model"
)

// resourceConflict describes the first double-booking found between a
// candidate event and the existing schedule.
type resourceConflict struct {
	EventID    string
	EventTitle string
	FacilityID string
	MediaID    string
}

// findConflict reports the first event in others that claims a resource
// the candidate also claims during an overlapping time window. Cancelled
// and rejected events never block a slot; every other status does,
// completed included. Intervals are half-open, so an event ending exactly
// when the candidate starts is not a conflict.
func findConflict(candidate *model.Event, others []*model.Event) *resourceConflict {
	for _, other := range others {
		if other.ID == candidate.ID {
			continue
		}
		if !other.Status.ActiveForConflict() {
			continue
		}
		if !interval.Overlaps(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			continue
		}

		if conflict := sharedResource(candidate.Allocation, other.Allocation); conflict != nil {
			conflict.EventID = other.ID
			conflict.EventTitle = other.Title
			return conflict
		}
	}

	return nil
}

func sharedResource(a, b model.Allocation) *resourceConflict {
	if a.FacilityID != "" && a.FacilityID == b.FacilityID {
		return &resourceConflict{FacilityID: a.FacilityID}
	}

	claimed := make(map[string]struct{}, len(b.MediaIDs))
	for _, id := range b.MediaIDs {
		claimed[id] = struct{}{}
	}
	for _, id := range a.MediaIDs {
		if _, ok := claimed[id]; ok {
			return &resourceConflict{MediaID: id}
		}
	}

	return nil
}
