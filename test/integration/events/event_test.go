package integrationtests

import (
	"fmt"
	"os"
	"testing"
	"time"

	"campusbook/test/integration/testutil"
)

var httpClient *testutil.Client

// The suite needs a running service plus MongoDB; it is skipped unless
// TEST_SERVER_URL points at one.
func TestMain(m *testing.M) {
	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		fmt.Println("TEST_SERVER_URL not set, skipping integration tests")
		os.Exit(0)
	}
	httpClient = testutil.NewClient(serverURL)
	os.Exit(m.Run())
}

func TestEventLifecycle(t *testing.T) {
	httpClient.WaitForHealthy(t, 30*time.Second)

	facilityID := createFacility(t, fmt.Sprintf("Integration Hall %d", time.Now().UnixNano()))
	mediaID := createMedia(t, fmt.Sprintf("Integration Projector %d", time.Now().UnixNano()))

	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	window := func(startOffset, endOffset time.Duration) (string, string) {
		return base.Add(startOffset).Format(time.RFC3339), base.Add(endOffset).Format(time.RFC3339)
	}

	start, end := window(0, 2*time.Hour)
	eventID := createEvent(t, map[string]any{
		"title":             "Integration Symposium",
		"organizer":         "QA Club",
		"faculty_in_charge": "Prof. Integration",
		"start_time":        start,
		"end_time":          end,
		"allocation": map[string]any{
			"facility_id": facilityID,
			"media_ids":   []string{mediaID},
		},
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		overlapStart, overlapEnd := window(time.Hour, 3*time.Hour)
		resp := httpClient.POST(t, "/api/v1/events", map[string]any{
			"title":             "Clashing Event",
			"organizer":         "QA Club",
			"faculty_in_charge": "Prof. Integration",
			"start_time":        overlapStart,
			"end_time":          overlapEnd,
			"allocation":        map[string]any{"facility_id": facilityID},
		})
		testutil.AssertStatusCode(t, resp, 409)
		testutil.AssertContains(t, resp, "conflicting_event_id")
	})

	t.Run("back to back booking is accepted", func(t *testing.T) {
		nextStart, nextEnd := window(2*time.Hour, 3*time.Hour)
		resp := httpClient.POST(t, "/api/v1/events", map[string]any{
			"title":             "Back To Back Event",
			"organizer":         "QA Club",
			"faculty_in_charge": "Prof. Integration",
			"start_time":        nextStart,
			"end_time":          nextEnd,
			"allocation":        map[string]any{"facility_id": facilityID},
		})
		testutil.AssertStatusCode(t, resp, 201)
	})

	t.Run("availability marks booked resources taken", func(t *testing.T) {
		resp := httpClient.GET(t, fmt.Sprintf(
			"/api/v1/availability?start_time=%s&end_time=%s", start, end,
		))
		testutil.AssertStatusCode(t, resp, 200)
		testutil.AssertContains(t, resp, facilityID)
		testutil.AssertContains(t, resp, mediaID)
	})

	t.Run("proofs rejected before completion", func(t *testing.T) {
		resp := httpClient.POST(t, fmt.Sprintf("/api/v1/events/id/%s/proofs", eventID), nil)
		if resp.StatusCode != 400 && resp.StatusCode != 415 {
			t.Fatalf("expected rejection, got %d. Body: %s", resp.StatusCode, string(resp.Body))
		}
	})

	t.Run("status transitions through lifecycle", func(t *testing.T) {
		for _, status := range []string{"approved", "completed"} {
			resp := httpClient.PATCH(t, "/api/v1/events/id/"+eventID, map[string]any{
				"status": status,
			})
			testutil.AssertStatusCode(t, resp, 200)
			testutil.AssertContains(t, resp, status)
		}
	})

	t.Run("completed event still blocks its slot", func(t *testing.T) {
		resp := httpClient.POST(t, "/api/v1/events", map[string]any{
			"title":             "After Completion Clash",
			"organizer":         "QA Club",
			"faculty_in_charge": "Prof. Integration",
			"start_time":        start,
			"end_time":          end,
			"allocation":        map[string]any{"facility_id": facilityID},
		})
		testutil.AssertStatusCode(t, resp, 409)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		resp := httpClient.PATCH(t, "/api/v1/events/id/"+eventID, map[string]any{
			"status": "archived",
		})
		if resp.StatusCode != 400 && resp.StatusCode != 422 {
			t.Fatalf("expected rejection, got %d. Body: %s", resp.StatusCode, string(resp.Body))
		}
	})
}

func TestCancelledEventReleasesResources(t *testing.T) {
	httpClient.WaitForHealthy(t, 30*time.Second)

	facilityID := createFacility(t, fmt.Sprintf("Cancellation Hall %d", time.Now().UnixNano()))
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	end := start.Add(2 * time.Hour)

	booking := map[string]any{
		"title":             "Short Lived Event",
		"organizer":         "QA Club",
		"faculty_in_charge": "Prof. Integration",
		"start_time":        start.Format(time.RFC3339),
		"end_time":          end.Format(time.RFC3339),
		"allocation":        map[string]any{"facility_id": facilityID},
	}

	eventID := createEvent(t, booking)

	resp := httpClient.PATCH(t, "/api/v1/events/id/"+eventID, map[string]any{
		"status": "cancelled",
	})
	testutil.AssertStatusCode(t, resp, 200)

	booking["title"] = "Replacement Event"
	resp = httpClient.POST(t, "/api/v1/events", booking)
	testutil.AssertStatusCode(t, resp, 201)
}

// --- Helpers ---

func createFacility(t *testing.T, name string) string {
	t.Helper()
	resp := httpClient.POST(t, "/api/v1/facilities", map[string]any{
		"name":     name,
		"capacity": 100,
		"location": "Integration Wing",
	})
	testutil.AssertStatusCode(t, resp, 201)
	return extractID(t, resp)
}

func createMedia(t *testing.T, name string) string {
	t.Helper()
	resp := httpClient.POST(t, "/api/v1/media", map[string]any{
		"name":     name,
		"category": "projector",
	})
	testutil.AssertStatusCode(t, resp, 201)
	return extractID(t, resp)
}

func createEvent(t *testing.T, body map[string]any) string {
	t.Helper()
	resp := httpClient.POST(t, "/api/v1/events", body)
	testutil.AssertStatusCode(t, resp, 201)
	return extractID(t, resp)
}

func extractID(t *testing.T, resp *testutil.Response) string {
	t.Helper()
	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := resp.UnmarshalJSON(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Data.ID == "" {
		t.Fatalf("response has no id: %s", string(resp.Body))
	}
	return result.Data.ID
}
