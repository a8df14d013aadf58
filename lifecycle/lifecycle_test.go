package lifecycle

import (
	"testing"

	"resto-backend/models"
)

func TestKnown(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusPending,
		models.StatusKitchenReady,
		models.StatusTableAssembled,
		models.StatusEnRoute,
		models.StatusDelivered,
		models.StatusClosed,
	} {
		if !Known(s) {
			t.Errorf("Known(%q) = false, want true", s)
		}
	}

	if Known("volando") {
		t.Error(`Known("volando") = true, want false`)
	}
	if Known("") {
		t.Error(`Known("") = true, want false`)
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d statuses, want 6", len(all))
	}
	if all[0] != models.StatusPending {
		t.Errorf("All()[0] = %q, want %q", all[0], models.StatusPending)
	}
	if all[len(all)-1] != models.StatusClosed {
		t.Errorf("All() last = %q, want %q", all[len(all)-1], models.StatusClosed)
	}
}

func TestDescribeRoles(t *testing.T) {
	for _, stage := range Describe() {
		if stage.Role == "" {
			t.Errorf("stage %q has no role", stage.Status)
		}
		if stage.Track == "" {
			t.Errorf("stage %q has no track", stage.Status)
		}
	}
}
