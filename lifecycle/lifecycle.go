package lifecycle

import "resto-backend/models"

// Stage pairs a status with the role that typically sets it. The dine-in
// track runs pending → kitchen_ready → table_assembled → closed; delivery
// orders run pending → en_route → delivered instead.
type Stage struct {
	Status models.OrderStatus `json:"status"`
	Role   string             `json:"role"`
	Track  string             `json:"track"`
}

// stages is the canonical display order of the lifecycle.
var stages = []Stage{
	{Status: models.StatusPending, Role: "bar", Track: "all"},
	{Status: models.StatusKitchenReady, Role: "kitchen", Track: "dine-in"},
	{Status: models.StatusTableAssembled, Role: "waiter", Track: "dine-in"},
	{Status: models.StatusEnRoute, Role: "delivery", Track: "delivery"},
	{Status: models.StatusDelivered, Role: "delivery", Track: "delivery"},
	{Status: models.StatusClosed, Role: "waiter/owner", Track: "all"},
}

// Known reports whether s is a recognized lifecycle status. Transitions
// between known statuses are not gated: staff correct mistakes by moving
// orders backwards or across tracks, so any known status is reachable
// from any other.
func Known(s models.OrderStatus) bool {
	for _, st := range stages {
		if st.Status == s {
			return true
		}
	}
	return false
}

// All returns every status in canonical order.
func All() []models.OrderStatus {
	out := make([]models.OrderStatus, len(stages))
	for i, st := range stages {
		out[i] = st.Status
	}
	return out
}

// Describe returns the full lifecycle for the documentation endpoint.
func Describe() []Stage {
	return stages
}
