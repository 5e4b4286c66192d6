package interfaces

import "context"

// Event types published by the core. Payloads are small structured maps
// (ids, reasons, numeric scores).
const (
	EventReconstructionNeeded   = "reconstruction_needed"
	EventReconstructionComplete = "reconstruction_complete"
	EventAlternativesFound      = "alternatives_found"
	EventStabilityCritical      = "stability_critical"
	EventBudgetCreated          = "budget_created"
	EventApprovalTransition     = "approval_transition"
)

// IEventPublisher delivers fire-and-forget notifications to the external
// event/notification subsystem. Implementations never surface delivery
// failures to the caller; the core never blocks on delivery succeeding.
type IEventPublisher interface {
	Publish(ctx context.Context, eventType string, payload map[string]interface{})
}
