package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

// IStabilityGuard is the policy layer editor and orchestrator callers consult
// before committing a change to a session.
type IStabilityGuard interface {
	Validate(ctx context.Context, sessionID string, proposed entities.Budget) entities.ChangeImpact
	Metrics(sessionID string) (entities.StabilityMetrics, bool)
	Monitor(ctx context.Context, sessionID string)
}

// StabilityGuard scores proposed budgets against the session baseline and
// enumerates policy violations. It keeps the last metrics per session so
// Monitor can alert when stability degrades below the critical threshold.
type StabilityGuard struct {
	sessions ISessionStateManager
	events   interfaces.IEventPublisher
	cfg      Config
	log      zerolog.Logger

	mu      sync.RWMutex
	metrics map[string]entities.StabilityMetrics
}

var _ IStabilityGuard = (*StabilityGuard)(nil)

func NewStabilityGuard(sessions ISessionStateManager, events interfaces.IEventPublisher, cfg Config, log zerolog.Logger) *StabilityGuard {
	return &StabilityGuard{
		sessions: sessions,
		events:   events,
		cfg:      cfg,
		log:      log,
		metrics:  make(map[string]entities.StabilityMetrics),
	}
}

// Validate computes the impact of the proposed budget on the session's
// committed state. It never mutates the session.
func (g *StabilityGuard) Validate(_ context.Context, sessionID string, proposed entities.Budget) entities.ChangeImpact {
	session, err := g.sessions.Get(sessionID)
	if err != nil || !session.IsActive {
		return entities.ChangeImpact{
			IsSafe:         false,
			StabilityScore: 0,
			Violations:     []string{entities.ViolationInvalidSession},
		}
	}

	metrics := ComputeStabilityMetrics(session.Budget, proposed, g.cfg)

	g.mu.Lock()
	g.metrics[sessionID] = metrics
	g.mu.Unlock()

	violations := g.checkViolations(metrics)
	return entities.ChangeImpact{
		IsSafe:         len(violations) == 0,
		StabilityScore: metrics.StabilityScore,
		Violations:     violations,
	}
}

// Metrics returns the last metrics recorded for a session.
func (g *StabilityGuard) Metrics(sessionID string) (entities.StabilityMetrics, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.metrics[sessionID]
	return m, ok
}

// Monitor raises a stability_critical alert when the stored score for the
// session has dropped below the critical threshold. The alert is a
// fire-and-forget notification, not control flow.
func (g *StabilityGuard) Monitor(ctx context.Context, sessionID string) {
	metrics, ok := g.Metrics(sessionID)
	if !ok || metrics.StabilityScore >= g.cfg.CriticalStability {
		return
	}

	g.log.Warn().Str("session_id", sessionID).Float64("score", metrics.StabilityScore).
		Msg("session stability critical")
	g.events.Publish(ctx, interfaces.EventStabilityCritical, map[string]interface{}{
		"session_id":      sessionID,
		"stability_score": metrics.StabilityScore,
		"reason":          "stability below critical threshold",
	})
}

func (g *StabilityGuard) checkViolations(metrics entities.StabilityMetrics) []string {
	violations := []string{}
	if metrics.StabilityScore < g.cfg.MinStabilityScore {
		violations = append(violations, entities.ViolationLowStabilityScore)
	}
	for _, change := range metrics.PriceChanges {
		if change > g.cfg.MaxPriceChange {
			violations = append(violations, entities.ViolationExcessivePriceChange)
			break
		}
	}
	for _, change := range metrics.MarginChanges {
		if change > g.cfg.MaxMarginChange {
			violations = append(violations, entities.ViolationExcessiveMarginChange)
			break
		}
	}
	return violations
}
