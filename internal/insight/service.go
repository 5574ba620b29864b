package insight

import (
	"context"

	"go.uber.org/zap"

	"smartpos/internal/domain"
	"smartpos/internal/report"
)

// Service owns the register and drives refreshes against the collaborator.
// A refresh is fire-and-forget: the caller reads the result later through
// Current.
type Service struct {
	collab Collaborator
	reg    *Register
	log    *zap.Logger
}

func NewService(collab Collaborator, log *zap.Logger) *Service {
	return &Service{
		collab: collab,
		reg:    NewRegister(NoDataMessage),
		log:    log,
	}
}

// Refresh recomputes the aggregate figures and requests a new recommendation.
// With no orders the fixed no-data message is applied immediately and the
// collaborator is not called. Collaborator failure resolves to the fixed
// fallback; it never surfaces as an error.
func (s *Service) Refresh(ctx context.Context, orders []domain.Order) {
	token := s.reg.Issue()

	if len(orders) == 0 {
		s.reg.Resolve(token, NoDataMessage)
		return
	}

	figures := report.ComputeFigures(orders)
	go func() {
		text, err := s.collab.Recommend(ctx, figures)
		switch {
		case err != nil:
			s.log.Warn("insight collaborator failed", zap.Error(err))
			text = UnavailableMessage
		case text == "":
			text = EmptyResponseMessage
		}
		if !s.reg.Resolve(token, text) {
			s.log.Debug("discarding stale insight response", zap.Uint64("token", token))
		}
	}()
}

// Current returns the displayed message and whether a refresh is in flight.
func (s *Service) Current() (string, bool) {
	return s.reg.Current()
}
