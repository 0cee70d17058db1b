package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/partsdesk/partsdesk/internal/domain"
)

// PaymentService is the payment ledger.
type PaymentService struct {
	store *Store
}

func NewPaymentService(store *Store) *PaymentService {
	return &PaymentService{store: store}
}

// HasPending reports whether the customer owes an unresolved installment.
func (s *PaymentService) HasPending(customerKey string) bool {
	return s.store.hasPending(customerKey)
}

// ListPending returns every unresolved installment in ledger order.
func (s *PaymentService) ListPending() []*domain.Payment {
	var out []*domain.Payment
	for _, p := range s.store.Payments {
		if !p.Completed {
			out = append(out, p)
		}
	}
	return out
}

// Resolve settles a pending installment with the instrument used to pay it.
func (s *PaymentService) Resolve(id uuid.UUID, instrument domain.Instrument) (*domain.Payment, error) {
	for _, p := range s.store.Payments {
		if p.ID != id {
			continue
		}
		if err := p.Resolve(instrument, s.store.Now()); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
}

// Search returns the payments matching c in ledger order.
func (s *PaymentService) Search(c domain.PaymentCriterion) []*domain.Payment {
	var out []*domain.Payment
	for _, p := range s.store.Payments {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *PaymentService) All() []*domain.Payment {
	return s.store.Payments
}
