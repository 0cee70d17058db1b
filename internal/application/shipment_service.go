package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// ShipmentService tracks the shipment opened for every sale.
type ShipmentService struct {
	store *Store
}

func NewShipmentService(store *Store) *ShipmentService {
	return &ShipmentService{store: store}
}

func (s *ShipmentService) ListPending() []*domain.Shipment {
	var out []*domain.Shipment
	for _, sh := range s.store.Shipments {
		if !sh.Completed {
			out = append(out, sh)
		}
	}
	return out
}

// Resolve dispatches a pending shipment. courier may be nil unless the
// shipment goes by Delivery.
func (s *ShipmentService) Resolve(id uuid.UUID, cost decimal.Decimal, courier *domain.Courier) (*domain.Shipment, error) {
	for _, sh := range s.store.Shipments {
		if sh.ID != id {
			continue
		}
		if err := sh.Resolve(cost, courier); err != nil {
			return nil, err
		}
		return sh, nil
	}
	return nil, fmt.Errorf("%w: shipment %s", domain.ErrNotFound, id)
}

func (s *ShipmentService) Search(c domain.ShipmentCriterion) []*domain.Shipment {
	var out []*domain.Shipment
	for _, sh := range s.store.Shipments {
		if c.Match(sh) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *ShipmentService) All() []*domain.Shipment {
	return s.store.Shipments
}
