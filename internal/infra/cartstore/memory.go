package cartstore

import (
	"encoding/json"

	"stitchcart/internal/domain/cart"
	"stitchcart/internal/pkg/errs"
)

// MemoryStore keeps both cart slots in memory. It round-trips snapshots
// through JSON so tests exercise the same serialization as the cookie store.
type MemoryStore struct {
	slots map[cart.Kind][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[cart.Kind][]byte)}
}

func (s *MemoryStore) Load(kind cart.Kind) (*cart.Cart, error) {
	payload, ok := s.slots[kind]
	if !ok {
		return nil, nil
	}

	var snapshot cart.Cart
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart snapshot")
	}
	return &snapshot, nil
}

func (s *MemoryStore) Save(c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart snapshot")
	}
	s.slots[c.Kind] = payload
	return nil
}
