package store

import (
	"context"
	"sync"

	"leadgate/models"
)

// MemoryLeadStore is the fallback LeadStore used when no database is
// configured. Leads live only for the lifetime of the process.
//
// Known divergence from the durable store: the (email, phone) uniqueness
// rule is not enforced here, so duplicate submissions are accepted.
type MemoryLeadStore struct {
	mu    sync.Mutex
	leads []models.Lead
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{}
}

func (s *MemoryLeadStore) Insert(_ context.Context, lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, *lead)
	return nil
}

// List returns leads newest first.
func (s *MemoryLeadStore) List(_ context.Context) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lead, 0, len(s.leads))
	for i := len(s.leads) - 1; i >= 0; i-- {
		out = append(out, s.leads[i])
	}
	return out, nil
}
