package store

import (
	"context"
	"errors"

	"leadgate/models"
)

// ErrDuplicateLead reports that a lead with the same (email, phone) pair
// already exists. It is expected control flow, not a store fault.
var ErrDuplicateLead = errors.New("lead with this email and phone already exists")

// LeadStore persists and lists leads. Insert must be atomic with respect
// to the (email, phone) uniqueness rule: of N concurrent inserts sharing a
// key, exactly one succeeds and the rest observe ErrDuplicateLead.
type LeadStore interface {
	Insert(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context) ([]models.Lead, error)
}
