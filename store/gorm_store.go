package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"leadgate/models"
)

// GormLeadStore is the durable LeadStore backed by Postgres.
type GormLeadStore struct {
	db *gorm.DB
}

func NewGormLeadStore(db *gorm.DB) *GormLeadStore {
	return &GormLeadStore{db: db}
}

// Insert writes the lead atomically. The composite unique index on
// (email, phone) carries the deduplication: a conflicting insert is a
// no-op and reported as ErrDuplicateLead, so detection never races with a
// separate existence query.
func (s *GormLeadStore) Insert(ctx context.Context, lead *models.Lead) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "phone"}},
			DoNothing: true,
		}).
		Create(lead)
	if result.Error != nil {
		return fmt.Errorf("failed to insert lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateLead
	}
	return nil
}

// List returns all leads, most recent first.
func (s *GormLeadStore) List(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := s.db.WithContext(ctx).
		Order("created_at_utc DESC").
		Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}
	return leads, nil
}
