package models

import (
	"time"
)

// SourceWebsite marks leads captured through the public enquiry form.
const SourceWebsite = "website"

// istLocation is the fixed display zone for human-readable timestamps.
// The stored instant is always UTC.
var istLocation = time.FixedZone("IST", 5*60*60+30*60)

// Lead is a prospective student's submitted contact record. Leads are
// created once by the enquiry endpoint and never mutated or deleted.
type Lead struct {
	// ID is generated by the endpoint, not the database, so creation works
	// identically in fallback mode.
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex:idx_leads_email_phone" json:"email"`
	Phone string `gorm:"not null;uniqueIndex:idx_leads_email_phone" json:"phone"`

	Course  string `json:"course"`
	Address string `json:"address,omitempty"`

	Source       string    `gorm:"default:website" json:"source"`
	CreatedAtUTC time.Time `gorm:"column:created_at_utc;not null;index:,sort:desc" json:"created_at_utc"`
}

// LeadResponse is the wire projection of a Lead. CreatedAt is the IST
// rendering of the stored UTC instant, computed at read time.
type LeadResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Course       string    `json:"course"`
	Address      string    `json:"address,omitempty"`
	Source       string    `json:"source"`
	CreatedAt    string    `json:"createdAt"`
	CreatedAtUTC time.Time `json:"createdAtUTC"`
}

// ToResponse derives the client-facing projection.
func (l Lead) ToResponse() LeadResponse {
	return LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Course:       l.Course,
		Address:      l.Address,
		Source:       l.Source,
		CreatedAt:    l.CreatedAtUTC.In(istLocation).Format("02 Jan 2006, 03:04 PM IST"),
		CreatedAtUTC: l.CreatedAtUTC,
	}
}
