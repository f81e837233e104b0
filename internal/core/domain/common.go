package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Touch stamps creation and update audit fields for a new record.
func (a *AuditFields) Touch(userID string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
