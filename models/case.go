package models

import (
	"time"
)

// Case status constants
const (
	CaseStatusOpen             = "Open"
	CaseStatusPending          = "Pending"
	CaseStatusDiscovery        = "Discovery"
	CaseStatusHearingScheduled = "Hearing Scheduled"
	CaseStatusSettled          = "Settled"
	CaseStatusClosed           = "Closed"
	CaseStatusArchived         = "Archived"
)

// CaseStatuses is the fixed, ordered status enumeration. The first element
// is the default applied to imported rows with an empty status.
var CaseStatuses = []string{
	CaseStatusOpen,
	CaseStatusPending,
	CaseStatusDiscovery,
	CaseStatusHearingScheduled,
	CaseStatusSettled,
	CaseStatusClosed,
	CaseStatusArchived,
}

// DefaultCaseStatus returns the first enumeration value
func DefaultCaseStatus() string {
	return CaseStatuses[0]
}

// Case represents a tracked legal-matter record
type Case struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case identification
	CaseNumber string `gorm:"not null" json:"case_number"`
	CaseName   string `gorm:"not null" json:"case_name"`
	ClientName string `gorm:"not null" json:"client_name"`

	// Lifecycle
	Deadline *time.Time `json:"deadline,omitempty"`
	Status   string     `gorm:"not null;default:Open" json:"status"`

	Notes string `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// DeadlineDisplay returns the deadline as YYYY-MM-DD, or "" when unset
func (c Case) DeadlineDisplay() string {
	if c.Deadline == nil {
		return ""
	}
	return c.Deadline.Format("2006-01-02")
}

// IsClosed checks if the case is closed
func (c Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsArchived checks if the case is archived
func (c Case) IsArchived() bool {
	return c.Status == CaseStatusArchived
}

// IsValidCaseStatus checks if the status is a member of the enumeration
func IsValidCaseStatus(status string) bool {
	for _, s := range CaseStatuses {
		if s == status {
			return true
		}
	}
	return false
}
