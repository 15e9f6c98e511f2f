package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"case_track_app_go/models"
)

// ErrCaseNotFound signals a lookup miss. It is a normal outcome, not a fault.
var ErrCaseNotFound = errors.New("case not found")

// CaseFields carries the replaceable fields of a case. The identifier and
// created_at are owned by the store and never caller-supplied.
type CaseFields struct {
	CaseNumber string
	CaseName   string
	ClientName string
	Deadline   *time.Time
	Status     string
	Notes      string
}

// CaseStore owns the case records. Identifiers are minted by the underlying
// AUTOINCREMENT column, so they keep increasing even after deletions.
// The store adds no locking of its own; callers serialize mutations.
type CaseStore struct {
	db *gorm.DB
}

func NewCaseStore(db *gorm.DB) *CaseStore {
	return &CaseStore{db: db}
}

// Create stores a new case with a freshly minted identifier
func (s *CaseStore) Create(fields CaseFields) (*models.Case, error) {
	record := models.Case{
		CaseNumber: fields.CaseNumber,
		CaseName:   fields.CaseName,
		ClientName: fields.ClientName,
		Deadline:   fields.Deadline,
		Status:     fields.Status,
		Notes:      fields.Notes,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// Get looks up a case by identifier
func (s *CaseStore) Get(id uint) (*models.Case, error) {
	var record models.Case
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	return &record, nil
}

// Update replaces all fields except id and created_at and refreshes updated_at
func (s *CaseStore) Update(id uint, fields CaseFields) (*models.Case, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	record.CaseNumber = fields.CaseNumber
	record.CaseName = fields.CaseName
	record.ClientName = fields.ClientName
	record.Deadline = fields.Deadline
	record.Status = fields.Status
	record.Notes = fields.Notes

	if err := s.db.Save(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a case and reports whether a record was actually removed
func (s *CaseStore) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.Case{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// List returns all cases in insertion order
func (s *CaseStore) List() ([]models.Case, error) {
	var records []models.Case
	if err := s.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
