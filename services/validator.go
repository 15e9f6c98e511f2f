package services

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"case_track_app_go/models"
)

// Validation messages surfaced inline on the form
const (
	MsgFieldRequired = "This field is required."
	MsgInvalidDate   = "Invalid date format. Please use YYYY-MM-DD."
)

// MsgInvalidStatus lists the full enumeration so the user can correct the value
func MsgInvalidStatus() string {
	return fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(models.CaseStatuses, ", "))
}

// FieldErrors maps a field name to its validation messages.
// An empty map means the submission is acceptable.
type FieldErrors map[string][]string

// Has reports whether the field has at least one error
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// First returns the first error for the field, or ""
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// CaseSubmission is the raw, stringly form data for a case, captured before
// any typing so a failed submission can repopulate the form verbatim.
type CaseSubmission struct {
	CaseNumber string `json:"case_number"`
	CaseName   string `json:"case_name"`
	ClientName string `json:"client_name"`
	Deadline   string `json:"deadline"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (s CaseSubmission) Trimmed() CaseSubmission {
	return CaseSubmission{
		CaseNumber: strings.TrimSpace(s.CaseNumber),
		CaseName:   strings.TrimSpace(s.CaseName),
		ClientName: strings.TrimSpace(s.ClientName),
		Deadline:   strings.TrimSpace(s.Deadline),
		Status:     strings.TrimSpace(s.Status),
		Notes:      strings.TrimSpace(s.Notes),
	}
}

// Fields converts a submission into typed case fields. Call it only after
// ValidateCaseSubmission has accepted the submission.
func (s CaseSubmission) Fields() (CaseFields, error) {
	t := s.Trimmed()

	var deadline *time.Time
	if t.Deadline != "" {
		parsed, err := ParseDate(t.Deadline)
		if err != nil {
			return CaseFields{}, err
		}
		deadline = &parsed
	}

	return CaseFields{
		CaseNumber: t.CaseNumber,
		CaseName:   t.CaseName,
		ClientName: t.ClientName,
		Deadline:   deadline,
		Status:     t.Status,
		Notes:      t.Notes,
	}, nil
}

// ValidateCaseSubmission checks a raw submission against the field rules.
// Pure and deterministic: no rule short-circuits another field's rules.
func ValidateCaseSubmission(sub CaseSubmission) FieldErrors {
	s := sub.Trimmed()

	err := validation.ValidateStruct(&s,
		validation.Field(&s.CaseNumber, validation.Required.Error(MsgFieldRequired)),
		validation.Field(&s.CaseName, validation.Required.Error(MsgFieldRequired)),
		validation.Field(&s.ClientName, validation.Required.Error(MsgFieldRequired)),
		validation.Field(&s.Status,
			validation.Required.Error(MsgFieldRequired),
			validation.In(statusValues()...).Error(MsgInvalidStatus()),
		),
		validation.Field(&s.Deadline, validation.Date(DateLayout).Error(MsgInvalidDate)),
	)
	if err == nil {
		return FieldErrors{}
	}

	result := FieldErrors{}
	if errs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range errs {
			result[field] = append(result[field], fieldErr.Error())
		}
		return result
	}

	result["__all__"] = []string{err.Error()}
	return result
}

func statusValues() []interface{} {
	values := make([]interface{}, len(models.CaseStatuses))
	for i, s := range models.CaseStatuses {
		values[i] = s
	}
	return values
}
