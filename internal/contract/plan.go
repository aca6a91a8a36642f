package contract

import (
	"errors"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

type GeneratePlanRequest struct {
	Date    string // YYYY-MM-DD in the configured location
	Replace bool
}

func NewGeneratePlanRequest(date string) GeneratePlanRequest {
	return GeneratePlanRequest{Date: date}
}

// DropReason says why a proposed entry was not persisted.
type DropReason string

const (
	DropUnknownCategory DropReason = "unknown_category"
	DropDuplicateEvent  DropReason = "duplicate_event"
)

// DroppedEntry reports a proposal that was left out of the plan.
type DroppedEntry struct {
	Title    string
	Category string
	Reason   DropReason
}

type GeneratePlanResponse struct {
	PlanID     string
	Date       time.Time
	Capacity   domain.Capacity
	Summary    string
	EntryCount int
	Dropped    []DroppedEntry
	Replaced   bool
	Model      string
}

type GeneratePlanErrorCode string

const (
	ErrInvalidDate     GeneratePlanErrorCode = "INVALID_DATE"
	ErrModelNoResponse GeneratePlanErrorCode = "MODEL_NO_RESPONSE"
	ErrInvalidResponse GeneratePlanErrorCode = "INVALID_RESPONSE"
	ErrPlanExists      GeneratePlanErrorCode = "PLAN_EXISTS"
	ErrPersistence     GeneratePlanErrorCode = "PERSISTENCE"
)

// ExcerptLimit caps how much raw model output an INVALID_RESPONSE carries.
const ExcerptLimit = 500

type GeneratePlanError struct {
	Code    GeneratePlanErrorCode
	Message string
	Excerpt string // raw model output, INVALID_RESPONSE only
	Err     error
}

func (e *GeneratePlanError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *GeneratePlanError) Unwrap() error { return e.Err }

// PlanErrorCode returns the code of a *GeneratePlanError anywhere in err's
// chain, or "" when there is none.
func PlanErrorCode(err error) GeneratePlanErrorCode {
	var pe *GeneratePlanError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
