package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeneratePlanRequest_DefaultsToNoReplace(t *testing.T) {
	req := NewGeneratePlanRequest("2026-03-10")
	assert.Equal(t, "2026-03-10", req.Date)
	assert.False(t, req.Replace)
}

func TestGeneratePlanError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &GeneratePlanError{Code: ErrPersistence, Message: "committing plan", Err: cause}

	assert.Equal(t, "PERSISTENCE: committing plan: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &GeneratePlanError{Code: ErrPlanExists, Message: "plan already exists for 2026-03-10"}
	assert.Equal(t, "PLAN_EXISTS: plan already exists for 2026-03-10", bare.Error())
}

func TestPlanErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("cli: %w", &GeneratePlanError{Code: ErrInvalidDate, Message: "bad"})
	assert.Equal(t, ErrInvalidDate, PlanErrorCode(wrapped))
	assert.Equal(t, GeneratePlanErrorCode(""), PlanErrorCode(errors.New("plain")))
	assert.Equal(t, GeneratePlanErrorCode(""), PlanErrorCode(nil))
}
