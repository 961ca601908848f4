package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carbyfah/magic-sub006/internal/service/assignment"
)

// TestValidateServiceAssignment проверяет инвариант "ровно один рейс":
// допустима ссылка либо на рейс маршрута, либо на рейс тура, но не обе и не ни одной.
func TestValidateServiceAssignment(t *testing.T) {
	tests := []struct {
		name        string
		hasRouteRun bool
		hasTourRun  bool
		ok          bool
	}{
		{"route run only", true, false, true},
		{"tour run only", false, true, true},
		{"both references", true, true, false},
		{"no references", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := assignment.ValidateServiceAssignment(tt.hasRouteRun, tt.hasTourRun)

			assert.Equal(t, tt.ok, result.OK)
			assert.NotEmpty(t, result.Message)

			// Обе формы проверки принимают одни и те же комбинации
			err := assignment.Validate(tt.hasRouteRun, tt.hasTourRun)
			assert.Equal(t, tt.ok, err == nil)
		})
	}
}

// TestValidate проверяет сентинельную форму той же проверки.
func TestValidate(t *testing.T) {
	assert.NoError(t, assignment.Validate(true, false))
	assert.NoError(t, assignment.Validate(false, true))
	assert.ErrorIs(t, assignment.Validate(true, true), assignment.ErrBothServiceRefs)
	assert.ErrorIs(t, assignment.Validate(false, false), assignment.ErrNoServiceRef)
}
