package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category Category
		severity Severity
	}{
		{"config", ErrCodeConfigInvalid, CategoryConfig, SeverityError},
		{"index", ErrCodeCorpusInvalid, CategoryIndex, SeverityError},
		{"stats unavailable is fatal", ErrCodeStatsUnavailable, CategoryIndex, SeverityFatal},
		{"validation", ErrCodeFlagsMismatch, CategoryValidation, SeverityError},
		{"seek failure is fatal", ErrCodeSeekFailed, CategoryLookup, SeverityFatal},
		{"handle creation", ErrCodeHandleCreate, CategoryLookup, SeverityError},
		{"internal", ErrCodeInternal, CategoryInternal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
		})
	}
}

func TestLensError_ErrorFormat(t *testing.T) {
	err := New(ErrCodeUnknownField, "field not indexed", nil)
	assert.Equal(t, "[ERR_205_UNKNOWN_FIELD] field not indexed", err.Error())
}

func TestLensError_UnwrapChain(t *testing.T) {
	// Given: a wrapped I/O-style cause
	cause := stderrors.New("read failed")
	err := StatsUnavailable("body", cause)

	// Then: errors.Is finds the cause through the chain
	assert.True(t, stderrors.Is(err, cause))

	// And: a further fmt wrap still resolves by code
	outer := fmt.Errorf("session setup: %w", err)
	assert.True(t, stderrors.Is(outer, &LensError{Code: ErrCodeStatsUnavailable}))
}

func TestLensError_IsMatchesByCode(t *testing.T) {
	a := FlagsMismatch("positions requested on a frequency-only handle")
	b := &LensError{Code: ErrCodeFlagsMismatch}
	c := &LensError{Code: ErrCodeSeekFailed}

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestWithDetail_Accumulates(t *testing.T) {
	err := HandleCreate("fox", nil).WithDetail("field", "body")

	require.NotNil(t, err.Details)
	assert.Equal(t, "fox", err.Details["term"])
	assert.Equal(t, "body", err.Details["field"])
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(SeekFailed("fox", nil)))
	assert.True(t, IsFatal(StatsUnavailable("body", nil)))
	assert.False(t, IsFatal(HandleCreate("fox", nil)))
	assert.False(t, IsFatal(stderrors.New("plain")))
	assert.False(t, IsFatal(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidArgument, GetCode(InvalidArgument("empty field name")))
	assert.Equal(t, "", GetCode(stderrors.New("plain")))
}
