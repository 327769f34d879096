package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndNewf(t *testing.T) {
	err := New(CodeNotFound, "no such stake")
	assert.Equal(t, "not_found: no such stake", err.Error())

	err = Newf(CodeInvalidAmount, "amount %d below minimum %d", 5, 10)
	assert.Equal(t, "invalid_amount: amount 5 below minimum 10", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to persist event")

	assert.Contains(t, err.Error(), "internal: failed to persist event")
	assert.ErrorIs(t, err, cause, "the cause stays reachable through Unwrap")

	assert.Nil(t, Wrap(nil, CodeInternal, "nothing"))
}

func TestHasCode(t *testing.T) {
	err := New(CodePaused, "pool is paused")
	assert.True(t, HasCode(err, CodePaused))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(nil, CodePaused))
	assert.False(t, HasCode(errors.New("plain"), CodePaused))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeInsufficientReserve, "reserve too small")
	outer := Wrap(inner, CodeInternal, "claim failed")
	wrapped := fmt.Errorf("handler: %w", outer)

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.True(t, HasCode(wrapped, CodeInsufficientReserve), "inner codes stay visible")
	assert.False(t, HasCode(wrapped, CodeNotFound))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotMatured, CodeOf(New(CodeNotMatured, "too early")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")), "uncoded errors default to internal")

	outer := Wrap(New(CodeNotFound, "missing"), CodeInternal, "lookup failed")
	assert.Equal(t, CodeInternal, CodeOf(outer), "the outermost code wins")
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "pool is paused", MessageOf(New(CodePaused, "pool is paused")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}

func TestIsAliasesHasCode(t *testing.T) {
	err := New(CodeAlreadyExists, "duplicate admin")
	require.True(t, Is(err, CodeAlreadyExists))
	require.False(t, Is(err, CodeCapacityExceeded))
}
