package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := dnderr.NotFound("trap not found").WithMeta("trap_id", "t-1")

	wrapped := dnderr.Wrap(fmt.Errorf("repo: %w", base), "failed to load trap")

	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, "t-1", dnderr.GetMeta(wrapped)["trap_id"])
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_PlainErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(stderrors.New("boom"), "roll failed")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Equal(t, "roll failed: boom", wrapped.Error())
}

func TestWrapWithCode(t *testing.T) {
	wrapped := dnderr.WrapWithCode(stderrors.New("timeout"), dnderr.CodeUnavailable, "dice service")

	assert.True(t, dnderr.IsUnavailable(wrapped))
	assert.False(t, dnderr.IsInvalidArgument(wrapped))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
	assert.Nil(t, dnderr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "nothing"))
}
