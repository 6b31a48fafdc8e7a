package generator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"undercroft/pkg/engine/world"
)

func TestGenerationError_Unwrap(t *testing.T) {
	err := fmt.Errorf("level 3: %w", &GenerationError{
		Stage: StageCarving,
		Kind:  KindUnreachableRoomPair,
		From:  1,
		To:    2,
		Err:   world.ErrNoPath,
	})

	assert.ErrorIs(t, err, ErrUnreachableRoomPair)
	assert.ErrorIs(t, err, world.ErrNoPath)
	assert.NotErrorIs(t, err, ErrPlacementDegenerate)
	assert.Contains(t, err.Error(), "carving: UnreachableRoomPair (room 1 -> room 2)")

	var ge *GenerationError
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, StageCarving, ge.Stage)
}

func TestGenerationError_NoRooms(t *testing.T) {
	err := newError(StagePlacement, KindCanceled, context.Canceled)
	assert.Equal(t, "placement: Canceled: context canceled", err.Error())
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsCanceled(err))
	assert.False(t, Retryable(err))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(newError(StagePlacement, KindPlacementDegenerate, nil)))
	assert.True(t, Retryable(newError(StageCarving, KindUnreachableRoomPair, nil)))
	assert.False(t, Retryable(newError(StageConfig, KindInvalidConfig, nil)))
	assert.False(t, Retryable(errors.New("boom")))
}
