package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFollowChange(t *testing.T) {
	t.Run("FollowIncrementsBothSides", func(t *testing.T) {
		actor := &User{Following: 3}
		target := &User{Followers: 10}

		ApplyFollowChange(actor, target, true)

		assert.Equal(t, 4, actor.Following)
		assert.Equal(t, 11, target.Followers)
	})

	t.Run("ToggleIsItsOwnInverse", func(t *testing.T) {
		actor := &User{Following: 3}
		target := &User{Followers: 10}

		ApplyFollowChange(actor, target, true)
		ApplyFollowChange(actor, target, false)

		assert.Equal(t, 3, actor.Following)
		assert.Equal(t, 10, target.Followers)
	})

	t.Run("CountsNeverGoNegative", func(t *testing.T) {
		actor := &User{Following: 0}
		target := &User{Followers: 0}

		ApplyFollowChange(actor, target, false)
		ApplyFollowChange(actor, target, false)

		assert.Equal(t, 0, actor.Following)
		assert.Equal(t, 0, target.Followers)
	})
}
