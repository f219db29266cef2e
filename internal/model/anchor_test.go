package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxRefString(t *testing.T) {
	assert.Equal(t, "given-1", BoxRef{Type: BoxGiven, Number: 1}.String())
	assert.Equal(t, "then-3", BoxRef{Type: BoxThen, Number: 3}.String())
}

func TestAnchorContains(t *testing.T) {
	anchor := Anchor{StartIndex: 10, EndIndex: 20}

	assert.True(t, anchor.Contains(10))
	assert.True(t, anchor.Contains(19))
	assert.False(t, anchor.Contains(20), "the end index is exclusive")
	assert.False(t, anchor.Contains(9))
}

func TestAnchorValidate(t *testing.T) {
	t.Run("accepts a well-formed anchor", func(t *testing.T) {
		anchor := Anchor{Text: "hello", StartIndex: 3, EndIndex: 8}

		assert.NoError(t, anchor.Validate())
	})

	t.Run("rejects an empty range", func(t *testing.T) {
		anchor := Anchor{StartIndex: 5, EndIndex: 5}

		var invalid *ValidationError
		require.ErrorAs(t, anchor.Validate(), &invalid)
		assert.Equal(t, "endIndex", invalid.Field)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		anchor := Anchor{StartIndex: 8, EndIndex: 3}

		assert.Error(t, anchor.Validate())
	})

	t.Run("rejects text shorter than the range", func(t *testing.T) {
		anchor := Anchor{Text: "hi", StartIndex: 0, EndIndex: 5}

		var invalid *ValidationError
		require.ErrorAs(t, anchor.Validate(), &invalid)
		assert.Equal(t, "text", invalid.Field)
	})
}
