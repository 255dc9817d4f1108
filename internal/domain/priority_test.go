package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 0, PriorityUrgent.Rank())
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())

	// Unknown and absent priorities rank as medium.
	assert.Equal(t, 2, Priority("critical").Rank())
	assert.Equal(t, 2, Priority("").Rank())
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityMedium, ParsePriority(""))
	assert.Equal(t, PriorityUrgent, ParsePriority("urgent"))
	assert.Equal(t, Priority("whatever"), ParsePriority("whatever"))
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, Priority("critical").IsValid())
}
