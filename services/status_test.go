package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{"PAID", StatusPaid, true},
		{"cAnCeLlEd", StatusCancelled, true},
		{" completed ", StatusCompleted, true},
		{"Shipped", "", false},
		{"", "", false},
		{"Pendingg", "", false},
	}

	for _, tt := range tests {
		canon, ok := CanonicalStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, canon, "input %q", tt.in)
	}
}

func TestIsPending(t *testing.T) {
	assert.True(t, IsPending("Pending"))
	assert.True(t, IsPending("PENDING"))
	assert.False(t, IsPending("Paid"))
	assert.False(t, IsPending(""))
}

func TestAllowedStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"Pending", "Paid", "Cancelled", "Completed"},
		AllowedStatuses())
}
