package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityMedium, false},
		{"  ", PriorityMedium, false},
		{"high", PriorityHigh, false},
		{"low", PriorityLow, false},
		{"urgent", Priority("urgent"), false},
		{"HIGH", Priority("HIGH"), false},
		{"a-priority-longer-than-twenty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := NewPriority(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Less(t, PriorityLow.Rank(), Priority("legacy").Rank())
}

func TestCallStatus_IsSettable(t *testing.T) {
	for _, s := range []CallStatus{StatusActive, StatusOnHold, StatusCompleted, StatusTransferred} {
		assert.True(t, s.IsSettable(), s)
	}
	assert.False(t, StatusWaiting.IsSettable())
	assert.False(t, CallStatus("bogus").IsSettable())

	_, err := NewCallStatus("bogus")
	assert.Error(t, err)
}

func TestNewResolution(t *testing.T) {
	r, err := NewResolution("callback")
	require.NoError(t, err)
	assert.Equal(t, ResolutionCallback, r)

	_, err = NewResolution("closed")
	assert.Error(t, err)
}
