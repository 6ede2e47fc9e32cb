package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		slot    string
		want    int
		wantErr bool
	}{
		{name: "start only", slot: "10:00", want: 600},
		{name: "start and end", slot: "10:30-11:30", want: 630},
		{name: "midnight", slot: "00:00", want: 0},
		{name: "late evening", slot: "23:45", want: 1425},
		{name: "spaces around range", slot: "09:15 - 10:15", want: 555},
		{name: "empty", slot: "", wantErr: true},
		{name: "garbage", slot: "half past ten", wantErr: true},
		{name: "hour out of range", slot: "25:00", wantErr: true},
		{name: "minute out of range", slot: "10:75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.slot)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDuration(t *testing.T) {
	for n := 0; n <= 10; n++ {
		assert.Equal(t, 60+30*n, ComputeDuration(60, n))
	}
	assert.Equal(t, 90, ComputeDuration(90, 0))
}
