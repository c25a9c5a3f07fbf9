package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStay_BandEdges(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "mid-band hours pass",
			start: "2026-06-10T15:00:00Z",
			end:   "2026-06-13T11:00:00Z",
		},
		{
			name:  "band bounds at the top of the hour pass",
			start: "2026-06-10T23:00:00Z",
			end:   "2026-06-13T12:00:00Z",
		},
		{
			name:    "check-in past the last hour fails",
			start:   "2026-06-10T23:30:00Z",
			end:     "2026-06-13T11:00:00Z",
			wantErr: true,
		},
		{
			name:    "check-out past noon fails",
			start:   "2026-06-10T15:00:00Z",
			end:     "2026-06-13T12:59:00Z",
			wantErr: true,
		},
		{
			name:    "morning check-in fails",
			start:   "2026-06-10T03:00:00Z",
			end:     "2026-06-13T11:00:00Z",
			wantErr: true,
		},
		{
			name:    "evening check-out fails",
			start:   "2026-06-10T15:00:00Z",
			end:     "2026-06-13T18:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseStay(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, start.Before(end))
		})
	}
}

func TestExtendRequest_End(t *testing.T) {
	_, err := ExtendReservationRequest{EndDate: "2026-06-14T11:00:00Z"}.End()
	require.NoError(t, err)

	_, err = ExtendReservationRequest{EndDate: "2026-06-14T12:30:00Z"}.End()
	require.Error(t, err)

	_, err = ExtendReservationRequest{EndDate: "not-a-date"}.End()
	require.Error(t, err)
}
