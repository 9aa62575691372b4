package tradingday

import (
	"testing"
	"time"
)

func TestReference(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before cutoff returns previous day",
			now:  time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at cutoff returns same day",
			now:  time.Date(2025, 1, 15, 20, 30, 0, 0, time.UTC),
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "one minute before cutoff returns previous day",
			now:  time.Date(2025, 1, 15, 20, 29, 0, 0, time.UTC),
			want: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "after cutoff returns same day",
			now:  time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "cutoff evaluated in local zone",
			now:  time.Date(2025, 1, 15, 21, 0, 0, 0, seoul),
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary before cutoff",
			now:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year boundary before cutoff",
			now:  time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC),
			want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reference(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("Reference(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2025, 6, 3, 17, 45, 12, 999, time.FixedZone("KST", 9*60*60))
	got := Truncate(in)
	want := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Truncate(%v) = %v, want %v", in, got, want)
	}
}
