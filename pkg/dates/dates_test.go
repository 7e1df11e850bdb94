package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2024", FormatDate(ts))
	assert.Equal(t, "March 5, 2024 14:30", FormatDateTime(ts))
	assert.Equal(t, "March 5, 2024", FormatPtr(&ts))
	assert.Equal(t, "", FormatPtr(nil))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{6 * 24 * time.Hour, "6 days ago"},
		{7 * 24 * time.Hour, "1 week ago"},
		{20 * 24 * time.Hour, "2 weeks ago"},
		{40 * 24 * time.Hour, "May 21, 2024"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeTime(now.Add(-tc.ago), now), "ago=%s", tc.ago)
	}
}

func TestRelativeTimeFutureFallsBackToDate(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "July 1, 2024", RelativeTime(now.Add(24*time.Hour), now))
	assert.Equal(t, "", RelativePtr(nil, now))
}
