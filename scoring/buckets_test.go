package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guildpulse/models"
)

func TestMessageLengthBucket(t *testing.T) {
	tests := []struct {
		length int
		want   models.MessageLengthBucket
	}{
		{0, models.MessageLengthVeryShort},
		{49, models.MessageLengthVeryShort},
		{50, models.MessageLengthShort},
		{149, models.MessageLengthShort},
		{150, models.MessageLengthMiddle},
		{299, models.MessageLengthMiddle},
		{300, models.MessageLengthLong},
		{10000, models.MessageLengthLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MessageLengthBucket(tt.length), "length %d", tt.length)
	}
}

func TestFrequencyBucket(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("zero last update classifies as veryHigh", func(t *testing.T) {
		assert.Equal(t, models.FrequencyVeryHigh, FrequencyBucket(0, now))
	})

	// The thresholds are compared in milliseconds. An earlier revision of the
	// scorer compared a millisecond gap against second-based constants, which
	// pushed every gap over ~43 seconds into the low bucket.
	t.Run("classifies gaps against millisecond thresholds", func(t *testing.T) {
		tests := []struct {
			gap  time.Duration
			want models.FrequencyBucket
		}{
			{time.Minute, models.FrequencyVeryHigh},
			{11 * time.Hour, models.FrequencyVeryHigh},
			{12*time.Hour - time.Millisecond, models.FrequencyVeryHigh},
			{12 * time.Hour, models.FrequencyHigh},
			{23 * time.Hour, models.FrequencyHigh},
			{24 * time.Hour, models.FrequencyMiddle},
			{47 * time.Hour, models.FrequencyMiddle},
			{48 * time.Hour, models.FrequencyLow},
			{30 * 24 * time.Hour, models.FrequencyLow},
		}

		for _, tt := range tests {
			lastUpdate := now.Add(-tt.gap).UnixMilli()
			assert.Equal(t, tt.want, FrequencyBucket(lastUpdate, now), "gap %s", tt.gap)
		}
	})
}

func TestElapsedMinutes(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    int64
	}{
		{0, 0},
		{10 * time.Second, 0},
		{29 * time.Second, 0},
		{30 * time.Second, 1},
		{90 * time.Second, 2},
		{61 * time.Minute, 61},
	}

	for _, tt := range tests {
		startedAt := now.Add(-tt.elapsed).UnixMilli()
		assert.Equal(t, tt.want, ElapsedMinutes(startedAt, now), "elapsed %s", tt.elapsed)
	}
}
