package scoring

import (
	"time"

	"guildpulse/models"
)

// MessageLengthBucket classifies a message character length. Bucket
// boundaries are half-open: exactly 50 classifies as short.
func MessageLengthBucket(length int) models.MessageLengthBucket {
	switch {
	case length < 50:
		return models.MessageLengthVeryShort
	case length < 150:
		return models.MessageLengthShort
	case length < 300:
		return models.MessageLengthMiddle
	default:
		return models.MessageLengthLong
	}
}

// FrequencyBucket classifies the gap between now and the previous update.
// A zero lastUpdate (no recorded history) classifies as veryHigh.
// The gap and the 12h/24h/48h thresholds are compared in milliseconds.
func FrequencyBucket(lastUpdateEpochMs int64, now time.Time) models.FrequencyBucket {
	if lastUpdateEpochMs == 0 {
		return models.FrequencyVeryHigh
	}

	gap := time.Duration(now.UnixMilli()-lastUpdateEpochMs) * time.Millisecond

	switch {
	case gap < 12*time.Hour:
		return models.FrequencyVeryHigh
	case gap < 24*time.Hour:
		return models.FrequencyHigh
	case gap < 48*time.Hour:
		return models.FrequencyMiddle
	default:
		return models.FrequencyLow
	}
}

// ElapsedMinutes converts an elapsed session span to whole minutes,
// rounded to the nearest minute (sub-30s spans round to zero).
func ElapsedMinutes(startedAtEpochMs int64, now time.Time) int64 {
	elapsed := time.Duration(now.UnixMilli()-startedAtEpochMs) * time.Millisecond
	return int64((elapsed + 30*time.Second) / time.Minute)
}
