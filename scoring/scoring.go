// Package scoring holds the pure activity-score functions and the bucket
// classifiers. Everything here is deterministic and side-effect free.
package scoring

import (
	"github.com/shopspring/decimal"

	"guildpulse/models"
)

// Per-unit score weights. Counter weights reward active contributions,
// frequency weights reward consistently-active users over bursty ones and
// length weights reward substantial messages.
var (
	weightMessage   = decimal.NewFromInt(3)
	weightReply     = decimal.NewFromInt(2)
	weightReaction  = decimal.NewFromInt(1)
	weightMentioned = decimal.RequireFromString("0.5")

	weightFreqVeryHigh = decimal.NewFromInt(1)
	weightFreqHigh     = decimal.RequireFromString("0.5")
	weightFreqMiddle   = decimal.RequireFromString("0.2")
	weightFreqLow      = decimal.RequireFromString("0.05")

	weightLenVeryShort = decimal.RequireFromString("0.05")
	weightLenShort     = decimal.RequireFromString("0.2")
	weightLenMiddle    = decimal.RequireFromString("0.5")
	weightLenLong      = decimal.NewFromInt(1)

	weightScreencastMinute   = decimal.NewFromInt(3)
	weightVideoMinute        = decimal.NewFromInt(2)
	weightMicrophoneMinute   = decimal.NewFromInt(1)
	weightVoiceChannelMinute = decimal.RequireFromString("0.25")
)

// ActivityScore computes the message-activity portion of a record's score,
// rounded half-up to the nearest integer. Zero-valued counters and
// histograms contribute nothing, so partial input never fails.
func ActivityScore(
	messageCount, replyCount, reactionCount, mentionedCount int64,
	freq models.FrequencyCounts,
	lengths models.MessageLengthCounts,
) int64 {
	total := decimal.Sum(
		term(messageCount, weightMessage),
		term(replyCount, weightReply),
		term(reactionCount, weightReaction),
		term(mentionedCount, weightMentioned),
		term(freq.VeryHigh, weightFreqVeryHigh),
		term(freq.High, weightFreqHigh),
		term(freq.Middle, weightFreqMiddle),
		term(freq.Low, weightFreqLow),
		term(lengths.VeryShort, weightLenVeryShort),
		term(lengths.Short, weightLenShort),
		term(lengths.Middle, weightLenMiddle),
		term(lengths.Long, weightLenLong),
	)
	return total.Round(0).IntPart()
}

// AudioVideoScore computes the audio/video portion of a record's score from
// the cumulative minute totals. A nil aggregate scores zero.
func AudioVideoScore(av *models.AudioVideoActivities) int64 {
	if av == nil {
		return 0
	}
	total := decimal.Sum(
		term(av.TotalTimeWithScreencast, weightScreencastMinute),
		term(av.TotalTimeWithVideo, weightVideoMinute),
		term(av.TotalTimeWithMicrophone, weightMicrophoneMinute),
		term(av.TotalTimeInVoiceChannel, weightVoiceChannelMinute),
	)
	return total.Round(0).IntPart()
}

// RecordScore is the combined score persisted on a record: message score
// plus audio/video score, never weighted against each other.
func RecordScore(record *models.ActivityRecord) int64 {
	return ActivityScore(
		record.MessageCount,
		record.ReplyCount,
		record.ReactionCount,
		record.MentionedCount,
		record.FrequencyCounts,
		record.MessageLengthCounts,
	) + AudioVideoScore(&record.AudioVideoActivities)
}

func term(count int64, weight decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(count).Mul(weight)
}
