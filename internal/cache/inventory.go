package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PollKeyPrefix          = "poll:%d"
	PollListKeyPrefix      = "polls:page:%d:%d"
	StatusesKey            = "analytics:statuses"
	PollVotesKey           = "analytics:poll_votes"
	OptionVotesKey         = "analytics:option_votes"
	ParticipationKeyPrefix = "analytics:participation:%d"
	MostActiveKeyPrefix    = "analytics:most_active:%d"
	TrendingKeyPrefix      = "analytics:trending:%d"
)

const (
	PollTTL = 10 * time.Minute
	// Poll lists and analytics include vote tallies, so they go stale quickly.
	PollListTTL  = time.Minute
	AnalyticsTTL = 30 * time.Second
)

func PollKey(pollID uint) string {
	return fmt.Sprintf(PollKeyPrefix, pollID)
}

func PollListKey(limit, offset int) string {
	return fmt.Sprintf(PollListKeyPrefix, limit, offset)
}

func ParticipationKey(userID uint) string {
	return fmt.Sprintf(ParticipationKeyPrefix, userID)
}

func MostActiveKey(limit int) string {
	return fmt.Sprintf(MostActiveKeyPrefix, limit)
}

func TrendingKey(limit int) string {
	return fmt.Sprintf(TrendingKeyPrefix, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePoll drops the cached poll and any list pages containing it.
func InvalidatePoll(ctx context.Context, pollID uint) {
	Invalidate(ctx, PollKey(pollID))
	InvalidatePattern(ctx, "polls:page:*")
}

// InvalidateAnalytics drops every cached analytics result. Vote writes touch
// all of them, so a blanket sweep is simpler than tracking which keys changed.
func InvalidateAnalytics(ctx context.Context) {
	Invalidate(ctx, StatusesKey)
	Invalidate(ctx, PollVotesKey)
	Invalidate(ctx, OptionVotesKey)
	InvalidatePattern(ctx, "analytics:participation:*")
	InvalidatePattern(ctx, "analytics:most_active:*")
	InvalidatePattern(ctx, "analytics:trending:*")
}

// InvalidatePattern deletes all keys matching the glob pattern.
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
