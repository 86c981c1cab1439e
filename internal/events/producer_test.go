package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_NoBrokers(t *testing.T) {
	assert.Nil(t, NewProducer(nil, "pollbox.votes"))
	assert.Nil(t, NewProducer([]string{}, "pollbox.votes"))
}

func TestProducer_NilIsNoop(t *testing.T) {
	var p *Producer
	err := p.PublishVote(context.Background(), 1, 2, 3, false, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestVoteEvent_AnonymousOmitsUser(t *testing.T) {
	castAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	event := VoteEvent{
		EventID:     "e-1",
		PollID:      2,
		OptionID:    6,
		IsAnonymous: true,
		CastAt:      castAt,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	_, hasUser := decoded["user_id"]
	assert.False(t, hasUser)
	assert.Equal(t, true, decoded["is_anonymous"])
}
