package models

// Row shapes returned by the analytics queries. These are scan targets
// for aggregate reads and are never persisted.

// PollStatus classifies one poll as Active or Expired relative to the
// query's reference time.
type PollStatus struct {
	PollID uint   `json:"poll_id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// PollVoteCount is a per-poll vote tally. Polls with zero votes are
// included.
type PollVoteCount struct {
	PollID uint   `json:"poll_id"`
	Title  string `json:"title"`
	Votes  int64  `json:"votes"`
}

// OptionVoteCount is a per-option vote tally. Options with zero votes
// are included.
type OptionVoteCount struct {
	OptionID uint   `json:"option_id"`
	PollID   uint   `json:"poll_id"`
	Text     string `json:"text"`
	Votes    int64  `json:"votes"`
}

// PollParticipation names a poll a user has voted in at least once.
type PollParticipation struct {
	PollID uint   `json:"poll_id"`
	Title  string `json:"title"`
}

// UserActivity ranks a user by total vote count.
type UserActivity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Votes    int64  `json:"votes"`
}

// TrendingPoll ranks a poll by votes cast inside the trailing window.
type TrendingPoll struct {
	PollID      uint   `json:"poll_id"`
	Title       string `json:"title"`
	RecentVotes int64  `json:"recent_votes"`
}
