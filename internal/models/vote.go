package models

import (
	"time"
)

// Vote is a fact row referencing a user, a poll, and one of the poll's
// options. Votes are owned by none of the three: soft-deleting a poll
// or removing an option leaves vote rows in place. The option-belongs-
// to-poll relation is an application-level invariant checked before
// insert, not a database constraint.
type Vote struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PollID      uint        `gorm:"not null;index" json:"poll_id"`
	Poll        *Poll       `gorm:"foreignKey:PollID" json:"poll,omitempty"`
	OptionID    uint        `gorm:"not null;index" json:"option_id"`
	Option      *PollOption `gorm:"foreignKey:OptionID" json:"option,omitempty"`
	IsAnonymous bool        `gorm:"not null;default:false" json:"is_anonymous"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}
