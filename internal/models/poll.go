package models

import (
	"time"
)

// Poll status labels computed at query time. Expiration is an attribute,
// not a state transition: a poll is Active iff its expiration lies
// strictly in the future at the moment of the query.
const (
	PollStatusActive  = "Active"
	PollStatusExpired = "Expired"
)

// Poll represents a question owned by a single creator. Polls are never
// physically deleted; IsDeleted marks them logically removed.
type Poll struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `gorm:"not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description,omitempty"`
	CreatorID     uint         `gorm:"not null;index" json:"creator_id"`
	Creator       *User        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	ExpiresAt     time.Time    `gorm:"not null;index" json:"expires_at"`
	IsMultiSelect bool         `gorm:"not null;default:false" json:"is_multi_select"`
	IsDeleted     bool         `gorm:"not null;default:false;index" json:"is_deleted"`
	Options       []PollOption `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	// VotesCount is not persisted; computed at query time
	VotesCount int       `gorm:"->" json:"votes_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PollOption is one answer of a poll. Options are cascade-deleted only
// when their poll is physically removed; a soft-deleted poll leaves its
// options untouched, and options carry their own removal flag.
type PollOption struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PollID    uint   `gorm:"not null;index" json:"poll_id"`
	Text      string `gorm:"not null" json:"text"`
	IsDeleted bool   `gorm:"not null;default:false" json:"is_deleted"`
	// VotesCount is not persisted; computed at query time
	VotesCount int       `gorm:"->" json:"votes_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
