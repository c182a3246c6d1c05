package models

type Vote struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	PublicationID uint `gorm:"not null;index;uniqueIndex:idx_votes_publication_user" json:"publication_id"`
	UserID        uint `gorm:"not null;uniqueIndex:idx_votes_publication_user" json:"user_id"`
	Value         int  `gorm:"not null" json:"value"` // 1 or -1
}

// One vote per (user, publication): voting again overwrites the value,
// the unique index backs that invariant at the store level.
