package models

import (
	"time"
)

type Publication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	PublicationDate time.Time `gorm:"autoCreateTime" json:"publication_date"`

	// Votes are loaded with an explicit Preload when the full
	// representation is needed; there is no live back-reference.
	Votes []Vote `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE" json:"votes"`

	// 非数据库字段，查询时计算
	Rating int `gorm:"-" json:"rating"`
}

// ComputeRating sums the vote values. The rating is a view, never stored.
func (p *Publication) ComputeRating() {
	rating := 0
	for _, v := range p.Votes {
		rating += v.Value
	}
	p.Rating = rating
}
