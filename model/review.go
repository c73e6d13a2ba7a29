package model

import "time"

// Review belongs to exactly one Location. Its id is only meaningful within
// the parent location. Seq materializes insertion order.
type Review struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	LocationID string    `gorm:"column:location_id;type:uuid;not null;index" json:"-"`
	Seq        int64     `gorm:"column:seq;autoIncrement;uniqueIndex" json:"-"`
	Author     string    `gorm:"column:author;type:text;not null" json:"author"`
	Rating     int       `gorm:"column:rating;type:integer;not null" json:"rating"`
	ReviewText string    `gorm:"column:review_text;type:text;not null" json:"reviewText"`
	CreatedOn  time.Time `gorm:"column:created_on;type:timestamptz;not null" json:"createdOn"`
}

func (Review) TableName() string {
	return "review"
}
