package domain

import "time"

type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"column:user_id;size:128;not null;uniqueIndex:idx_favorite_user_facility" json:"user_id"`
	FacilityID string    `gorm:"column:facility_id;size:512;not null;uniqueIndex:idx_favorite_user_facility" json:"facility_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
