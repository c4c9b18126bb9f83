package entity

import (
	"time"

	"github.com/lib/pq"
)

type Advocate struct {
	ID                int            `gorm:"primaryKey"`
	FirstName         string         `gorm:"type:text;not null;uniqueIndex:advocates_unique_name_idx,priority:1"`
	LastName          string         `gorm:"type:text;not null;uniqueIndex:advocates_unique_name_idx,priority:2"`
	City              string         `gorm:"type:text;not null"`
	Degree            string         `gorm:"type:text;not null"`
	Specialties       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	YearsOfExperience int            `gorm:"not null"`
	PhoneNumber       int64          `gorm:"type:bigint;not null"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (Advocate) TableName() string {
	return "advocates"
}
