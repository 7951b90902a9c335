package models

import "time"

// Task is scoped to exactly one owning user. The surrogate primary key keeps
// insertion order; TaskID is the wire identifier derived from creation time
// and the normalized title, unique only within the owner's list.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_user_task" json:"-"`
	TaskID      string    `gorm:"not null;uniqueIndex:uidx_user_task" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        string    `gorm:"not null" json:"date"`
	Duration    int       `gorm:"column:dur;not null" json:"dur"`
	Completed   int       `gorm:"column:comp;not null" json:"comp"`
	MonthIndex  int       `gorm:"column:mon;not null" json:"mon"`
	Week        []string  `gorm:"serializer:json" json:"week"`
	Images      []string  `gorm:"serializer:json" json:"img"`
	Status      string    `gorm:"not null" json:"status"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
