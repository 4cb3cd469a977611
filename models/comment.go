package models

import (
	"encoding/json"
	"time"
)

// Comment is an immutable annotation on a task. Comments are never edited
// or deleted on their own; they only go away when their task is deleted.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    int64     `gorm:"not null;index" json:"task_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (c *Comment) FromJSON(data []byte) error {
	return json.Unmarshal(data, c)
}

func (c *Comment) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}
