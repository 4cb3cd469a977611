package models

import (
	"encoding/json"
)

type Task struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Due         Date      `gorm:"type:date;not null" json:"due"`
	User        string    `gorm:"not null" json:"user"`
	Status      string    `gorm:"not null" json:"status"`
	Category    string    `gorm:"default:''" json:"category"`
	Priority    int       `gorm:"default:0" json:"priority"`
	Description string    `gorm:"default:''" json:"description"`
	Comments    []Comment `gorm:"foreignKey:TaskID" json:"comments"`
}

func (t *Task) FromJSON(data []byte) error {
	return json.Unmarshal(data, t)
}

func (t *Task) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}
