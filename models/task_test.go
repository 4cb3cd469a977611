package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskToJSON(t *testing.T) {
	task := Task{
		ID:          7,
		Name:        "[Art] Draw tileset",
		Due:         NewDate(2024, time.May, 1),
		User:        "Aidan",
		Status:      "Working on it",
		Category:    "Art",
		Priority:    3,
		Description: "16x16 grass tiles",
		Comments: []Comment{
			{ID: 1, TaskID: 7, Text: "first pass done", Timestamp: time.Date(2024, time.April, 20, 10, 0, 0, 0, time.UTC)},
		},
	}

	data, err := task.ToJSON()
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(7), raw["id"])
	assert.Equal(t, "2024-05-01", raw["due"])
	assert.Equal(t, "Working on it", raw["status"])

	var result Task
	err = result.FromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, task.Name, result.Name)
	assert.Equal(t, task.Due, result.Due)
	assert.Equal(t, task.User, result.User)
	assert.Equal(t, task.Priority, result.Priority)
	assert.Len(t, result.Comments, 1)
	assert.Equal(t, "first pass done", result.Comments[0].Text)
}

func TestTaskFromJSON(t *testing.T) {
	data := `{
		"name": "Fix bug",
		"due": "2024-01-01",
		"user": "A",
		"status": "Inactive",
		"priority": 5
	}`

	var task Task
	err := task.FromJSON([]byte(data))
	assert.NoError(t, err)
	assert.Equal(t, "Fix bug", task.Name)
	assert.Equal(t, NewDate(2024, time.January, 1), task.Due)
	assert.Equal(t, "A", task.User)
	assert.Equal(t, 5, task.Priority)
	assert.Empty(t, task.Category)
}
