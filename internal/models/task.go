package models

import "time"

type Task struct {
	Base        `bson:",inline"`
	Owned       `bson:",inline"`
	Category    TaskCategory `gorm:"type:varchar(20);not null" bson:"category" json:"category" binding:"required,enum"`
	Title       string       `gorm:"type:varchar(255);not null" bson:"title" json:"title" binding:"required"`
	Description string       `gorm:"type:text" bson:"description" json:"description"`
	DueDate     *time.Time   `bson:"due_date" json:"dueDate"`
	Priority    Priority     `gorm:"type:varchar(10);not null" bson:"priority" json:"priority" binding:"omitempty,enum"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null" bson:"status" json:"status" binding:"omitempty,enum"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) DuplicateKey() map[string]any {
	return map[string]any{
		"category":    t.Category,
		"title":       t.Title,
		"description": t.Description,
		"due_date":    timeOrNil(t.DueDate),
		"priority":    t.Priority,
		"status":      t.Status,
	}
}

func (t *Task) Normalize() {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = TaskStatusNotStarted
	}
	t.DueDate = utcPtr(t.DueDate)
}
