package model

import "time"

// TodoStatus is the progress state of a to-do item.
type TodoStatus string

const (
	StatusPending    TodoStatus = "PENDING"
	StatusInProgress TodoStatus = "IN_PROGRESS"
	StatusCompleted  TodoStatus = "COMPLETED"
)

// Valid reports whether s is a known status.
func (s TodoStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Todo is a to-do item owned by a user. UserID never changes after creation.
type Todo struct {
	ID          string     `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" bson:"title" gorm:"size:20;not null" validate:"required,min=3,max=20"`
	Description string     `json:"description" bson:"description" gorm:"size:200;not null" validate:"required,min=10,max=200"`
	Status      TodoStatus `json:"status" bson:"status" gorm:"size:16;default:'PENDING'" validate:"oneof=PENDING IN_PROGRESS COMPLETED"`
	UserID      string     `json:"user_id" bson:"userId" gorm:"type:char(36);not null;index" validate:"required"`
	CreatedAt   time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updatedAt"`
}

// ApplyDefaults fills the status when it was left empty.
func (t *Todo) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusPending
	}
}

// Validate checks the document against its schema.
func (t *Todo) Validate() error {
	return validateStruct(t)
}
