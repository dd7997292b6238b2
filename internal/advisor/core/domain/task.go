package domain

import (
	"errors"
	"time"
)

type TaskStatus string

const (
	StatusPool     TaskStatus = "pool"
	StatusApproved TaskStatus = "approved"
	StatusActive   TaskStatus = "active"
	StatusDone     TaskStatus = "done"
)

var TaskStatuses = []TaskStatus{StatusPool, StatusApproved, StatusActive, StatusDone}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type TaskSource string

const (
	SourceAI    TaskSource = "AI"
	SourceHuman TaskSource = "Human"
)

// MaxTaskContent bounds the content of a task in runes.
const MaxTaskContent = 500

var ErrTaskNotFound = errors.New("task not found")

// Task is one recommendation on the optimization board. Pulse is one of
// the six radar axes.
type Task struct {
	ID        int64
	Pulse     string
	Content   string
	Source    TaskSource
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch holds the fields of an update; nil means unchanged.
type TaskPatch struct {
	Status  *TaskStatus
	Content *string
}

type Diagnosis struct {
	ClientName string
	Text       string
	Fallback   bool
}
