package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"smebig-warroom/internal/advisor/core/domain"
	"smebig-warroom/internal/advisor/core/ports"
)

type TaskRepository struct {
	db DB
}

func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ ports.TaskRepositoryPort = (*TaskRepository)(nil)

const taskColumns = `id, pulse, content, source, status, created_at, updated_at`

// an empty status array means no filter
const listTasksSQL = `
SELECT ` + taskColumns + `
FROM optimization_tasks
WHERE cardinality($1::text[]) = 0 OR status = ANY($1::text[])
ORDER BY id DESC`

const createTasksSQL = `
INSERT INTO optimization_tasks (pulse, content, source, status)
SELECT t.pulse, t.content, t.source, t.status
FROM unnest($1::text[], $2::text[], $3::text[], $4::text[]) AS t(pulse, content, source, status)
RETURNING ` + taskColumns

const updateTaskSQL = `
UPDATE optimization_tasks
SET status = COALESCE($2, status),
    content = COALESCE($3, content),
    updated_at = now()
WHERE id = $1
RETURNING ` + taskColumns

const deleteTaskSQL = `DELETE FROM optimization_tasks WHERE id = $1`

func (r *TaskRepository) List(ctx context.Context, statuses []domain.TaskStatus) ([]domain.Task, error) {
	filter := make([]string, len(statuses))
	for i, s := range statuses {
		filter[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx, listTasksSQL, pq.Array(filter))
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return scanTasks(rows)
}

// Create inserts all tasks in one statement and returns them with their
// generated ids and timestamps.
func (r *TaskRepository) Create(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	if len(tasks) == 0 {
		return []domain.Task{}, nil
	}

	pulses := make([]string, len(tasks))
	contents := make([]string, len(tasks))
	sources := make([]string, len(tasks))
	statuses := make([]string, len(tasks))
	for i, t := range tasks {
		pulses[i] = t.Pulse
		contents[i] = t.Content
		sources[i] = string(t.Source)
		statuses[i] = string(t.Status)
	}

	rows, err := r.db.QueryContext(ctx, createTasksSQL,
		pq.Array(pulses), pq.Array(contents), pq.Array(sources), pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("insert tasks: %w", err)
	}
	return scanTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var status, content sql.NullString
	if patch.Status != nil {
		status = sql.NullString{String: string(*patch.Status), Valid: true}
	}
	if patch.Content != nil {
		content = sql.NullString{String: *patch.Content, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, updateTaskSQL, id, status, content)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &tasks[0], nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTasks(rows RowScanner) ([]domain.Task, error) {
	defer rows.Close()

	out := make([]domain.Task, 0)
	for rows.Next() {
		var (
			t              domain.Task
			source, status string
		)
		if err := rows.Scan(
			&t.ID,
			&t.Pulse,
			&t.Content,
			&source,
			&status,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Source = domain.TaskSource(source)
		t.Status = domain.TaskStatus(status)
		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}
