package ports

import (
	"context"

	"smebig-warroom/internal/advisor/core/domain"
)

// TaskRepositoryPort persists the task board. Update and Delete return
// domain.ErrTaskNotFound when no row matches.
type TaskRepositoryPort interface {
	List(ctx context.Context, statuses []domain.TaskStatus) ([]domain.Task, error)
	Create(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
