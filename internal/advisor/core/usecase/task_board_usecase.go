package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/advisor/core/domain"
	"smebig-warroom/internal/advisor/core/ports"
	analytics "smebig-warroom/internal/analytics/core/domain"
	"smebig-warroom/internal/platform/llm"
)

// TasksPerPulse is how many AI tasks Generate keeps per axis.
const TasksPerPulse = 2

type CreateTaskInput struct {
	Pulse   string
	Content string
}

type UpdateTaskInput struct {
	ID      int64
	Status  *string
	Content *string
}

type TaskBoardUseCase struct {
	repo ports.TaskRepositoryPort
	gen  ports.TextGeneratorPort
}

// NewTaskBoardUseCase accepts a nil generator; Generate then fails with
// ErrNarratorUnavailable.
func NewTaskBoardUseCase(repo ports.TaskRepositoryPort, gen ports.TextGeneratorPort) *TaskBoardUseCase {
	return &TaskBoardUseCase{repo: repo, gen: gen}
}

// List returns tasks newest first, optionally filtered by status.
func (uc *TaskBoardUseCase) List(ctx context.Context, statuses []string) ([]domain.Task, error) {
	filter := make([]domain.TaskStatus, 0, len(statuses))
	for _, s := range statuses {
		st, err := parseStatus(s)
		if err != nil {
			return nil, err
		}
		filter = append(filter, st)
	}

	tasks, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create adds a consultant-written task. It is approved right away.
func (uc *TaskBoardUseCase) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	pulse, err := parsePulse(in.Pulse)
	if err != nil {
		return nil, err
	}
	content, err := parseContent(in.Content)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, []domain.Task{{
		Pulse:   pulse,
		Content: content,
		Source:  domain.SourceHuman,
		Status:  domain.StatusApproved,
	}})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if len(created) != 1 {
		return nil, fmt.Errorf("create task: expected 1 row, got %d", len(created))
	}
	return &created[0], nil
}

// Generate asks the model for two tasks per pulse and stores them in the
// pool. Answers for unknown pulses and surplus answers are dropped.
func (uc *TaskBoardUseCase) Generate(ctx context.Context) ([]domain.Task, error) {
	if uc.gen == nil {
		return nil, ErrNarratorUnavailable
	}

	text, err := uc.gen.GenerateText(ctx, tasksPrompt())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNarratorFailed, err)
	}

	var answers []struct {
		Pulse   string `json:"pulse"`
		Content string `json:"content"`
	}
	if err := llm.DecodeJSON(text, &answers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNarratorFailed, err)
	}

	perPulse := make(map[string]int, len(analytics.Pulses))
	tasks := make([]domain.Task, 0, len(analytics.Pulses)*TasksPerPulse)
	dropped := 0
	for _, a := range answers {
		pulse, err := parsePulse(a.Pulse)
		if err != nil || perPulse[pulse] >= TasksPerPulse {
			dropped++
			continue
		}
		content, err := parseContent(a.Content)
		if err != nil {
			dropped++
			continue
		}
		perPulse[pulse]++
		tasks = append(tasks, domain.Task{
			Pulse:   pulse,
			Content: content,
			Source:  domain.SourceAI,
			Status:  domain.StatusPool,
		})
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: no usable tasks in answer", ErrNarratorFailed)
	}

	created, err := uc.repo.Create(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("store generated tasks: %w", err)
	}

	log.WithFields(log.Fields{
		"component": "tasks",
		"created":   len(created),
		"dropped":   dropped,
	}).Info("generated tasks")

	return created, nil
}

func (uc *TaskBoardUseCase) Update(ctx context.Context, in UpdateTaskInput) (*domain.Task, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if in.Status == nil && in.Content == nil {
		return nil, ErrEmptyPatch
	}

	var patch domain.TaskPatch
	if in.Status != nil {
		st, err := parseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &st
	}
	if in.Content != nil {
		content, err := parseContent(*in.Content)
		if err != nil {
			return nil, err
		}
		patch.Content = &content
	}

	task, err := uc.repo.Update(ctx, in.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", in.ID, err)
	}
	return task, nil
}

func (uc *TaskBoardUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// parsePulse matches the axis name case-insensitively and returns its
// canonical spelling.
func parsePulse(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, p := range analytics.Pulses {
		if strings.EqualFold(s, string(p)) {
			return string(p), nil
		}
	}
	return "", ErrInvalidPulse
}

func parseStatus(raw string) (domain.TaskStatus, error) {
	st := domain.TaskStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func parseContent(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || utf8.RuneCountInString(s) > domain.MaxTaskContent {
		return "", ErrInvalidContent
	}
	return s, nil
}

func tasksPrompt() string {
	var b strings.Builder
	b.WriteString("請針對電商品牌的「六脈」(")
	names := make([]string, len(analytics.Pulses))
	for i, p := range analytics.Pulses {
		names[i] = string(p)
	}
	b.WriteString(strings.Join(names, ", "))
	fmt.Fprintf(&b, ")，各提供 %d 條具體的優化建議任務，共 %d 條。\n", TasksPerPulse, TasksPerPulse*len(analytics.Pulses))
	b.WriteString("格式必須是 JSON Array：[{\"pulse\": \"Traffic\", \"content\": \"建議內容\"}, ...]。\n")
	b.WriteString("pulse 必須使用上列英文名稱。建議內容要具體可執行，約 20-30 字。\n")
	b.WriteString("只回傳 JSON，不要 Markdown。")
	return b.String()
}
