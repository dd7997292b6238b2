package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smebig-warroom/internal/advisor/core/domain"
	"smebig-warroom/internal/advisor/core/usecase"
)

// fakeTaskRepo implements TaskRepositoryPort in memory.
type fakeTaskRepo struct {
	ListFn      func(ctx context.Context, statuses []domain.TaskStatus) ([]domain.Task, error)
	CreateFn    func(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
	lastFilter  []domain.TaskStatus
	lastCreated []domain.Task
	lastPatch   domain.TaskPatch
	lastID      int64
	missing     bool
	called      bool
}

func (f *fakeTaskRepo) List(ctx context.Context, statuses []domain.TaskStatus) ([]domain.Task, error) {
	f.called = true
	f.lastFilter = statuses
	if f.ListFn != nil {
		return f.ListFn(ctx, statuses)
	}
	return []domain.Task{}, nil
}

func (f *fakeTaskRepo) Create(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	f.called = true
	f.lastCreated = tasks
	if f.CreateFn != nil {
		return f.CreateFn(ctx, tasks)
	}
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		t.ID = int64(i + 1)
		out[i] = t
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	f.called = true
	f.lastID = id
	f.lastPatch = patch
	if f.missing {
		return nil, domain.ErrTaskNotFound
	}
	t := &domain.Task{ID: id, Pulse: "VIP", Content: "old", Status: domain.StatusPool}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	return t, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id int64) error {
	f.called = true
	f.lastID = id
	if f.missing {
		return domain.ErrTaskNotFound
	}
	return nil
}

func ptr(s string) *string { return &s }

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestList_NormalizesStatusFilter(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	if _, err := uc.List(context.Background(), []string{" Pool", "DONE"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastFilter) != 2 || repo.lastFilter[0] != domain.StatusPool || repo.lastFilter[1] != domain.StatusDone {
		t.Fatalf("unexpected filter: %v", repo.lastFilter)
	}
}

func TestList_InvalidStatus(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	_, err := uc.List(context.Background(), []string{"archived"})
	if !errors.Is(err, usecase.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.called {
		t.Fatalf("repo should not be called")
	}
}

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

func TestCreate_ManualTaskIsApproved(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	task, err := uc.Create(context.Background(), usecase.CreateTaskInput{Pulse: "retention", Content: "  寄送回購優惠券  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.Pulse != "Retention" || task.Content != "寄送回購優惠券" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.Source != domain.SourceHuman || task.Status != domain.StatusApproved {
		t.Fatalf("expected Human/approved, got %s/%s", task.Source, task.Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      usecase.CreateTaskInput
		wantErr error
	}{
		{"unknown_pulse", usecase.CreateTaskInput{Pulse: "Brand", Content: "x"}, usecase.ErrInvalidPulse},
		{"empty_content", usecase.CreateTaskInput{Pulse: "VIP", Content: "  "}, usecase.ErrInvalidContent},
		{"long_content", usecase.CreateTaskInput{Pulse: "VIP", Content: strings.Repeat("字", domain.MaxTaskContent+1)}, usecase.ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTaskRepo{}
			uc := usecase.NewTaskBoardUseCase(repo, nil)

			_, err := uc.Create(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.called {
				t.Fatalf("repo should not be called")
			}
		})
	}
}

// ------------------------------------------------------------
// GENERATE
// ------------------------------------------------------------

func TestGenerate_KeepsTwoPerPulse(t *testing.T) {
	answer := "```json\n[" +
		`{"pulse":"Traffic","content":"投放再行銷廣告"},` +
		`{"pulse":"traffic","content":"經營社群短影音"},` +
		`{"pulse":"Traffic","content":"第三條會被丟棄"},` +
		`{"pulse":"Brand","content":"未知脈絡"},` +
		`{"pulse":"VIP","content":"  "},` +
		`{"pulse":"VIP","content":"推出會員分級"}` +
		"]\n```"
	repo := &fakeTaskRepo{}
	gen := &fakeGenerator{answer: answer}
	uc := usecase.NewTaskBoardUseCase(repo, gen)

	tasks, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d: %+v", len(tasks), tasks)
	}
	for _, task := range repo.lastCreated {
		if task.Source != domain.SourceAI || task.Status != domain.StatusPool {
			t.Fatalf("expected AI/pool, got %s/%s", task.Source, task.Status)
		}
	}
	if repo.lastCreated[1].Pulse != "Traffic" || repo.lastCreated[2].Pulse != "VIP" {
		t.Fatalf("unexpected pulses: %+v", repo.lastCreated)
	}
	if !strings.Contains(gen.lastPrompt, "12") || !strings.Contains(gen.lastPrompt, "Reputation") {
		t.Fatalf("unexpected prompt:\n%s", gen.lastPrompt)
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		gen     *fakeGenerator
		wantErr error
	}{
		{"model_error", &fakeGenerator{err: errors.New("timeout")}, usecase.ErrNarratorFailed},
		{"junk_answer", &fakeGenerator{answer: "sorry, I cannot"}, usecase.ErrNarratorFailed},
		{"nothing_usable", &fakeGenerator{answer: `[{"pulse":"Brand","content":"x"}]`}, usecase.ErrNarratorFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTaskRepo{}
			uc := usecase.NewTaskBoardUseCase(repo, tt.gen)

			_, err := uc.Generate(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.called {
				t.Fatalf("repo should not be called")
			}
		})
	}
}

func TestGenerate_NoModel(t *testing.T) {
	uc := usecase.NewTaskBoardUseCase(&fakeTaskRepo{}, nil)

	if _, err := uc.Generate(context.Background()); !errors.Is(err, usecase.ErrNarratorUnavailable) {
		t.Fatalf("expected ErrNarratorUnavailable, got %v", err)
	}
}

// ------------------------------------------------------------
// UPDATE / DELETE
// ------------------------------------------------------------

func TestUpdate_StatusAndContent(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	task, err := uc.Update(context.Background(), usecase.UpdateTaskInput{ID: 7, Status: ptr("Active"), Content: ptr(" 新內容 ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != domain.StatusActive || task.Content != "新內容" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if repo.lastID != 7 {
		t.Fatalf("expected id 7, got %d", repo.lastID)
	}
}

func TestUpdate_StatusOnlyLeavesContent(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	if _, err := uc.Update(context.Background(), usecase.UpdateTaskInput{ID: 1, Status: ptr("approved")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPatch.Content != nil {
		t.Fatalf("content should stay unchanged")
	}
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      usecase.UpdateTaskInput
		wantErr error
	}{
		{"bad_id", usecase.UpdateTaskInput{ID: 0, Status: ptr("done")}, usecase.ErrInvalidTaskID},
		{"empty_patch", usecase.UpdateTaskInput{ID: 1}, usecase.ErrEmptyPatch},
		{"bad_status", usecase.UpdateTaskInput{ID: 1, Status: ptr("archived")}, usecase.ErrInvalidStatus},
		{"blank_content", usecase.UpdateTaskInput{ID: 1, Content: ptr("")}, usecase.ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTaskRepo{}
			uc := usecase.NewTaskBoardUseCase(repo, nil)

			if _, err := uc.Update(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.called {
				t.Fatalf("repo should not be called")
			}
		})
	}
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	repo := &fakeTaskRepo{missing: true}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	if _, err := uc.Update(context.Background(), usecase.UpdateTaskInput{ID: 9, Status: ptr("done")}); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), 9); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete_InvalidID(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := usecase.NewTaskBoardUseCase(repo, nil)

	if err := uc.Delete(context.Background(), -1); !errors.Is(err, usecase.ErrInvalidTaskID) {
		t.Fatalf("expected ErrInvalidTaskID, got %v", err)
	}
}
