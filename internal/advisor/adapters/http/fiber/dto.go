package fiber

import (
	"time"

	"smebig-warroom/internal/advisor/core/domain"
)

type DiagnoseRequest struct {
	ClientName string `json:"client_name" example:"cupetit"`
}

type DiagnoseResponse struct {
	ClientName string `json:"client_name"`
	Diagnosis  string `json:"diagnosis"`
	Fallback   bool   `json:"fallback"`
}

// NarratorErrorResponse carries a fallback text next to the error.
type NarratorErrorResponse struct {
	Error     string `json:"error" example:"narrator_failed"`
	Message   string `json:"message"`
	Diagnosis string `json:"diagnosis,omitempty"`
}

type CreateTaskRequest struct {
	Pulse   string `json:"pulse" example:"Retention"`
	Content string `json:"content" example:"寄送回購優惠券給 60 天未回購的客戶"`
}

// UpdateTaskRequest
// @Description Omitted fields stay unchanged
type UpdateTaskRequest struct {
	Status  *string `json:"status" example:"approved"`
	Content *string `json:"content"`
}

type TaskResponse struct {
	ID        int64  `json:"id"`
	Pulse     string `json:"pulse"`
	Content   string `json:"content"`
	Source    string `json:"source" example:"AI"`
	Status    string `json:"status" example:"pool"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type GenerateTasksResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_task"`
	Message string `json:"message" example:"pulse must be one of Traffic, Conversion, Profit, VIP, Retention, Reputation"`
}

func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Pulse:     t.Pulse,
		Content:   t.Content,
		Source:    string(t.Source),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
