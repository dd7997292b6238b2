package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"smebig-warroom/internal/advisor/core/domain"
	"smebig-warroom/internal/advisor/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type DiagnoseUseCase interface {
	Execute(ctx context.Context, in usecase.DiagnoseInput) (*domain.Diagnosis, error)
}

type TaskBoardUseCase interface {
	List(ctx context.Context, statuses []string) ([]domain.Task, error)
	Create(ctx context.Context, in usecase.CreateTaskInput) (*domain.Task, error)
	Generate(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, in usecase.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type AdvisorHandler struct {
	diagnoseUC DiagnoseUseCase
	tasksUC    TaskBoardUseCase
}

func NewAdvisorHandler(diagnoseUC DiagnoseUseCase, tasksUC TaskBoardUseCase) *AdvisorHandler {
	return &AdvisorHandler{diagnoseUC: diagnoseUC, tasksUC: tasksUC}
}

// Diagnose godoc
// @Summary AI diagnosis
// @Description Short consultant narrative built from the report summary, pulse scores and top products
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body DiagnoseRequest true "Client"
// @Success 200 {object} DiagnoseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} NarratorErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /diagnose [post]
func (h *AdvisorHandler) Diagnose(c *fiber.Ctx) error {
	var req DiagnoseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	out, err := h.diagnoseUC.Execute(c.UserContext(), usecase.DiagnoseInput{ClientName: req.ClientName})
	if err != nil {
		if errors.Is(err, usecase.ErrNarratorFailed) || errors.Is(err, usecase.ErrNarratorUnavailable) {
			resp := NarratorErrorResponse{Error: narratorCode(err), Message: err.Error()}
			if out != nil {
				resp.Diagnosis = out.Text
			}
			return c.Status(http.StatusBadGateway).JSON(resp)
		}
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(DiagnoseResponse{
		ClientName: out.ClientName,
		Diagnosis:  out.Text,
		Fallback:   out.Fallback,
	})
}

// ListTasks godoc
// @Summary List tasks
// @Description Newest first; status filters by a comma separated list
// @Tags Tasks
// @Produce json
// @Param status query string false "pool,approved,active,done"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [get]
func (h *AdvisorHandler) ListTasks(c *fiber.Ctx) error {
	var statuses []string
	for _, s := range strings.Split(c.Query("status"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}

	tasks, err := h.tasksUC.List(c.UserContext(), statuses)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTaskResponses(tasks))
}

// CreateTask godoc
// @Summary Add a consultant task
// @Description Manual tasks are stored with source Human and status approved
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [post]
func (h *AdvisorHandler) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	task, err := h.tasksUC.Create(c.UserContext(), usecase.CreateTaskInput{Pulse: req.Pulse, Content: req.Content})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toTaskResponse(*task))
}

// GenerateTasks godoc
// @Summary Generate AI tasks
// @Description Asks the model for two tasks per pulse and adds them to the pool
// @Tags Tasks
// @Produce json
// @Success 201 {object} GenerateTasksResponse
// @Failure 502 {object} NarratorErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/generate [post]
func (h *AdvisorHandler) GenerateTasks(c *fiber.Ctx) error {
	tasks, err := h.tasksUC.Generate(c.UserContext())
	if err != nil {
		if errors.Is(err, usecase.ErrNarratorFailed) || errors.Is(err, usecase.ErrNarratorUnavailable) {
			return c.Status(http.StatusBadGateway).JSON(NarratorErrorResponse{
				Error:   narratorCode(err),
				Message: err.Error(),
			})
		}
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(GenerateTasksResponse{
		Count: len(tasks),
		Tasks: toTaskResponses(tasks),
	})
}

// UpdateTask godoc
// @Summary Update a task
// @Description Changes the status and/or the content
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id} [patch]
func (h *AdvisorHandler) UpdateTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_task",
			Message: usecase.ErrInvalidTaskID.Error(),
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	task, err := h.tasksUC.Update(c.UserContext(), usecase.UpdateTaskInput{
		ID:      id,
		Status:  req.Status,
		Content: req.Content,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTaskResponse(*task))
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags Tasks
// @Param id path int true "Task id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (h *AdvisorHandler) DeleteTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_task",
			Message: usecase.ErrInvalidTaskID.Error(),
		})
	}

	if err := h.tasksUC.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func taskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func narratorCode(err error) string {
	if errors.Is(err, usecase.ErrNarratorUnavailable) {
		return "narrator_unavailable"
	}
	return "narrator_failed"
}

func (h *AdvisorHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrInvalidPulse),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidContent),
		errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrEmptyPatch):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		log.WithError(err).WithFields(log.Fields{
			"component": "advisor",
			"path":      c.Path(),
		}).Error("advisor request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
