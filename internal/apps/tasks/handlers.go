package tasks

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/scope"
)

type TaskHandler struct {
	taskService *TaskService
}

func NewTaskHandler(taskService *TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /tasks — the kanban board view, filtered by the
// category and assigned_to query params ("all" matches everything).
func (h *TaskHandler) List(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	tasks, err := h.taskService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list tasks",
		})
	}

	board := DeriveBoard(tasks, BoardQuery{
		Category:   c.Query("category", "all"),
		AssignedTo: c.Query("assigned_to", "all"),
	})

	return c.JSON(BoardResponse{
		Todo:            emptyIfNil(board.Todo),
		InProgress:      emptyIfNil(board.InProgress),
		Done:            emptyIfNil(board.Done),
		Total:           board.Total(),
		TodoCount:       len(board.Todo),
		InProgressCount: len(board.InProgress),
		DoneCount:       len(board.Done),
		CompletionRate:  board.CompletionRate(),
	})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, req.WeddingProfileID)
	if err != nil {
		return scope.RespondError(c, err)
	}

	task, err := h.taskService.Create(weddingID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.taskService.Update(weddingID, taskID, req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Task not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task id",
		})
	}

	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	if err := h.taskService.Delete(weddingID, taskID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Task not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete task",
		})
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}

// Export handles GET /tasks/export — the full collection as CSV.
func (h *TaskHandler) Export(c *fiber.Ctx) error {
	weddingID, err := scope.AuthorizeRequest(c, nil)
	if err != nil {
		return scope.RespondError(c, err)
	}

	tasks, err := h.taskService.List(weddingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export tasks",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tasks.csv"`)
	return c.SendString(ExportCSV(tasks))
}

func emptyIfNil(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	return tasks
}
