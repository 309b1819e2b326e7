package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
	"taskapp/internal/core/util"
)

type TaskHandler struct {
	svc     port.TaskService
	metrics *telemetry.AppMetrics
}

func NewTaskHandler(svc port.TaskService, metrics *telemetry.AppMetrics) *TaskHandler {
	return &TaskHandler{svc: svc, metrics: metrics}
}

func (h *TaskHandler) recordTask(c *gin.Context, operation string) {
	if h.metrics != nil {
		h.metrics.RecordTaskOperation(c.Request.Context(), operation)
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	principal, ok := middleware.Principal(c)

	if !ok {
		helper.SendUnauthorized(c, "unauthorized")
		return
	}

	params, err := util.ParamsToMap[request.CreateTaskRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	task, err := h.svc.Create(ctx, principal, &params)

	if err != nil {
		log.Error().Err(err).Int64("user_id", principal.ID).Msg("task creation failed")
		helper.SendInternalError(c)
		return
	}

	h.recordTask(c, "create")
	c.JSON(http.StatusOK, response.NewTaskResponse(task))
}

func (h *TaskHandler) ListOpen(c *gin.Context) {
	ctx := c.Request.Context()

	principal, ok := middleware.Principal(c)

	if !ok {
		helper.SendUnauthorized(c, "unauthorized")
		return
	}

	tasks, err := h.svc.ListOpen(ctx, principal)

	if err != nil {
		log.Error().Err(err).Int64("user_id", principal.ID).Msg("task listing failed")
		helper.SendInternalError(c)
		return
	}

	h.recordTask(c, "list")
	c.JSON(http.StatusOK, response.NewTaskListResponse(tasks))
}

func (h *TaskHandler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	principal, ok := middleware.Principal(c)

	if !ok {
		helper.SendUnauthorized(c, "unauthorized")
		return
	}

	// A non-numeric id cannot name a task, so it reads as not found.
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendNotFound(c, "task not found")
		return
	}

	err = h.svc.Complete(ctx, principal, taskID)

	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			helper.SendNotFound(c, "task not found")
			return
		}

		log.Error().Err(err).Int64("task_id", taskID).Msg("task completion failed")
		helper.SendInternalError(c)
		return
	}

	h.recordTask(c, "complete")
	c.Status(http.StatusOK)
}
