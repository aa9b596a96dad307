package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
	"email-task-assistant/pkg/scope"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. due_date accepts an RFC 3339 timestamp or text such as "tomorrow" or "next friday".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks ordered by due date. status and priority accept comma-separated values.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       status   query string false "pending,in_progress,completed,deleted"
// @Param       priority query string false "high,medium,low"
// @Param       due_from query string false "RFC 3339 lower bound"
// @Param       due_to   query string false "RFC 3339 upper bound"
// @Param       search   query string false "Text in title or description"
// @Param       team_id  query string false "List a team's tasks"
// @Param       limit    query int    false "Page size (default: 50)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. An empty due_date clears the deadline. A status field is applied as a status change.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if req.Status != "" && string(output.Task.Status) != req.Status {
		output, err = h.uc.UpdateStatus(ctx, sc, updateStatusReq{ID: req.ID, Status: req.Status}.toInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateStatus godoc
// @Summary     Change task status
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.UpdateStatus(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Confirm godoc
// @Summary     Confirm a task as done
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Confirm(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Reject godoc
// @Summary     Reject an extracted task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reject(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reject: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// History godoc
// @Summary     Task status history
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// SetReminder godoc
// @Summary     Set a reminder
// @Description reminder_time must be an RFC 3339 timestamp with an offset and lie in the future.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Task ID"
// @Param       body body setReminderReq true "Reminder"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/reminder [POST]
func (h *handler) SetReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetReminderReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.SetReminder(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetReminder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// RemoveReminder godoc
// @Summary     Remove a reminder
// @Tags        Reminders
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/reminder [DELETE]
func (h *handler) RemoveReminder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RemoveReminder(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveReminder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// ListReminders godoc
// @Summary     Pending reminders
// @Tags        Reminders
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/tasks/reminders [GET]
func (h *handler) ListReminders(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListReminders(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListReminders: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Upcoming godoc
// @Summary     Upcoming tasks
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window in days (default: 7)"
// @Success     200 {object} listResp
// @Router      /api/tasks/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Upcoming(ctx, scope.GetScopeFromContext(ctx), h.processDaysReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Overdue godoc
// @Summary     Overdue tasks
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/tasks/overdue [GET]
func (h *handler) Overdue(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Overdue(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.Overdue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Analytics godoc
// @Summary     Task analytics
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} analyticsResp
// @Router      /api/tasks/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Analytics(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyticsResp(output))
}
