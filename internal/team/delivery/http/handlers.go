package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
	"email-task-assistant/pkg/scope"
)

// Create godoc
// @Summary     Create a team
// @Description Creates a team owned by the caller.
// @Tags        Teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Team data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/teams [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List my teams
// @Tags        Teams
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/teams [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListMine(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get team detail
// @Tags        Teams
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Team ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/teams/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a team
// @Description Owners and admins may rename a team or change its description.
// @Tags        Teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Team ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/teams/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a team
// @Description Only the owner may delete a team. Its tasks are kept without a team.
// @Tags        Teams
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Team ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/teams/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, scope.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddMember godoc
// @Summary     Add a team member
// @Description Adds a registered user by email. Adding an existing member is a no-op.
// @Tags        Teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string       true "Team ID"
// @Param       body body addMemberReq true "Member"
// @Success     200 {object} memberResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/teams/{id}/members [POST]
func (h *handler) AddMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddMemberReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.AddMember(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddMember: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMemberResp(m))
}

// ListMembers godoc
// @Summary     List team members
// @Tags        Teams
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Team ID"
// @Success     200 {object} membersResp
// @Router      /api/teams/{id}/members [GET]
func (h *handler) ListMembers(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.uc.ListMembers(ctx, scope.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMembers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, membersResp{Members: newMembersResp(members)})
}

// ListTasks godoc
// @Summary     List team tasks
// @Tags        Teams
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Team ID"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset"
// @Success     200 {object} tasksResp
// @Router      /api/teams/{id}/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListTasks(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(output))
}
