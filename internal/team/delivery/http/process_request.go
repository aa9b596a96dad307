package http

import "github.com/gin-gonic/gin"

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errInvalidID
	}
	return req, nil
}

func (h *handler) processAddMemberReq(c *gin.Context) (addMemberReq, error) {
	var req addMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.TeamID = c.Param("id"); req.TeamID == "" {
		return req, errInvalidID
	}
	return req, nil
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.TeamID = c.Param("id"); req.TeamID == "" {
		return req, errInvalidID
	}
	return req, nil
}
