package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the partial update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errInvalidID
	}
	return req, req.validate()
}

func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errInvalidID
	}
	return req, nil
}

func (h *handler) processSetReminderReq(c *gin.Context) (setReminderReq, error) {
	var req setReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errInvalidID
	}
	return req, req.validate()
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errInvalidID
	}
	return id, nil
}

// processDaysReq reads ?days=N; missing or invalid values mean the default window.
func (h *handler) processDaysReq(c *gin.Context) int {
	days, _ := strconv.Atoi(c.Query("days"))
	return days
}
