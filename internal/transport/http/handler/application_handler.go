package handler

import (
	"github.com/gin-gonic/gin"

	"udaan/internal/domain"
	"udaan/internal/service"
	resp "udaan/internal/transport/http/response"
)

type ApplicationHandler struct {
	apps *service.ApplicationService
}

func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply POST /applications {jobId, resume?}
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var in struct {
		JobID  string `json:"jobId" binding:"required"`
		Resume string `json:"resume" binding:"omitempty,max=255"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	app, err := h.apps.Apply(c.Request.Context(), identity(c), in.JobID, in.Resume)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"application": app})
}

// Withdraw DELETE /applications/:id
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.apps.Withdraw(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, gin.H{"id": c.Param("id")})
}

// List GET /applications?studentId= 或 ?jobId=（二选一）
func (h *ApplicationHandler) List(c *gin.Context) {
	studentID := c.Query("studentId")
	jobID := c.Query("jobId")
	switch {
	case studentID != "" && jobID == "":
		out, err := h.apps.ListByStudent(c.Request.Context(), identity(c), studentID)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.JSON(c, out)
	case jobID != "" && studentID == "":
		out, err := h.apps.ListByJob(c.Request.Context(), identity(c), jobID)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.JSON(c, out)
	default:
		resp.Fail(c, domain.Validation("exactly one of studentId or jobId is required"))
	}
}

// SetStatus PATCH /applications/:id/status {status}
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var in struct {
		Status domain.ApplicationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	app, err := h.apps.SetStatus(c.Request.Context(), identity(c), c.Param("id"), in.Status)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, gin.H{"application": app})
}
