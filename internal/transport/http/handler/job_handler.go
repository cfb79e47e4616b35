package handler

import (
	"github.com/gin-gonic/gin"

	"udaan/internal/service"
	resp "udaan/internal/transport/http/response"
)

type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List GET /jobs?search=&page=&pageSize=（公开，无需登录）
func (h *JobHandler) List(c *gin.Context) {
	var q struct {
		Search   string `form:"search"`
		Page     int    `form:"page"`
		PageSize int    `form:"pageSize"` // 缺省与上限由服务层兜底
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err)
		return
	}
	page, err := h.jobs.ListActive(c.Request.Context(), service.ListJobsQuery{
		Search: q.Search, Page: q.Page, PageSize: q.PageSize,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, page)
}

// Count GET /jobs/count
func (h *JobHandler) Count(c *gin.Context) {
	n, err := h.jobs.Count(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, gin.H{"totalJobs": n})
}

// Create POST /jobs（recruiter/admin）
func (h *JobHandler) Create(c *gin.Context) {
	var in service.CreateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), identity(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, job)
}

// Close POST /jobs/:id/close（归属 recruiter 或 admin）
func (h *JobHandler) Close(c *gin.Context) {
	job, err := h.jobs.Close(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, job)
}
