package attendance

import (
	"net/http"
	"strings"

	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Record(c *gin.Context) {
	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Record(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) RecordBulk(c *gin.Context) {
	var req BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.RecordBulk(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// GetAll filters by project_id, worker_id, from, to and payment_type.
func (h *Handler) GetAll(c *gin.Context) {
	from, err := dateutil.ParseOptional("from", c.Query("from"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	to, err := dateutil.ParseOptional("to", c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if from != nil && to != nil && from.After(*to) {
		h.writeServiceError(c, apperror.ErrInvalidDateRange)
		return
	}

	res, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), Filter{
		ProjectID: c.Query("project_id"),
		WorkerID:  c.Query("worker_id"),
		From:      from,
		To:        to,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if pt := strings.ToLower(strings.TrimSpace(c.Query("payment_type"))); pt != "" {
		filtered := make([]AttendanceResponse, 0, len(res))
		for _, a := range res {
			if a.PaymentType == pt {
				filtered = append(filtered, a)
			}
		}
		res = filtered
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(res, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
