package workertransfer

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
	l := zap.L().Named("workertransfer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workertransfer.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("worker transfer request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// GetAll accepts worker_id, project_id, from, to, method and q (recipient).
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

	res, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), Filter{
		WorkerID:  c.Query("worker_id"),
		ProjectID: c.Query("project_id"),
		From:      from,
		To:        to,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	method := strings.ToLower(strings.TrimSpace(c.Query("method")))
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	filtered := make([]TransferResponse, 0, len(res))
	for _, t := range res {
		if method != "" && t.TransferMethod != method {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.RecipientName), q) {
			continue
		}
		filtered = append(filtered, t)
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(filtered, page, pageSize)
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
	var req TransferRequest
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
