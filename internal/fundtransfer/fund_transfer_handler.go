package fundtransfer

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
	l := zap.L().Named("fundtransfer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fundtransfer.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("fund transfer request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) filter(c *gin.Context) (Filter, error) {
	from, err := dateutil.ParseOptional("from", c.Query("from"))
	if err != nil {
		return Filter{}, err
	}
	to, err := dateutil.ParseOptional("to", c.Query("to"))
	if err != nil {
		return Filter{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return Filter{}, apperror.ErrInvalidDateRange
	}
	return Filter{ProjectID: c.Query("project_id"), From: from, To: to}, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req FundTransferRequest
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

// GetAll accepts project_id, from, to and type.
func (h *Handler) GetAll(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	transferType := strings.ToLower(strings.TrimSpace(c.Query("type")))
	filtered := make([]FundTransferResponse, 0, len(res))
	for _, t := range res {
		if transferType != "" && t.TransferType != transferType {
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

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateProjectTransfer(c *gin.Context) {
	var req ProjectTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.CreateProjectTransfer(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// GetProjectTransfers accepts direction=in|out alongside project_id.
func (h *Handler) GetProjectTransfers(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res, err := h.service.GetProjectTransfers(c.Request.Context(), c.GetString("company_id"), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	direction := strings.ToLower(c.Query("direction"))
	filtered := make([]ProjectTransferResponse, 0, len(res))
	for _, t := range res {
		if f.ProjectID != "" {
			if direction == "in" && t.ToProjectID != f.ProjectID {
				continue
			}
			if direction == "out" && t.FromProjectID != f.ProjectID {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(filtered, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetProjectTransferByID(c *gin.Context) {
	res, err := h.service.GetProjectTransferByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DeleteProjectTransfer(c *gin.Context) {
	if err := h.service.DeleteProjectTransfer(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

