package dailysummary

import (
	"net/http"

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
	l := zap.L().Named("dailysummary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("daily summary request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetRange(c *gin.Context) {
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

	res, err := h.service.GetRange(c.Request.Context(), c.GetString("company_id"), c.Param("id"), from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByDate(c *gin.Context) {
	res, err := h.service.GetByDate(c.Request.Context(), c.GetString("company_id"), c.Param("id"), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Rebuild(c *gin.Context) {
	var req RebuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	from, err := dateutil.Parse("from", req.From)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res, err := h.service.Rebuild(c.Request.Context(), c.GetString("company_id"), c.Param("id"), from)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
