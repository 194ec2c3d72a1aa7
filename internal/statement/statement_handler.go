package statement

import (
	"fmt"
	"net/http"
	"strings"

	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/response"
	statementerrors "go-sitebooks/internal/statement/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("statement.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("statement.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("statement request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) params(c *gin.Context) Params {
	return Params{
		ProjectID: c.Query("project_id"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
}

func requestedFormat(c *gin.Context) string {
	f := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", FormatJSON)))
	if f == "" {
		return FormatJSON
	}
	return f
}

// respond writes report as JSON or, for a file format, renders it.
func (h *Handler) respond(c *gin.Context, kind string, p Params, load func() (any, error)) {
	format := requestedFormat(c)
	if format == FormatJSON {
		res, err := load()
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, res, nil)
		return
	}
	if !IsFileFormat(format) {
		h.writeServiceError(c, statementerrors.ErrUnsupportedFormat)
		return
	}

	file, err := h.service.Render(c.Request.Context(), c.GetString("company_id"), kind, format, p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	disposition := "attachment"
	if format == FormatHTML {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Worker serves /statements/workers/:id?from&to&project_id&format.
func (h *Handler) Worker(c *gin.Context) {
	p := h.params(c)
	p.WorkerID = c.Param("id")
	h.respond(c, KindWorker, p, func() (any, error) {
		return h.service.Worker(c.Request.Context(), c.GetString("company_id"), p)
	})
}

func (h *Handler) ProjectDaily(c *gin.Context) {
	p := h.params(c)
	p.ProjectID = c.Param("id")
	h.respond(c, KindProjectDaily, p, func() (any, error) {
		return h.service.ProjectDaily(c.Request.Context(), c.GetString("company_id"), p)
	})
}

func (h *Handler) ProjectWorkers(c *gin.Context) {
	p := h.params(c)
	p.ProjectID = c.Param("id")
	h.respond(c, KindProjectWorkers, p, func() (any, error) {
		return h.service.ProjectWorkers(c.Request.Context(), c.GetString("company_id"), p)
	})
}

func (h *Handler) Supplier(c *gin.Context) {
	p := h.params(c)
	p.ProjectID = ""
	p.SupplierID = c.Param("id")
	h.respond(c, KindSupplier, p, func() (any, error) {
		return h.service.Supplier(c.Request.Context(), c.GetString("company_id"), p)
	})
}

func (h *Handler) RequestExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.RequestExport(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, res, nil)
}

func (h *Handler) GetExport(c *gin.Context) {
	res, err := h.service.GetExport(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DownloadExport(c *gin.Context) {
	res, err := h.service.GetExport(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if res.Status != ExportDone || res.FileURL == nil {
		h.writeServiceError(c, statementerrors.ErrExportNotReady)
		return
	}
	c.Redirect(http.StatusFound, *res.FileURL)
}
