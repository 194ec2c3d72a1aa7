package purchase

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
	l := zap.L().Named("purchase.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("purchase.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("purchase request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req PurchaseRequest
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

// GetAll filters by project_id, supplier_id, type, from, to, q (material or
// number) and category. The filtered totals are returned under "totals".
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
		ProjectID:    c.Query("project_id"),
		SupplierID:   c.Query("supplier_id"),
		PurchaseType: strings.ToLower(c.Query("type")),
		From:         from,
		To:           to,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	filtered := make([]PurchaseResponse, 0, len(res))
	for _, p := range res {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.MaterialName), q) &&
			!strings.Contains(strings.ToLower(p.PurchaseNumber), q) {
			continue
		}
		if category != "" && (p.MaterialCategory == nil || strings.ToLower(*p.MaterialCategory) != category) {
			continue
		}
		filtered = append(filtered, p)
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(filtered, page, pageSize)
	response.Success(c, http.StatusOK, gin.H{
		"items":  items,
		"totals": Totals(filtered),
	}, &meta)
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
	var req PurchaseRequest
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
