package supplier

import (
	"net/http"
	"sort"
	"strconv"
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
	l := zap.L().Named("supplier.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("supplier.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("supplier request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req SupplierRequest
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

// GetAll supports q, active, with_balance and sort_by (name|outstanding).
func (h *Handler) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	active, activeErr := strconv.ParseBool(c.Query("active"))
	withBalance, _ := strconv.ParseBool(c.Query("with_balance"))

	filtered := make([]SupplierResponse, 0, len(res))
	for _, s := range res {
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
			continue
		}
		if activeErr == nil && s.IsActive != active {
			continue
		}
		if withBalance && !s.Outstanding.IsPositive() {
			continue
		}
		filtered = append(filtered, s)
	}

	if strings.EqualFold(c.Query("sort_by"), "outstanding") {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Outstanding.GreaterThan(filtered[j].Outstanding)
		})
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
	var req SupplierRequest
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

func (h *Handler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.CreatePayment(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// GetPayments serves both /supplier-payments and /suppliers/:id/payments.
func (h *Handler) GetPayments(c *gin.Context) {
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

	supplierID := c.Param("id")
	if supplierID == "" {
		supplierID = c.Query("supplier_id")
	}

	res, err := h.service.GetPayments(c.Request.Context(), c.GetString("company_id"), PaymentFilter{
		SupplierID: supplierID,
		ProjectID:  c.Query("project_id"),
		From:       from,
		To:         to,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(res, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) DeletePayment(c *gin.Context) {
	if err := h.service.DeletePayment(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
