package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{svc: service, logger: l}
}

// writeError is the single translation point from domain errors to HTTP
// responses. Unknown errors are logged with their cause and surfaced as a
// generic internal error; no internal detail reaches the caller.
func (h *Handler) writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, gin.H{
			"path": c.Request.URL.Path,
		})
		return
	}

	h.logger.Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError,
		"Internal server error", gin.H{
			"path": c.Request.URL.Path,
		})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.svc.GetAll(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]EmployeeResponse, 0, len(resp))
		for _, e := range resp {
			if strings.Contains(strings.ToLower(e.Name), q) {
				filtered = append(filtered, e)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "id")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}

	sort.Slice(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name":
			less = strings.ToLower(resp[i].Name) < strings.ToLower(resp[j].Name)
		case "salary":
			less = resp[i].Salary < resp[j].Salary
		case "department":
			less = strings.ToLower(resp[i].Department) < strings.ToLower(resp[j].Department)
		default:
			less = resp[i].ID < resp[j].ID
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Create(ctx, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Update(ctx, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.svc.Terminate(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GiveRaise(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req RaiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.GiveRaise(ctx, id, req.Amount)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GiveStandardRaise(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.svc.GiveStandardRaise(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Transfer(ctx, id, req.Department)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) HighPerformers(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.svc.HighPerformers(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewListMeta(int64(len(res)))
	response.Success(c, http.StatusOK, res, &meta)
}

func (h *Handler) DepartmentExpense(c *gin.Context) {
	ctx := c.Request.Context()

	department := strings.TrimSpace(c.Param("department"))
	if department == "" {
		h.writeError(c, employeeerrors.ErrEmptyDepartment)
		return
	}

	res, err := h.svc.DepartmentExpense(ctx, department)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var criteria SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Search(ctx, criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewListMeta(int64(len(res)))
	response.Success(c, http.StatusOK, res, &meta)
}
