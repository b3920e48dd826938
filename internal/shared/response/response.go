package response

import (
	"github.com/gin-gonic/gin"
)

type ListMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

// NewListMeta builds envelope metadata for an unpaginated list: just a count.
func NewListMeta(total int64) ListMeta {
	return ListMeta{Total: total}
}

// NewPaginationMeta builds envelope metadata for a paginated list.
func NewPaginationMeta(total int64, page, limit int) ListMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return ListMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Meta  *ListMeta `json:"meta,omitempty"`
	Error any       `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *ListMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
