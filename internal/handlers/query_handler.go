package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sqlconsole/internal/responses"
	"sqlconsole/internal/services"
	"sqlconsole/internal/sqlexec"
)

type QueryHandler struct {
	queryService *services.QueryService
}

func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

// Execute runs an ad-hoc SQL query against a stored connection profile.
// Execution failures stem from user-supplied query or connection text, so
// they come back as 400s with the driver detail, never as a 500.
func (h *QueryHandler) Execute(c *gin.Context) {
	var req struct {
		ConnectionID uuid.UUID `json:"connection_id" binding:"required"`
		Query        string    `json:"query"         binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Connection id and query are required")
		return
	}

	result, err := h.queryService.Execute(c.Request.Context(), req.ConnectionID, req.Query)
	if err != nil {
		var execErr *sqlexec.ExecutionError
		switch {
		case errors.Is(err, services.ErrNotFound):
			responses.Fail(c, http.StatusNotFound, nil, "Connection not found")
		case errors.Is(err, sqlexec.ErrEmptyQuery):
			responses.Fail(c, http.StatusBadRequest, err, "Query cannot be empty")
		case errors.As(err, &execErr):
			responses.Fail(c, http.StatusBadRequest, execErr, "Query execution failed")
		default:
			responses.Fail(c, http.StatusInternalServerError, err, "Failed to execute query")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QueryHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid limit")
		return
	}

	entries, err := h.queryService.History(limit)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not load query history")
		return
	}

	c.JSON(http.StatusOK, entries)
}
