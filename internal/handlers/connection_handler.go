package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sqlconsole/internal/responses"
	"sqlconsole/internal/services"
)

type ConnectionHandler struct {
	connectionService *services.ConnectionService
}

func NewConnectionHandler(connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

type connectionRequest struct {
	Name             string `json:"name"              binding:"required,max=255"`
	ConnectionString string `json:"connection_string" binding:"required,max=1024"`
}

func (h *ConnectionHandler) List(c *gin.Context) {
	connections, err := h.connectionService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list connections")
		return
	}

	c.JSON(http.StatusOK, connections)
}

func (h *ConnectionHandler) Create(c *gin.Context) {
	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Name and connection string are required")
		return
	}

	conn, err := h.connectionService.Create(req.Name, req.ConnectionString)
	if err != nil {
		h.failConnection(c, err)
		return
	}

	c.JSON(http.StatusCreated, conn)
}

func (h *ConnectionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name any profile.
		responses.Fail(c, http.StatusNotFound, nil, "Connection not found")
		return
	}

	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Name and connection string are required")
		return
	}

	conn, err := h.connectionService.Update(id, req.Name, req.ConnectionString)
	if err != nil {
		h.failConnection(c, err)
		return
	}

	c.JSON(http.StatusOK, conn)
}

func (h *ConnectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Connection not found")
		return
	}

	if err := h.connectionService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Connection not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Could not delete connection")
		return
	}

	c.Status(http.StatusNoContent)
}

// Test probes a candidate connection string. Probe failures are reported in
// the payload with a 200, not as an HTTP error.
func (h *ConnectionHandler) Test(c *gin.Context) {
	var req struct {
		ConnectionString string `json:"connection_string" binding:"required,max=1024"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Connection string is required")
		return
	}

	if err := h.connectionService.TestConnection(c.Request.Context(), req.ConnectionString); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Connection successful."})
}

func (h *ConnectionHandler) failConnection(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateName):
		responses.Fail(c, http.StatusConflict, err, "A connection with that name already exists")
	case errors.Is(err, services.ErrNotFound):
		responses.Fail(c, http.StatusNotFound, nil, "Connection not found")
	case errors.Is(err, services.ErrInvalidInput):
		responses.Fail(c, http.StatusBadRequest, err, "Invalid connection profile")
	default:
		responses.Fail(c, http.StatusInternalServerError, err, "Could not save connection")
	}
}
