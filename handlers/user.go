package handlers

import (
	"net/http"

	"fleetbook/services/user"
	"fleetbook/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration and authentication endpoints.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterHandler creates a customer account.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var in user.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	resp, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// AuthenticateHandler verifies credentials and returns a JWT.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	resp, err := h.Svc.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ProfileHandler returns the authenticated user's own record.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetByID(c.Request.Context(), actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, u)
}
