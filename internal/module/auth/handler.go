package auth

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
)

// AuthHandler handles REST API requests for authentication.
type AuthHandler struct {
	svc Service
}

// NewHandler creates a new AuthHandler with the given service.
func NewHandler(svc Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tokenResp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tokenResp)
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Me handles GET /api/v1/auth/me, returning the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	raw := middleware.GetUserID(c)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
