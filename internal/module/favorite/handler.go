package favorite

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
)

// FavoriteHandler handles REST API requests for the favorite resource.
type FavoriteHandler struct {
	svc domain.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler with the given service.
func NewFavoriteHandler(svc domain.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// Create handles POST /api/v1/favorites.
func (h *FavoriteHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req FavoriteRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	fav, err := h.svc.Favorite(c.Request.Context(), userID, req.PropertyID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, fav)
}

// ListByUser handles GET /api/v1/favorites/user/:user_id.
func (h *FavoriteHandler) ListByUser(c *gin.Context) {
	raw, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil || raw == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid user_id parameter", nil))
		return
	}

	favorites, err := h.svc.ListByUser(c.Request.Context(), uint(raw))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, favorites)
}

// Check handles GET /api/v1/favorites/check?user_id=N&property_id=N.
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	propertyID, err := strconv.ParseUint(c.Query("property_id"), 10, 32)
	if err != nil || propertyID == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid property_id parameter", nil))
		return
	}

	status, err := h.svc.Check(c.Request.Context(), userID, uint(propertyID))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, status)
}

// Delete handles DELETE /api/v1/favorites/:id.
func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Unfavorite(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "favorite removed")
}

// currentUserID resolves the acting user: the authenticated subject when the
// request carries a token, otherwise an explicit user_id query parameter for
// deployments running without auth.
func currentUserID(c *gin.Context) (uint, error) {
	raw := middleware.GetUserID(c)
	if raw == "" {
		raw = c.Query("user_id")
	}
	if raw == "" {
		return 0, domain.NewAppError(domain.CodeUnauthorized, "user not identified", nil)
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeUnauthorized, "invalid user identity", nil)
	}
	return uint(id), nil
}
