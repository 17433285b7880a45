package controllers

import (
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type UsersController struct {
	userService *services.UserService
}

func NewUsersController(us *services.UserService) *UsersController {
	return &UsersController{userService: us}
}

// ----------------------------------------------------------------
// GET /api/v1/me
// ----------------------------------------------------------------
// The auth middleware already resolved (and if needed provisioned)
// the local user row, so this is a plain read.
func (c *UsersController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := ownerID(w, r)
	if !ok {
		return
	}
	user, err := c.userService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// ----------------------------------------------------------------
// POST /api/v1/users/sync
// ----------------------------------------------------------------
// First-login handshake: the middleware's get-or-create already ran,
// so this just echoes the resolved profile back to the client.
func (c *UsersController) SyncUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := ownerID(w, r)
	if !ok {
		return
	}
	user, err := c.userService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// ----------------------------------------------------------------
// PUT /api/v1/me
// ----------------------------------------------------------------
func (c *UsersController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.userService.UpdateProfile(r.Context(), id, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update profile")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
