package api

import (
	"errors"
	"net/http"

	"flexzone/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs for API ---

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

type ConfirmAvatarRequest struct {
	Key string `json:"key" binding:"required"`
}

// ProfileResponse is a user plus a temporary avatar link.
type ProfileResponse struct {
	User      UserResponse `json:"user"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
}

func mapProfileToResponse(p *service.Profile) ProfileResponse {
	return ProfileResponse{
		User:      MapUserToResponse(p.User),
		AvatarURL: p.AvatarURL,
	}
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the authenticated member's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// UpdateProfile godoc
// @Summary Update name, email or password
// @Description Password changes require the current password.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Wrong current password"
// @Failure 409 {object} gin.H "Email already in use"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// RequestAvatarUpload godoc
// @Summary Request a presigned avatar upload URL
// @Description The browser PUTs the image directly to storage, then confirms the key.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upload body AvatarUploadRequest true "Upload details"
// @Success 200 {object} AvatarUploadResponse
// @Router /profile/avatar-upload [post]
func (h *ProfileHandler) RequestAvatarUpload(c *gin.Context) {
	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	upload, err := h.profileService.RequestAvatarUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, AvatarUploadResponse{
		UploadURL: upload.UploadURL,
		Key:       upload.Key,
	})
}

// ConfirmAvatar godoc
// @Summary Confirm an uploaded avatar
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param avatar body ConfirmAvatarRequest true "Uploaded object key"
// @Success 200 {object} ProfileResponse
// @Router /profile/avatar [put]
func (h *ProfileHandler) ConfirmAvatar(c *gin.Context) {
	var req ConfirmAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	if err := h.profileService.SetAvatar(c.Request.Context(), userID, req.Key); err != nil {
		respondProfileError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrIncorrectPassword):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process profile request.")
	}
}
