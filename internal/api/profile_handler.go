package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/constants"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/logging"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/service"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/storage"
)

// ProfileHandler groups the profile-related HTTP handlers.
type ProfileHandler struct {
	repo        storage.Repository
	leaderboard *service.Leaderboard
}

// NewProfileHandler creates a ProfileHandler over the repository.
func NewProfileHandler(repo storage.Repository) *ProfileHandler {
	return &ProfileHandler{repo: repo, leaderboard: service.NewLeaderboard(repo)}
}

type createProfileRequest struct {
	Name   string   `json:"name" binding:"required"`
	Skills []string `json:"skills"`
}

// CreateProfile registers a fresh character.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := service.CreateProfile(h.repo, req.Name, req.Skills)
	if err == service.ErrInvalidProfileName {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	if err != nil {
		logging.Error("profile creation failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateProfile})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProfile returns a player profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.repo.GetProfileByUUID(c.Param("playerUUID"))
	if err != nil {
		logging.Error("failed to load profile", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetLeaderboard returns the top players by wins.
func (h *ProfileHandler) GetLeaderboard(c *gin.Context) {
	top, err := h.leaderboard.Top(10)
	if err != nil {
		logging.Error("failed to fetch leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	c.JSON(http.StatusOK, top)
}
