package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/config"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/constants"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/engine"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/logging"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/service"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/storage"
)

// BattleHandler groups the battle-related HTTP handlers.
type BattleHandler struct {
	repo    storage.Repository
	rewards config.RewardTuning
}

// NewBattleHandler creates a BattleHandler over the repository with the
// configured reward tuning.
func NewBattleHandler(repo storage.Repository, rewards config.RewardTuning) *BattleHandler {
	return &BattleHandler{repo: repo, rewards: rewards}
}

type runBattleRequest struct {
	PlayerUUID string `json:"player_uuid" binding:"required"`
}

// RunBattle simulates a battle for the requesting player against a
// generated opponent and returns the full record.
func (h *BattleHandler) RunBattle(c *gin.Context) {
	var req runBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	rec, err := service.RunBattle(h.repo, req.PlayerUUID, h.rewards, engine.NewSystemRNG())
	if err == service.ErrProfileNotFound {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
		return
	}
	if err != nil {
		logging.Error("battle simulation failed", err, logging.Fields{constants.LogFieldPlayerUUID: req.PlayerUUID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunBattle})
		return
	}

	logging.Info("battle resolved", logging.Fields{
		constants.LogFieldPlayerUUID: req.PlayerUUID,
		constants.LogFieldBattleUUID: rec.BattleUUID,
		constants.LogFieldWinner:     string(rec.Winner),
		constants.LogFieldTurns:      rec.TurnCount,
	})
	c.JSON(http.StatusOK, rec)
}

// GetBattle returns a stored battle record for replay.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	rec, err := h.repo.GetRecordByUUID(c.Param("battleUUID"))
	if err != nil {
		logging.Error("failed to load battle record", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetHistory returns the player's most recent battle records.
func (h *BattleHandler) GetHistory(c *gin.Context) {
	recs, err := h.repo.ListRecordsByPlayer(c.Param("playerUUID"), 20)
	if err != nil {
		logging.Error("failed to list battle records", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, recs)
}
