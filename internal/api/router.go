package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/config"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/constants"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/storage"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/version"
)

// NewRouter wires all HTTP routes over the repository.
func NewRouter(repo storage.Repository, rewards config.RewardTuning) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	battles := NewBattleHandler(repo, rewards)
	profiles := NewProfileHandler(repo)

	r.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			constants.JSONKeyStatus: "ok",
			"version":               version.Version,
		})
	})

	apiGroup := r.Group(constants.RouteAPIPrefix)
	{
		apiGroup.POST(constants.RouteProfiles, profiles.CreateProfile)
		apiGroup.GET(constants.RouteProfileByUUID, profiles.GetProfile)
		apiGroup.GET(constants.RouteLeaderboard, profiles.GetLeaderboard)

		apiGroup.POST(constants.RouteBattles, battles.RunBattle)
		apiGroup.GET(constants.RouteBattleByUUID, battles.GetBattle)
		apiGroup.GET(constants.RouteBattleHistory, battles.GetHistory)

		// Static catalogs for client-side display.
		apiGroup.GET(constants.RouteCatalog, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				constants.JSONKeyWeapons: catalog.Weapons(),
				constants.JSONKeySkills:  catalog.Skills(),
			})
		})
	}

	return r
}
