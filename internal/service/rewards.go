package service

import (
	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/config"
)

// ComputeRewards derives the post-battle gold/exp annotation from the
// outcome and the opponent's level. This lives outside the engine on
// purpose: the battle record is pure simulation output and the reward is
// an annotation the caller attaches.
func ComputeRewards(winner battle.Side, opponentLevel int, tuning config.RewardTuning) (gold, exp int) {
	if winner == battle.SideP {
		return tuning.GoldBase + opponentLevel*tuning.GoldPerLvl,
			tuning.ExpBase + opponentLevel*tuning.ExpPerLvl
	}
	return tuning.LoserGold, tuning.LoserExp
}
