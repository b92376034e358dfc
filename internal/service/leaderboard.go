package service

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

// LeaderboardRepo is the narrow persistence surface the leaderboard needs.
type LeaderboardRepo interface {
	GetTopProfiles(limit int) ([]battle.Profile, error)
}

// Leaderboard serves top-player queries. Concurrent requests for the same
// limit are collapsed into a single database read via singleflight.
type Leaderboard struct {
	repo  LeaderboardRepo
	group singleflight.Group
}

// NewLeaderboard builds a leaderboard over the given repository.
func NewLeaderboard(repo LeaderboardRepo) *Leaderboard {
	return &Leaderboard{repo: repo}
}

// Top returns the highest-ranked profiles.
func (l *Leaderboard) Top(limit int) ([]battle.Profile, error) {
	v, err, _ := l.group.Do(fmt.Sprintf("top:%d", limit), func() (interface{}, error) {
		return l.repo.GetTopProfiles(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]battle.Profile), nil
}
