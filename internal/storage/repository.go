package storage

import "github.com/letmeNo1/jabobo-fight-sub000/internal/battle"

// Repository is the persistence surface of the game server: battle records
// for replay and the persistent player profiles.
type Repository interface {
	CreateRecord(r *battle.Record) error
	// GetRecordByUUID returns the record by its public uuid, or nil when
	// absent.
	GetRecordByUUID(uuid string) (*battle.Record, error)
	ListRecordsByPlayer(playerUUID string, limit int) ([]battle.Record, error)

	CreateProfile(p *battle.Profile) error
	// GetProfileByUUID returns the profile, or nil when absent.
	GetProfileByUUID(uuid string) (*battle.Profile, error)
	UpdateProfile(p *battle.Profile) error

	// GetTopProfiles returns profiles ordered by wins (desc).
	GetTopProfiles(limit int) ([]battle.Profile, error)
}
