package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm DB handle in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateRecord(rec *battle.Record) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetRecordByUUID(uuid string) (*battle.Record, error) {
	var rec battle.Record
	err := r.db.Where("battle_uuid = ?", uuid).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListRecordsByPlayer(playerUUID string, limit int) ([]battle.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []battle.Record
	err := r.db.
		Where("player_uuid = ?", playerUUID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) CreateProfile(p *battle.Profile) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) GetProfileByUUID(uuid string) (*battle.Profile, error) {
	var p battle.Profile
	err := r.db.Where("player_uuid = ?", uuid).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) UpdateProfile(p *battle.Profile) error {
	return r.db.Save(p).Error
}

func (r *sqliteRepository) GetTopProfiles(limit int) ([]battle.Profile, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var out []battle.Profile
	err := r.db.
		Order("wins DESC, battles_played ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
