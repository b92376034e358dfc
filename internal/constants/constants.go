package constants

// Centralized constants for env keys, routes and response keys.
const (
	// Environment variable keys
	EnvConfigPath = "QFIGHT_CONFIG"
	EnvDBPath     = "QFIGHT_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteHealth        = "/healthz"
	RouteProfiles      = "/profiles"
	RouteProfileByUUID = "/profiles/:playerUUID"
	RouteBattles       = "/battles"
	RouteBattleByUUID  = "/battles/:battleUUID"
	RouteBattleHistory = "/profiles/:playerUUID/battles"
	RouteLeaderboard   = "/leaderboard"
	RouteCatalog       = "/catalog"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyStatus  = "status"
	JSONKeyWeapons = "weapons"
	JSONKeySkills  = "skills"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrProfileNotFound     = "Profile not found"
	ErrBattleNotFound      = "Battle not found"
	ErrFailedRunBattle     = "Failed to run battle"
	ErrFailedCreateProfile = "Failed to create profile"
	ErrFailedFetchHistory  = "Failed to fetch battle history"
	ErrFailedFetchLeaders  = "Failed to fetch leaderboard"
)

// Logging field names
const (
	LogFieldPlayerUUID = "player_uuid"
	LogFieldBattleUUID = "battle_uuid"
	LogFieldWinner     = "winner"
	LogFieldTurns      = "turns"
	LogFieldAddr       = "addr"
)
