package database

// SettingsRepository defines the key/value operations the configuration
// store needs from durable storage.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type SettingsRepository interface {
	GetSetting(key string) (string, bool)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

var _ SettingsRepository = (*Database)(nil)
