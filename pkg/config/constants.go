package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "pizzadelight"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
	StorageDriverSQLite = "sqlite"
)

const (
	EnvAppEnv        = "PIZZADELIGHT_APP_ENV"
	EnvStorageDriver = "PIZZADELIGHT_STORAGE_DRIVER"
	EnvRedisURL      = "PIZZADELIGHT_REDIS_URL"
	EnvJWTSecret     = "PIZZADELIGHT_JWT_SECRET"
)
