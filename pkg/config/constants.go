package config

// EnvPrefix scopes every environment variable consumed by the service.
const EnvPrefix = "dailyneed"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "DAILYNEED_APP_ENV"
	EnvPort     = "DAILYNEED_APP_PORT"
	EnvRedisURL = "DAILYNEED_REDIS_URL"

	EnvDBDSN  = "DAILYNEED_DB_DSN"
	EnvDBHost = "DAILYNEED_DB_HOST"
	EnvDBUser = "DAILYNEED_DB_USER"
	EnvDBName = "DAILYNEED_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
