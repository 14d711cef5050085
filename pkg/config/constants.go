package config

const EnvPrefix = "CRUSTCRAFT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "CRUSTCRAFT_DB_DSN"
	EnvDBHost = "CRUSTCRAFT_DB_HOST"
	EnvDBUser = "CRUSTCRAFT_DB_USER"
	EnvDBName = "CRUSTCRAFT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
