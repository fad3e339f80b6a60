package config

const (
	// EnvPrefix scopes every environment variable consumed by the service.
	EnvPrefix = "multivend"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)
