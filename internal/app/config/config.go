package config

import (
	"navigator-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionTTLInHour:          utils.GetEnvInt("APP_SESSION_TTL_IN_HOUR", 24),
			SessionMintPerMinute:      utils.GetEnvInt("APP_SESSION_MINT_PER_MINUTE", 5),
			SessionMintBlockInMinute:  utils.GetEnvInt("APP_SESSION_MINT_BLOCK_IN_MINUTE", 10),
			AutosaveDebounceInMillis:  utils.GetEnvInt("APP_AUTOSAVE_DEBOUNCE_IN_MILLIS", 1000),
			RegistryTimeoutInSeconds:  utils.GetEnvInt("APP_REGISTRY_TIMEOUT_IN_SECONDS", 10),
			NavigationStateTTLInHour:  utils.GetEnvInt("APP_NAVIGATION_STATE_TTL_IN_HOUR", 24),
		},
		Registry: Registry{
			BaseUrl: utils.GetEnvString("REGISTRY_BASE_URL", "http://localhost:5555/registry"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
