package config

import (
	"secondheart-dashboard/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "dashboard.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "dashboard_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Europe/Moscow"),
		},
		API: API{
			BaseURL:           utils.GetEnvString("API_BASE_URL", "http://localhost:8000"),
			TimeoutInSeconds:  utils.GetEnvInt("API_TIMEOUT_IN_SECONDS", 10),
			RequestsPerSecond: utils.GetEnvInt("API_REQUESTS_PER_SECOND", 5),
			SessionCookie:     utils.GetEnvString("API_SESSION_COOKIE", ""),
		},
		Stub: Stub{
			Port:                 utils.GetEnvString("STUB_PORT", ":8000"),
			MaxRequestsPerSecond: utils.GetEnvInt("STUB_MAX_REQUESTS_PER_SECOND", 20),
			ScheduleDaysAhead:    utils.GetEnvInt("STUB_SCHEDULE_DAYS_AHEAD", 14),
			ShutdownTimeout:      utils.GetEnvInt("STUB_SHUTDOWN_TIMEOUT", 10),
		},
	}
}
