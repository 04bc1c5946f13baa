package config

type (
	InternalConfig struct {
		App  App
		API  API
		Stub Stub
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	// API points the dashboard at the clinic REST backend.
	API struct {
		BaseURL           string
		TimeoutInSeconds  int
		RequestsPerSecond int
		SessionCookie     string
	}

	// Stub configures the development stub server (cmd/mockapi).
	Stub struct {
		Port                 string
		MaxRequestsPerSecond int
		ScheduleDaysAhead    int
		ShutdownTimeout      int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
