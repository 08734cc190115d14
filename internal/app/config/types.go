package config

type DriverConfig struct {
	Redis  Redis
	Logger Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	Registry Registry
	JWT      JWT
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeout          int
	SessionTTLInHour         int
	SessionMintPerMinute     int
	SessionMintBlockInMinute int
	AutosaveDebounceInMillis int
	RegistryTimeoutInSeconds int
	NavigationStateTTLInHour int
}

type Registry struct {
	BaseUrl string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
