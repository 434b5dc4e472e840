package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Awin            Awin            `mapstructure:",squash"`
	Render          Render          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	TransactionSync TransactionSync `mapstructure:",squash"`
	KeepAlive       KeepAlive       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string `mapstructure:"host"`
	Port               string `mapstructure:"port"`
	RateLimitPerSecond int    `mapstructure:"server_rate_limit_per_second"`
	RateLimitBurst     int    `mapstructure:"server_rate_limit_burst"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Awin reúne a configuração do cliente da API de publishers da Awin. Cada
// instância do cliente é criada a partir destes valores.
type Awin struct {
	Endpoint                string `mapstructure:"awin_endpoint"`
	APIToken                string `mapstructure:"awin_api_token"`
	PublisherID             int    `mapstructure:"awin_publisher_id"`
	RequestTimeoutSeconds   int    `mapstructure:"awin_request_timeout_seconds"`
	CallsPerMinute          int    `mapstructure:"awin_calls_per_minute"`
	VerboseCommissionGroups bool   `mapstructure:"awin_verbose_commission_groups"`
	Timezone                string `mapstructure:"awin_timezone"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type TransactionSync struct {
	CronSchedule        string `mapstructure:"transaction_sync_cron"`
	LookbackDays        int    `mapstructure:"transaction_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"transaction_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"transaction_sync_enabled"`
}

// KeepAlive configura o ping periódico na URL pública do serviço, usado para
// evitar a suspensão da instância por inatividade no plano gratuito do Render.
type KeepAlive struct {
	URL             string `mapstructure:"keep_alive_url"`
	IntervalMinutes int    `mapstructure:"keep_alive_interval_minutes"`
	Enabled         bool   `mapstructure:"keep_alive_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SERVER_RATE_LIMIT_PER_SECOND", 10)
	viper.SetDefault("SERVER_RATE_LIMIT_BURST", 30)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/affiliate")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AWIN_ENDPOINT", "https://api.awin.com")
	viper.SetDefault("AWIN_API_TOKEN", "your_api_token") // ONLY LOCAL
	viper.SetDefault("AWIN_PUBLISHER_ID", 0)
	viper.SetDefault("AWIN_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("AWIN_CALLS_PER_MINUTE", 20) // 0 desativa o limitador
	viper.SetDefault("AWIN_VERBOSE_COMMISSION_GROUPS", false)
	viper.SetDefault("AWIN_TIMEZONE", "Europe/Paris")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults para sincronização de transações
	viper.SetDefault("TRANSACTION_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("TRANSACTION_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("TRANSACTION_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre escritas
	viper.SetDefault("TRANSACTION_SYNC_ENABLED", false)           // Habilitar sincronização de transações

	viper.SetDefault("KEEP_ALIVE_URL", "")
	viper.SetDefault("KEEP_ALIVE_INTERVAL_MINUTES", 10)
	viper.SetDefault("KEEP_ALIVE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Buscar secrets no Render quando o serviço estiver configurado; o token
	// da Awin guardado em secret file tem prioridade sobre o default local.
	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)

		secretsByName, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}

		if token, ok := secretsByName["awin_api_token"]; ok && token != "" {
			config.Awin.APIToken = token
		}

		if secret, ok := secretsByName["auth_secret"]; ok && secret != "" {
			config.Auth.Secret = secret
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
