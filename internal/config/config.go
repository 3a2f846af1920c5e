package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultSecretKey é público; com ele nenhum token administrativo é aceito
const DefaultSecretKey = "your_secret_key"

// O Postgres aceita no máximo 65535 parâmetros por instrução e a maior
// tabela importada usa 7 colunas por linha
const (
	defaultImportBatchSize = 100
	MaxImportBatchSize     = 65535 / 7
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	LLM        LLM        `mapstructure:",squash"`
	Query      Query      `mapstructure:",squash"`
	Import     Import     `mapstructure:",squash"`
	ImportSync ImportSync `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// LLM aponta para qualquer endpoint compatível com chat completions da OpenAI
type LLM struct {
	BaseURL     string        `mapstructure:"llm_base_url"`
	APIKey      string        `mapstructure:"llm_api_key"`
	SQLModel    string        `mapstructure:"llm_sql_model"`
	FormatModel string        `mapstructure:"llm_format_model"`
	Temperature float32       `mapstructure:"llm_temperature"`
	Timeout     time.Duration `mapstructure:"llm_timeout"`
}

type Query struct {
	Timeout      time.Duration `mapstructure:"query_timeout"`
	GuardEnabled bool          `mapstructure:"query_guard_enabled"`
}

type Import struct {
	SalesFile       string `mapstructure:"import_sales_file"`
	AdMetricsFile   string `mapstructure:"import_ad_metrics_file"`
	EligibilityFile string `mapstructure:"import_eligibility_file"`
	BatchSize       int    `mapstructure:"import_batch_size"`
	OnStartup       bool   `mapstructure:"import_on_startup"`
}

type ImportSync struct {
	CronSchedule string `mapstructure:"import_sync_cron"`
	Enabled      bool   `mapstructure:"import_sync_enabled"`
}

type Auth struct {
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "5000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/ecommerce")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_SQL_MODEL", "gemini-1.5-flash")
	v.SetDefault("LLM_FORMAT_MODEL", "gemini-1.5-flash")
	v.SetDefault("LLM_TEMPERATURE", 0)
	v.SetDefault("LLM_TIMEOUT", "30s")

	v.SetDefault("QUERY_TIMEOUT", "15s")
	v.SetDefault("QUERY_GUARD_ENABLED", true)

	v.SetDefault("IMPORT_SALES_FILE", "data/product_sales.csv")
	v.SetDefault("IMPORT_AD_METRICS_FILE", "data/product_ad_metrics.csv")
	v.SetDefault("IMPORT_ELIGIBILITY_FILE", "data/product_eligibility.csv")
	v.SetDefault("IMPORT_BATCH_SIZE", defaultImportBatchSize)
	v.SetDefault("IMPORT_ON_STARTUP", true)

	v.SetDefault("IMPORT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	v.SetDefault("IMPORT_SYNC_ENABLED", false)

	v.SetDefault("ADMIN_EMAIL", "admin@localhost")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("AUTH_TOKEN_TTL", "24h")

	v.SetDefault("SECRET_KEY", DefaultSecretKey)

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	// AutomaticEnv só resolve chaves conhecidas, então todas precisam de default
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.Server.CorsAllowedOrigins = compact(config.Server.CorsAllowedOrigins)

	if config.Import.BatchSize <= 0 {
		config.Import.BatchSize = defaultImportBatchSize
	}
	if config.Import.BatchSize > MaxImportBatchSize {
		logrus.Warnf("IMPORT_BATCH_SIZE=%d excede o limite de parâmetros do Postgres, usando %d", config.Import.BatchSize, MaxImportBatchSize)
		config.Import.BatchSize = MaxImportBatchSize
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
