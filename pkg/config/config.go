package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"hoteldash/pkg/client"
	"hoteldash/pkg/logger"
)

type Config struct {
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json text"`

	DataSource          string `validate:"oneof=csv mongo"`
	DataPath            string `validate:"required_if=DataSource csv"`
	EmptyResultFallback bool
	MaxTableRows        int `validate:"gt=0,lte=100000"`
	MigrateImportCSV    bool

	MongoURI          string        `validate:"required_if=DataSource mongo"`
	MongoDatabaseName string        `validate:"required_if=DataSource mongo"`
	MongoCollection   string        `validate:"required_if=DataSource mongo"`
	MongoConnTimeout  time.Duration `validate:"gt=0"`

	RequestTimeout  time.Duration `validate:"gt=0"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`

	Log    *logger.Logger `validate:"-"`
	Client *client.Client `validate:"-"`
}

var reMongoURI = regexp.MustCompile(`^mongodb(\+srv)?://`)

// Load builds the configuration from the environment (and a .env file when
// present) and exits the process if it is invalid.
func Load(serviceName string) *Config {
	cfg, err := FromEnv(serviceName)
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv is Load without the exit: the returned config always carries a
// usable logger, even when validation fails.
func FromEnv(serviceName string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  strings.ToLower(getEnvStr(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnvStr(EnvLogFormat, DefaultLogFormat)),

		DataSource:          strings.ToLower(getEnvStr(EnvDataSource, DefaultDataSource)),
		DataPath:            getEnvStr(EnvDataPath, DefaultDataPath),
		EmptyResultFallback: getEnvBool(EnvEmptyResultFallback, DefaultEmptyResultFallback),
		MaxTableRows:        getEnvNum(EnvMaxTableRows, DefaultMaxTableRows),
		MigrateImportCSV:    getEnvBool(EnvMigrateImportCSV, DefaultMigrateImportCSV),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoCollection:   getEnvStr(EnvMongoCollection, DefaultMongoCollection),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RequestTimeout:  getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Client: client.NewClient(),
	}
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	return cfg, cfg.Validate()
}

func (cfg *Config) SetMongo() error {
	return cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var problems []string

	if err := validator.New().Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, fe := range validationErrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	if port, err := strconv.Atoi(cfg.Port); err == nil && (port < 1 || port > 65535) {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}
	if cfg.DataSource == SourceMongo && !reMongoURI.MatchString(cfg.MongoURI) {
		problems = append(problems, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}

	if len(problems) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, p := range problems {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got: %v", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive, got: %v", fe.Field(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got: %v", fe.Field(), fe.Param(), fe.Value())
	case "numeric":
		return fmt.Sprintf("%s must be numeric, got: %v", fe.Field(), fe.Value())
	}
	return fe.Error()
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"data_source", cfg.DataSource,
		"data_path", cfg.DataPath,
		"empty_result_fallback", cfg.EmptyResultFallback,
		"max_table_rows", cfg.MaxTableRows,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_collection", cfg.MongoCollection,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func NormalizePaginationLimit(limit, maxLimit int) int {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxTableRows
	}
	if limit <= 0 {
		limit = min(DefaultPageSize, maxLimit)
	} else if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
