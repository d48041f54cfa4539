package config

import (
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

// DatabaseConfig описывает подключение к одной базе Postgres.
type DatabaseConfig struct {
	Driver string `yaml:"driver" env-default:"postgres"`
	Source string `yaml:"source" env:"DB_SOURCE" env-required:"true"`
}

// ErpDatabaseConfig — подключение к ERP-базе (distributor_master_list).
// Source может быть пустым: тогда сервис работает без прайс-листа
// дистрибьютора, и строки, требующие цен, уходят в skip-отчет.
type ErpDatabaseConfig struct {
	Driver string `yaml:"driver" env-default:"postgres"`
	Source string `yaml:"source" env:"ERP_DB_SOURCE" env-default:""`
}

// IngestConfig — параметры пакетной загрузки CSV.
type IngestConfig struct {
	ChunkSize    int    `yaml:"chunk_size" env:"INGEST_CHUNK_SIZE" env-default:"50"`
	ServiceToken string `yaml:"service_token" env:"CATALOGUE_SERVICE_API_KEY" env-required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	IsDebug *bool `yaml:"is_debug" env-required:"true"`
	Listen  struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	CORS        CORSConfig        `yaml:"cors"`
	Database    DatabaseConfig    `yaml:"database"`
	ErpDatabase ErpDatabaseConfig `yaml:"erp_database"`
	Ingest      IngestConfig      `yaml:"ingest"`
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")
		instance = &Config{}
		if err := cleanenv.ReadConfig("./cmd/config/config.yml", instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
	})

	return instance
}
