package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// FileName is the config file looked up in the config directory.
const FileName = "solar_config.cfg.json"

// MemoryConfig holds JSON export settings
type MemoryConfig struct {
	OutputPath     string `json:"outputPath" mapstructure:"outputPath"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// SQLiteConfig holds settings for the SQLite run archive
type SQLiteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// StorageConfig selects where a generation run is persisted besides the JSON export.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
	SQLite SQLiteConfig `json:"sqlite" mapstructure:"sqlite"`
}

// DBConfig holds Postgres connection settings
type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// InfluxConfig holds InfluxDB settings
type InfluxConfig struct {
	Enabled  bool
	Protocol string
	Host     string
	Port     string
	Token    string
	Org      string
	Bucket   string
}

// URL returns the server address built from protocol, host and port.
func (c InfluxConfig) URL() string {
	return fmt.Sprintf("%s://%s:%s", c.Protocol, c.Host, c.Port)
}

// GraylogConfig holds GELF log sink settings
type GraylogConfig struct {
	Enabled bool
	Address string
}

// OTelConfig holds OpenTelemetry metric settings
type OTelConfig struct {
	Enabled     bool
	ServiceName string
}

// OutputConfig holds export document metadata
type OutputConfig struct {
	Version     string
	DateCreated string
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
// Defaults stay in effect when an error is returned.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// SetDefaults registers every default value.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("scale.distance", core.DefaultDistanceScale)
	viper.SetDefault("scale.planetSize", core.DefaultPlanetSizeScale)
	viper.SetDefault("scale.timeMultiplier", core.DefaultTimeMultiplier)

	viper.SetDefault("output.version", "1.0")
	viper.SetDefault("output.dateCreated", "")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputPath", "solar_system_config.json")
	viper.SetDefault("storage.memory.compressOutput", false)
	viper.SetDefault("storage.sqlite.path", "solar_system_config.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "solar")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "subspace")
	viper.SetDefault("influx.bucket", "solar_config")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "solar-config")
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetScaleFactors returns the configured scale factors, validated.
func GetScaleFactors() (core.ScaleFactors, error) {
	f := core.ScaleFactors{
		DistanceScale:         viper.GetFloat64("scale.distance"),
		PlanetSizeScale:       viper.GetFloat64("scale.planetSize"),
		DefaultTimeMultiplier: viper.GetFloat64("scale.timeMultiplier"),
	}
	if err := f.Validate(); err != nil {
		return core.ScaleFactors{}, err
	}
	return f, nil
}

// GetStorageConfig returns storage settings.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Memory: MemoryConfig{
			OutputPath:     viper.GetString("storage.memory.outputPath"),
			CompressOutput: viper.GetBool("storage.memory.compressOutput"),
		},
		SQLite: SQLiteConfig{
			Path: viper.GetString("storage.sqlite.path"),
		},
	}
}

// GetDBConfig returns Postgres connection settings.
func GetDBConfig() DBConfig {
	return DBConfig{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: viper.GetString("db.password"),
		Database: viper.GetString("db.database"),
	}
}

// GetInfluxConfig returns InfluxDB settings.
func GetInfluxConfig() InfluxConfig {
	return InfluxConfig{
		Enabled:  viper.GetBool("influx.enabled"),
		Protocol: viper.GetString("influx.protocol"),
		Host:     viper.GetString("influx.host"),
		Port:     viper.GetString("influx.port"),
		Token:    viper.GetString("influx.token"),
		Org:      viper.GetString("influx.org"),
		Bucket:   viper.GetString("influx.bucket"),
	}
}

// GetGraylogConfig returns GELF sink settings.
func GetGraylogConfig() GraylogConfig {
	return GraylogConfig{
		Enabled: viper.GetBool("graylog.enabled"),
		Address: viper.GetString("graylog.address"),
	}
}

// GetOTelConfig returns OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:     viper.GetBool("otel.enabled"),
		ServiceName: viper.GetString("otel.serviceName"),
	}
}

// GetOutputConfig returns export metadata. An empty date means "today" in now's zone.
func GetOutputConfig(now time.Time) OutputConfig {
	date := viper.GetString("output.dateCreated")
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	return OutputConfig{
		Version:     viper.GetString("output.version"),
		DateCreated: date,
	}
}
