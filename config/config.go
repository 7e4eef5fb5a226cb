package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config ...
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	MySQL      MySQLConfig      `mapstructure:"mysql"`
	Log        LogConfig        `mapstructure:"log"`
	Jaeger     JaegerConfig     `mapstructure:"jaeger"`
	Supervisor SupervisorConfig `mapstructure:"supervisor"`
	Sweep      SweepConfig      `mapstructure:"sweep"`
	Bot        BotConfig        `mapstructure:"bot"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String ...
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString ...
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// SupervisorConfig ...
type SupervisorConfig struct {
	CheckInterval   time.Duration `mapstructure:"check_interval"`
	StopGracePeriod time.Duration `mapstructure:"stop_grace_period"`
	WorkerCommand   string        `mapstructure:"worker_command"`
}

// SweepConfig ...
type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// BotConfig ...
type BotConfig struct {
	ListingCacheSize int           `mapstructure:"listing_cache_size"`
	ListingCacheTTL  time.Duration `mapstructure:"listing_cache_ttl"`
	PageSize         int           `mapstructure:"page_size"`
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("supervisor.check_interval", 10*time.Second)
	vip.SetDefault("supervisor.stop_grace_period", 5*time.Second)
	vip.SetDefault("sweep.interval", time.Minute)
	// freecache caps entries at 1/1024 of the cache size, 32 MB allows
	// listings up to 32 KB
	vip.SetDefault("bot.listing_cache_size", 32*1024*1024)
	vip.SetDefault("bot.listing_cache_ttl", 5*time.Second)
	vip.SetDefault("bot.page_size", 5)
}

func loadConfigFile(vip *viper.Viper) Config {
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	setDefaults(vip)

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory.
func Load() Config {
	vip := viper.New()
	vip.SetConfigName("config")
	vip.SetConfigType("yml")
	vip.AddConfigPath(".")
	return loadConfigFile(vip)
}

// LoadTestConfig reads config_test.yml from the repo root, for the
// integration tests.
func LoadTestConfig(rootDir string) Config {
	vip := viper.New()
	vip.SetConfigName("config_test")
	vip.SetConfigType("yml")
	vip.AddConfigPath(path.Join(rootDir))
	return loadConfigFile(vip)
}

// NewLogger builds the process logger.
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.Set(conf.Level)
		if err != nil {
			panic(err)
		}
	}

	logConf := zap.NewProductionConfig()
	logConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := logConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
