package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr   string
	Port         string
	DatabasePath string
	DocumentKey  string
	GinMode      string

	LogLevel    string
	LogFormat   string
	LogstashURL string
	ElkURL      string
	ElkIndex    string

	OpenFoodFactsBaseURL string
	OpenFoodFactsTimeout time.Duration
}

// Load 从当前目录读取配置，见 LoadFrom。
func Load() (AppConfig, error) {
	return LoadFrom(".")
}

// LoadFrom 依次读取 dir 下的 .env、config.yml 与环境变量，并为缺失项提供默认值。
// 环境变量优先于 config.yml；.env 不覆盖已存在的环境变量。两个文件都可以不存在。
func LoadFrom(dir string) (AppConfig, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("listen_addr", "")
	v.SetDefault("database.path", "platelog.db")
	v.SetDefault("document.key", "platelog_v1")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("logstash.url", "")
	v.SetDefault("elk.url", "")
	v.SetDefault("elk.index", "platelog")
	v.SetDefault("off.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("off.timeout", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config.yml: %w", err)
		}
	}

	port := strings.TrimSpace(v.GetString("port"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(v.GetString("listen_addr"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	timeout := v.GetDuration("off.timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return AppConfig{
		ListenAddr:           listenAddr,
		Port:                 port,
		DatabasePath:         strings.TrimSpace(v.GetString("database.path")),
		DocumentKey:          strings.TrimSpace(v.GetString("document.key")),
		GinMode:              strings.TrimSpace(v.GetString("gin.mode")),
		LogLevel:             strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		LogFormat:            strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		LogstashURL:          strings.TrimSpace(v.GetString("logstash.url")),
		ElkURL:               strings.TrimSpace(v.GetString("elk.url")),
		ElkIndex:             strings.TrimSpace(v.GetString("elk.index")),
		OpenFoodFactsBaseURL: strings.TrimSpace(v.GetString("off.base_url")),
		OpenFoodFactsTimeout: timeout,
	}, nil
}
