package logging

import (
	"io"
	"net"
	"os"
	"strings"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/platelog/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const appName = "platelog"

// New 按配置创建日志实例。
// 配置了 LOGSTASH_URL / ELK_URL 时追加对应的 hook，连接失败只记录警告，不影响启动。
func New(cfg config.AppConfig) *logrus.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg config.AppConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if err != nil && cfg.LogLevel != "" {
		logger.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	if cfg.ElkURL != "" {
		addElasticHook(logger, cfg.ElkURL, cfg.ElkIndex)
	}
	if cfg.LogstashURL != "" {
		addLogstashHook(logger, cfg.LogstashURL)
	}

	return logger
}

func addElasticHook(logger *logrus.Logger, url, index string) {
	if index == "" {
		index = appName
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
	})
	if err != nil {
		logger.WithError(err).Warn("elasticsearch client init failed")
		return
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = appName
	}

	hook, err := elogrus.NewAsyncElasticHook(client, hostname, logger.GetLevel(), index)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch hook init failed")
		return
	}
	logger.AddHook(hook)
}

func addLogstashHook(logger *logrus.Logger, addr string) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		logger.WithError(err).Warn("logstash dial failed")
		return
	}

	hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName}))
	logger.AddHook(hook)
}
