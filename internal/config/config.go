package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	LLM
}

type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	UploadsDirectory      string
	DirectoryScanInterval time.Duration
	ReportTitle           string
}

type PostgreSQL struct {
	Host           string
	Port           string
	Username       string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	ConnectRetries int
	RetryDelay     time.Duration
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

// LLM configures the summarizer and the agent. An empty APIKey selects the
// offline template implementation.
type LLM struct {
	APIKey string
	Model  string
}

// Client configures the upload client commands.
type Client struct {
	Endpoint string
	// Zero leaves the request bounded only by the command context.
	Timeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			UploadsDirectory:      cmd.String("uploads-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			ReportTitle:           cmd.String("report-title"),
		},
		PostgreSQL: PostgreSQL{
			Host:           cmd.String("pg-host"),
			Port:           cmd.String("pg-port"),
			Username:       cmd.String("pg-username"),
			Password:       cmd.String("pg-password"),
			DBName:         cmd.String("pg-dbname"),
			SSLMode:        cmd.String("pg-sslmode"),
			MaxConns:       int32(cmd.Int("pg-max-conns")),
			ConnectRetries: cmd.Int("pg-connect-retries"),
			RetryDelay:     cmd.Duration("pg-retry-delay"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: cmd.Int64("http-max-upload-size"),
		},
		LLM: LLM{
			APIKey: cmd.String("llm-api-key"),
			Model:  cmd.String("llm-model"),
		},
	}
}

func LoadClient(cmd *cli.Command) *Client {
	return &Client{
		Endpoint: cmd.String("endpoint"),
		Timeout:  cmd.Duration("timeout"),
	}
}
