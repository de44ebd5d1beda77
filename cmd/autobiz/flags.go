package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/autobiz/internal/infrastructure/report_client"
	"github.com/kurochkinivan/autobiz/internal/report"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var config string

	return &cli.Command{
		Name:    "autobiz",
		Usage:   "CSV business reports: report server and upload client",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Validator:   validateConfig,
				Usage:       "Load configuration from `FILE`",
				Destination: &config,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the report server and the watch directory pipeline",
				Flags:  serverFlags(&config),
				Action: serveAction,
			},
			{
				Name:      "upload",
				Usage:     "Preview a CSV file and generate its report",
				ArgsUsage: "FILE",
				Flags:     clientFlags(&config),
				Action:    uploadAction,
			},
			{
				Name:  "ui",
				Usage: "Open the interactive upload screen",
				Flags: append(clientFlags(&config),
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "Write debug logs to `FILE`",
					},
					&cli.StringFlag{
						Name:      "dir",
						Aliases:   []string{"d"},
						Usage:     "Start the file picker in `DIR`",
						Value:     ".",
						Validator: validateDirectory,
					},
				),
				Action: uiAction,
			},
			{
				Name:      "agent",
				Usage:     "Ask the assistant a question",
				ArgsUsage: "MESSAGE",
				Flags:     clientFlags(&config),
				Action:    agentAction,
			},
		},
	}
}

func yamlSource(key string, config *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))
}

func clientFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "endpoint",
			Aliases: []string{"e"},
			Usage:   "Set report server `URL`",
			Value:   report_client.DefaultEndpoint,
			Sources: yamlSource("client.endpoint", config),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Set request timeout, 0 waits until interrupted",
			Sources: yamlSource("client.timeout", config),
		},
	}
}

func serverFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for new files",
			Value:     "input",
			Sources:   yamlSource("app.watch_dir", config),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:     "reports-dir",
			Aliases:  []string{"r"},
			Usage:    "Set directory to write reports to",
			Value:    report.ReportsURLPrefix,
			Sources:  yamlSource("app.reports_dir", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "uploads-dir",
			Aliases:  []string{"u"},
			Usage:    "Set directory to store uploaded files in",
			Value:    "uploads",
			Sources:  yamlSource("app.uploads_dir", config),
			Required: true,
		},
		&cli.DurationFlag{
			Name:     "scan-interval",
			Aliases:  []string{"s"},
			Value:    3 * time.Second,
			Usage:    "Set directory scan interval",
			Sources:  yamlSource("app.scan_interval", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "report-title",
			Usage:   "Set title printed on generated reports",
			Value:   report.DefaultTitle,
			Sources: yamlSource("app.report_title", config),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  yamlSource("postgresql.host", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  yamlSource("postgresql.port", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  yamlSource("postgresql.username", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  yamlSource("postgresql.password", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "autobiz",
			Sources:  yamlSource("postgresql.dbname", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: yamlSource("postgresql.sslmode", config),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: yamlSource("postgresql.max_conns", config),
		},
		&cli.IntFlag{
			Name:    "pg-connect-retries",
			Usage:   "Set number of PostgreSQL connection attempts",
			Value:   5,
			Sources: yamlSource("postgresql.connect_retries", config),
		},
		&cli.DurationFlag{
			Name:    "pg-retry-delay",
			Usage:   "Set delay between PostgreSQL connection attempts",
			Value:   2 * time.Second,
			Sources: yamlSource("postgresql.retry_delay", config),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: yamlSource("http.host", config),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8000",
			Sources: yamlSource("http.port", config),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: yamlSource("http.idle_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: yamlSource("http.read_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   2 * time.Minute,
			Sources: yamlSource("http.write_timeout", config),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload-size",
			Usage:   "Set maximum accepted upload size in bytes",
			Value:   32 << 20,
			Sources: yamlSource("http.max_upload_size", config),
		},
		&cli.StringFlag{
			Name:    "llm-api-key",
			Usage:   "Set Gemini API key, empty uses template summaries",
			Sources: cli.NewValueSourceChain(cli.EnvVar("GEMINI_API_KEY"), yaml.YAML("llm.api_key", altsrc.NewStringPtrSourcer(config))),
		},
		&cli.StringFlag{
			Name:    "llm-model",
			Usage:   "Set Gemini model",
			Value:   "gemini-2.0-flash",
			Sources: yamlSource("llm.model", config),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
