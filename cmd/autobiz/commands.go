package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/kurochkinivan/autobiz/internal/app"
	"github.com/kurochkinivan/autobiz/internal/config"
	"github.com/kurochkinivan/autobiz/internal/infrastructure/report_client"
	"github.com/kurochkinivan/autobiz/internal/tui"
	"github.com/kurochkinivan/autobiz/internal/upload"
	"github.com/urfave/cli/v3"
)

var errLoggerMissing = errors.New("failed to get logger from context")

func serveAction(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFrom(ctx)
	if err != nil {
		return err
	}

	return app.New(log, config.Load(cmd)).Run(ctx)
}

func uploadAction(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFrom(ctx)
	if err != nil {
		return err
	}

	path := cmd.Args().First()
	if path == "" {
		return errors.New("csv file argument is required")
	}

	file, err := upload.ReadFile(path)
	if err != nil {
		return err
	}

	workflow := upload.NewWorkflow(log, newClient(cmd), upload.NewConsoleNotifier(os.Stderr))

	// A file without a readable preview can still be submitted.
	if err := workflow.Select(ctx, file); err == nil {
		if preview := tui.PreviewTable(workflow.State().Preview); preview != "" {
			fmt.Fprintln(os.Stdout, preview)
		}
	}

	link, err := workflow.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, link)

	return nil
}

func uiAction(ctx context.Context, cmd *cli.Command) error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	if path := cmd.String("log-file"); path != "" {
		f, err := tea.LogToFile(path, "autobiz")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	toasts := tui.NewToasts()
	workflow := upload.NewWorkflow(log, newClient(cmd), toasts)

	program := tea.NewProgram(
		tui.NewModel(ctx, workflow, toasts, cmd.String("dir")),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui stopped: %w", err)
	}

	return nil
}

func agentAction(ctx context.Context, cmd *cli.Command) error {
	message := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(message) == "" {
		return errors.New("message argument is required")
	}

	reply, err := newClient(cmd).Ask(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to ask agent: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprintln(os.Stdout, reply)
		return nil
	}

	out, err := renderer.Render(reply)
	if err != nil {
		fmt.Fprintln(os.Stdout, reply)
		return nil
	}

	fmt.Fprint(os.Stdout, out)

	return nil
}

func newClient(cmd *cli.Command) *report_client.Client {
	cfg := config.LoadClient(cmd)
	return report_client.New(cfg.Endpoint, cfg.Timeout)
}
