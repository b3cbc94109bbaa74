package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/proplens/proplens/internal/api"
	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/genai"
	"github.com/proplens/proplens/internal/parse"
	"github.com/proplens/proplens/internal/pipeline"
	"github.com/proplens/proplens/internal/source"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "proplens",
		Short:   "AI real-estate report analysis",
		Long:    "Proplens generates AI real-estate market reports and parses them\ninto structured, navigable documents.",
		Version: version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load()
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			provider := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

			orch := pipeline.NewOrchestrator(cfg, provider, log)
			orch.Start(ctx)

			srv := api.NewServer(orch, provider, log, cfg)
			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: cfg.RequestTimeout,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				orch.Stop()

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)

				provider.Close()
			}()

			log.Info("starting proplens", "port", cfg.Port, "model", cfg.GeminiModel)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a saved report file and print the structured document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !source.IsSupportedExtension(args[0]) {
				return fmt.Errorf("unsupported file type: %s", args[0])
			}
			text, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}
			return printJSON(parse.Parse(text))
		},
	}
}

func analyzeCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "analyze ADDRESS",
		Short: "Generate and parse a report for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load()
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			cfg := config.Load()
			if cfg.GeminiAPIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is required")
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			provider := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
			defer provider.Close()

			res := pipeline.GenerateReport(ctx, provider, args[0], cfg.MaxConcurrentGenerate, log)
			if len(res.Failed) == len(genai.SectionPrompts) {
				return fmt.Errorf("all report sections failed to generate")
			}

			doc := parse.Parse(res.Text)
			doc.Sources = res.Sources
			return printJSON(doc)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall generation timeout")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
