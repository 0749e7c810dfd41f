package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

var (
	baseURL  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "aucarchive",
	Short: "Chatbot for the AUC Digital Archive",
	Long: `aucarchive searches and explores the AUC Digital Archive at
https://digitalcollections.aucegypt.edu/ through free-text commands,
either interactively (chat) or over HTTP (serve).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: getLogLevel(),
		})))
	},
}

func getLogLevel() slog.Level {
	levelStr := logLevel
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", contentdm.DefaultBaseURL, "CONTENTdm instance to query")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to the LOG_LEVEL env var")
	rootCmd.AddCommand(chatCmd, serveCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
