package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WaelSawari/AUCArchive/pkg/chatbot"
	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted tour of the chatbot",
	RunE:  runDemo,
}

var demoQueries = []string{
	"list collections",
	"browse p15795coll7",
	"search revolution",
	"help",
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Println("🏛️  AUC Archive Chatbot Demo")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Initializing...")

	client := contentdm.New(baseURL)
	bot, err := chatbot.New(ctx, client, client.BaseURL(), slog.Default())
	if err != nil {
		return fmt.Errorf("initializing chatbot: %w", err)
	}

	for _, query := range demoQueries {
		fmt.Printf("\n📝 Query: %s\n", query)
		fmt.Println("🤖 Response:")
		fmt.Println(bot.Handle(ctx, query))
		fmt.Println()
		fmt.Println(strings.Repeat("-", 50))
	}
	return nil
}
