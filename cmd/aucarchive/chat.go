package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WaelSawari/AUCArchive/pkg/chatbot"
	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Explore the archive interactively",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Println("🏛️  Welcome to the AUC Archive Chatbot!")
	fmt.Println("This chatbot helps you search and explore the AUC Digital Archive.")
	fmt.Println("Type 'help' for available commands or 'quit' to exit.")
	fmt.Println()
	fmt.Println("🏛️  Initializing AUC Archive Chatbot...")

	client := contentdm.New(baseURL)
	bot, err := chatbot.New(ctx, client, client.BaseURL(), slog.Default())
	if err != nil {
		fmt.Printf("❌ Error loading collections: %v\n", err)
		fmt.Println("❌ Failed to initialize chatbot. Please check your internet connection.")
		return fmt.Errorf("initializing chatbot: %w", err)
	}
	fmt.Printf("✅ Loaded %d collections\n", len(bot.Collections()))
	fmt.Println()
	fmt.Println("✅ Chatbot ready! What would you like to explore?")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("📝 You: ")
		if !scanner.Scan() {
			fmt.Println()
			fmt.Println("👋 Goodbye! Thanks for exploring the AUC Archive!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			fmt.Println("👋 Goodbye! Thanks for exploring the AUC Archive!")
			return nil
		}

		fmt.Println("🤖 Chatbot: " + handleLine(ctx, bot, line))
		fmt.Println()
	}
}

// handleLine answers one input line. A panic while processing must not end
// the session, so it is recovered and reported as an ordinary reply.
func handleLine(ctx context.Context, bot *chatbot.Chatbot, line string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("query processing panicked", "error", r)
			reply = fmt.Sprintf("❌ An error occurred: %v\nPlease try again or type 'help' for available commands.", r)
		}
	}()
	return bot.Handle(ctx, line)
}
