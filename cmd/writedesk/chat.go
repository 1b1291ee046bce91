package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorimoto/writedesk/internal/pipeline"
	"github.com/tmorimoto/writedesk/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  "Start an interactive supportive chat session on stdin. The transcript lives in memory for the duration of the session only.",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	responder := &pipeline.Responder{LLM: client}
	store := session.NewStore()

	fmt.Println("Type a message and press enter. Type /quit to end the session.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			break
		}
		if line == "" {
			continue
		}

		transcript, err := responder.Reply(ctx, store, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		last := transcript[len(transcript)-1]
		fmt.Printf("\n%s\n\n", last.Content)
	}

	return scanner.Err()
}
