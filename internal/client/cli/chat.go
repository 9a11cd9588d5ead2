package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// Chat enters an inner loop with the advisory assistant. An empty line
// leaves the loop; the transcript is kept across invocations until
// resetchat.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireAuth("/chat") {
		return nil
	}

	fmt.Println("Ask about mutual funds (empty line to go back).")
	for _, msg := range a.chatService.Messages() {
		printChatMessage(msg)
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := a.chatService.Subscribe(subCtx)

	for {
		drainChatUpdates(updates)

		line, err := getSimpleText(a.reader, "you", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		_, _ = a.chatService.Send(ctx, line)

		// Render everything appended by the send, plus any replies pushed
		// over the realtime channel in the meantime.
		drainChatUpdates(updates)
	}
}

func drainChatUpdates(updates <-chan models.ChatMessage) {
	for {
		select {
		case msg, ok := <-updates:
			if !ok {
				return
			}
			printChatMessage(msg)
		default:
			return
		}
	}
}

// ResetChat starts a fresh conversation.
func (a *App) ResetChat(ctx context.Context) error {
	if !a.requireAuth("/chat") {
		return nil
	}
	a.chatService.Reset()
	fmt.Println("Started a new conversation.")
	return nil
}

func printChatMessage(msg models.ChatMessage) {
	prefix := "you"
	if msg.Role == models.ChatRoleAssistant {
		prefix = "advisor"
	}
	fmt.Printf("[%s] %s\n", prefix, msg.Content)
}
