package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/realtime"
)

type chatAPI struct {
	fakeAPI
	lastReq models.ChatRequest
	resp    *models.ChatResponse
	err     error
}

func (f *chatAPI) SendChatMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func newChatService(t *testing.T, apiClient api.Client) *ChatService {
	t.Helper()
	creds := setupCreds(t, "chat_"+t.Name())
	require.NoError(t, creds.SaveUser(context.Background(), &models.User{ID: "u-1", Email: "a@b.com"}))

	svc := NewChatService(apiClient, creds)
	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestChat_SendRecordsBothTurns(t *testing.T) {
	apiClient := &chatAPI{resp: &models.ChatResponse{Response: "Equity funds pool money into stocks."}}
	svc := newChatService(t, apiClient)

	resp, err := svc.Send(context.Background(), "  what is an equity fund?  ")
	require.NoError(t, err)
	require.Equal(t, "Equity funds pool money into stocks.", resp.Response)

	msgs := svc.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, models.ChatRoleUser, msgs[0].Role)
	require.Equal(t, "what is an equity fund?", msgs[0].Content)
	require.Equal(t, models.ChatRoleAssistant, msgs[1].Role)

	require.Equal(t, "what is an equity fund?", apiClient.lastReq.Message)
	require.Equal(t, "u-1", apiClient.lastReq.UserID)
	require.Equal(t, svc.ConversationID(), apiClient.lastReq.ConversationID)
}

func TestChat_SendBlankIsNoop(t *testing.T) {
	apiClient := &chatAPI{}
	svc := newChatService(t, apiClient)

	resp, err := svc.Send(context.Background(), "   ")
	require.NoError(t, err)
	require.Nil(t, resp)
	require.Empty(t, svc.Messages())
	require.Empty(t, apiClient.lastReq.Message)
}

func TestChat_SendFailureAppendsReadableNote(t *testing.T) {
	apiClient := &chatAPI{err: &api.APIError{Status: http.StatusBadRequest, Message: "Quota exceeded"}}
	svc := newChatService(t, apiClient)

	_, err := svc.Send(context.Background(), "hello")
	require.Error(t, err)

	msgs := svc.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, models.ChatRoleAssistant, msgs[1].Role)
	require.Contains(t, msgs[1].Content, "Sorry, I could not respond right now.")
	require.Contains(t, msgs[1].Content, "Quota exceeded")
}

func TestChat_AdoptsServerConversationID(t *testing.T) {
	apiClient := &chatAPI{resp: &models.ChatResponse{Response: "ok", ConversationID: "conv-server"}}
	svc := newChatService(t, apiClient)

	local := svc.ConversationID()
	_, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)
	require.NotEqual(t, local, svc.ConversationID())
	require.Equal(t, "conv-server", svc.ConversationID())
}

func TestChat_EmptyReplyPlaceholder(t *testing.T) {
	apiClient := &chatAPI{resp: &models.ChatResponse{}}
	svc := newChatService(t, apiClient)

	_, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)

	msgs := svc.Messages()
	require.Equal(t, "No response received.", msgs[1].Content)
}

func TestChat_ResetStartsFreshConversation(t *testing.T) {
	apiClient := &chatAPI{resp: &models.ChatResponse{Response: "ok"}}
	svc := newChatService(t, apiClient)

	_, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)
	before := svc.ConversationID()

	svc.Reset()
	require.NotEqual(t, before, svc.ConversationID())
	require.Empty(t, svc.Messages())
}

func TestChat_ListenFoldsPushedReplies(t *testing.T) {
	svc := newChatService(t, &chatAPI{})

	ch := make(chan realtime.Message, 4)
	done := make(chan struct{})
	go func() {
		svc.Listen(ch)
		close(done)
	}()

	body, err := json.Marshal(models.ChatResponse{Response: "pushed reply"})
	require.NoError(t, err)
	ch <- realtime.Message{Destination: ChatReplyDestination, Body: body}
	ch <- realtime.Message{Destination: "/topic/other", Body: body}
	ch <- realtime.Message{Destination: ChatReplyDestination, Body: []byte("not json")}
	close(ch)
	<-done

	msgs := svc.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, models.ChatRoleAssistant, msgs[0].Role)
	require.Equal(t, "pushed reply", msgs[0].Content)
}

func TestChat_SubscribeSeesAppendsAndClosesOnCancel(t *testing.T) {
	apiClient := &chatAPI{resp: &models.ChatResponse{Response: "reply"}}
	svc := newChatService(t, apiClient)

	ctx, cancel := context.WithCancel(context.Background())
	ch := svc.Subscribe(ctx)

	_, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)

	first := <-ch
	require.Equal(t, models.ChatRoleUser, first.Role)
	require.Equal(t, "hello", first.Content)

	second := <-ch
	require.Equal(t, models.ChatRoleAssistant, second.Role)
	require.Equal(t, "reply", second.Content)

	cancel()
	for range ch {
	}
}

func TestChat_SendErrorDoesNotChangeConversation(t *testing.T) {
	apiClient := &chatAPI{err: errors.New("down")}
	svc := newChatService(t, apiClient)

	before := svc.ConversationID()
	_, err := svc.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Equal(t, before, svc.ConversationID())
}
