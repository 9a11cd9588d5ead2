package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/credstore"
	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/realtime"
)

// ChatReplyDestination is the per-user queue the assistant pushes
// out-of-band replies to.
const ChatReplyDestination = "/user/queue/reply"

// ChatService keeps the local transcript of the advisory chat and sends
// turns to the backend. Replies usually come back on the HTTP response;
// pushed replies on the realtime reply queue are folded into the same
// transcript.
type ChatService struct {
	api   api.Client
	creds *credstore.Store

	// Test seams.
	newID func() string
	now   func() time.Time

	mu             sync.RWMutex
	conversationID string
	messages       []models.ChatMessage
	subs           map[int]chan models.ChatMessage
	next           int
}

func NewChatService(apiClient api.Client, creds *credstore.Store) *ChatService {
	s := &ChatService{
		api:   apiClient,
		creds: creds,
		newID: uuid.NewString,
		now:   time.Now,
		subs:  make(map[int]chan models.ChatMessage),
	}
	s.conversationID = s.newID()
	return s
}

// ConversationID returns the id attached to outgoing turns.
func (s *ChatService) ConversationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversationID
}

// Reset starts a fresh conversation and clears the transcript.
func (s *ChatService) Reset() {
	s.mu.Lock()
	s.conversationID = s.newID()
	s.messages = nil
	s.mu.Unlock()
}

// Messages returns a copy of the transcript.
func (s *ChatService) Messages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Subscribe registers a transcript subscriber; every appended message is
// delivered on the returned channel, which closes when ctx ends. Slow
// subscribers are skipped, not blocked on.
func (s *ChatService) Subscribe(ctx context.Context) <-chan models.ChatMessage {
	ch := make(chan models.ChatMessage, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *ChatService) append(role models.ChatRole, content string) {
	msg := models.ChatMessage{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	for _, ch := range s.subs {
		select {
		case ch <- msg:
		default:
		}
	}
	s.mu.Unlock()
}

// Send posts one user turn. The user message is recorded immediately; the
// assistant's reply (or a readable failure note) is appended when the call
// completes. The error is also returned so callers can react.
func (s *ChatService) Send(ctx context.Context, content string) (*models.ChatResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	s.append(models.ChatRoleUser, content)

	var userID string
	if user := s.creds.User(ctx); user != nil {
		userID = user.ID
	}

	resp, err := s.api.SendChatMessage(ctx, models.ChatRequest{
		Message:        content,
		ConversationID: s.ConversationID(),
		UserID:         userID,
	})
	if err != nil {
		s.append(models.ChatRoleAssistant,
			"Sorry, I could not respond right now. "+api.ErrorMessage(err, "Unable to process chat request."))
		return nil, err
	}

	if resp.ConversationID != "" {
		s.mu.Lock()
		s.conversationID = resp.ConversationID
		s.mu.Unlock()
	}

	reply := resp.Response
	if reply == "" {
		reply = "No response received."
	}
	s.append(models.ChatRoleAssistant, reply)
	return resp, nil
}

// Listen folds pushed replies from the realtime channel into the
// transcript. It blocks until the channel closes; run it in a goroutine.
func (s *ChatService) Listen(messages <-chan realtime.Message) {
	for msg := range messages {
		if msg.Destination != ChatReplyDestination {
			continue
		}
		var reply models.ChatResponse
		if err := json.Unmarshal(msg.Body, &reply); err != nil || reply.Response == "" {
			continue
		}
		s.append(models.ChatRoleAssistant, reply.Response)
	}
}
