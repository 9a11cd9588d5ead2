package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/config"
	"github.com/fundscope/fundscope-cli/internal/client/credstore"
	"github.com/fundscope/fundscope-cli/internal/client/realtime"
	"github.com/fundscope/fundscope-cli/internal/client/services"
	"github.com/fundscope/fundscope-cli/internal/client/session"
	"github.com/fundscope/fundscope-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired-up client: storage, session, API, realtime channel and
// the services the REPL commands dispatch to.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	rt      *realtime.Manager

	authService      *services.AuthService
	profileService   *services.RiskProfileService
	portfolioService *services.PortfolioService
	chatService      *services.ChatService

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := credstore.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	creds := credstore.New(db)
	sess := session.New(creds)
	apiClient := api.NewHTTPClient(c.APIBaseURL, creds, c.RequestTimeout)

	rt := realtime.NewManager(realtime.Config{
		URL:               c.WSURL(),
		ReplyDestination:  services.ChatReplyDestination,
		HeartbeatInterval: c.HeartbeatInterval,
		ReconnectDelay:    c.ReconnectDelay,
	}, creds, log)

	return &App{
		config:           c,
		log:              log,
		session:          sess,
		rt:               rt,
		authService:      services.NewAuthService(apiClient, sess, creds, rt, log),
		profileService:   services.NewRiskProfileService(apiClient),
		portfolioService: services.NewPortfolioService(apiClient),
		chatService:      services.NewChatService(apiClient, creds),
		reader:           bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

// Run restores the session from storage, brings up the realtime channel and
// enters the REPL. It returns when the user exits; the realtime channel is
// torn down on the way out.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.InitializeFromStorage(ctx)
	if state := a.session.Snapshot(); state.IsAuthenticated {
		a.log.Info(ctx, "session restored", "email", state.User.Email)
	}

	a.rt.Activate()
	defer a.rt.Deactivate()

	go a.chatService.Listen(a.rt.Messages(ctx))

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
