package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/momentum/internal/client/client"
	"github.com/dmitrijs2005/momentum/internal/client/config"
	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/client/services"
	"github.com/dmitrijs2005/momentum/internal/client/session"
	"github.com/dmitrijs2005/momentum/internal/logging"
)

// dashboard is the part of *services.Dashboard the commands drive.
type dashboard interface {
	Activate(ctx context.Context) error
	State() services.DashboardState
	ToggleObjective(ctx context.Context, o models.Objective) error
	BeginCheckIn()
	CancelCheckIn()
	SubmitCheckIn(ctx context.Context, mood models.Mood) error
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     *session.Store
	auth      services.AuthService
	dashboard dashboard
	wellness  services.WellnessService
	reader    *bufio.Reader

	mu       sync.Mutex
	userName string
	loggedIn bool

	unsubscribe func()
}

// consoleNotifier prints notices as "[Error] ..." or "[OK] ...".
func consoleNotifier() services.Notifier {
	return services.NotifierFunc(func(_ context.Context, n services.Notice) {
		printlnFn(fmt.Sprintf("[%s] %s", n.Level, n.Message))
	})
}

// NewApp wires the session store, the HTTP transport and the services. The
// transport reads the credential from the store on every request.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stderr)
}

func newApp(c *config.Config, in io.Reader, logOut io.Writer) (*App, error) {
	logger := logging.New(c.LogLevel, logOut)
	store := session.New()

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "transport")),
	)
	if err != nil {
		return nil, err
	}

	notifier := consoleNotifier()

	a := &App{
		config:    c,
		logger:    logger,
		store:     store,
		auth:      services.NewAuthService(apiClient, store, notifier, logger),
		dashboard: services.NewDashboard(apiClient, store, notifier, logger),
		wellness:  services.NewWellnessService(apiClient, notifier, logger),
		reader:    bufio.NewReader(in),
	}
	a.unsubscribe = store.Subscribe(a.onSession)
	return a, nil
}

// onSession keeps the prompt status in step with the latest snapshot.
func (a *App) onSession(s session.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = s.Authenticated()
	a.userName = ""
	if s.User != nil {
		a.userName = s.User.Username
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.unsubscribe()

	a.logger.Debug(ctx, "starting", "server", a.config.ServerBaseURL)
	printlnFn("Welcome to Momentum (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
