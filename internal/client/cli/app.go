package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/api"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/config"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/credstore"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/session"
	"github.com/dreamcatcher/dreamcatcher-go/internal/logging"
)

// App wires the REPL to the session manager and the resource clients.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	store   credstore.Store
	session *session.Manager

	dreams *api.DreamsAPI
	goals  *api.GoalsAPI
	ideas  *api.IdeasAPI
	sleep  *api.SleepAPI
	ai     *api.AIAPI

	reader *bufio.Reader
	out    io.Writer

	// aiAvailable caches the last /ai/status probe: 0 unknown, 1 up, 2 down.
	aiAvailable atomic.Int32
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := credstore.Open(ctx, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.APIBaseURL, store, log)
	auth := api.NewAuthAPI(client)

	return &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		session: session.NewManager(auth, client, log),
		dreams:  api.NewDreamsAPI(client),
		goals:   api.NewGoalsAPI(client),
		ideas:   api.NewIdeasAPI(client),
		sleep:   api.NewSleepAPI(client),
		ai:      api.NewAIAPI(client),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run resolves the stored session, starts the AI availability watcher and
// enters the REPL. Blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	snap := a.session.Resolve(ctx)
	if snap.IsAuthenticated() {
		printlnFn(successStyle.Render("Welcome back, " + displayName(snap.User)))
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.startAIStatusWatcher(watchCtx, a.cfg.AIStatusInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}

// getStatus renders the prompt suffix: signed-in email plus AI
// availability once known.
func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.IsAuthenticated() {
		s = snap.User.Email
	}
	switch a.aiAvailable.Load() {
	case 1:
		s += " ai:on"
	case 2:
		s += " ai:off"
	}
	return dimStyle.Render("(" + s + ")")
}

// startAIStatusWatcher periodically probes /ai/status so the prompt can
// reflect whether insight commands will work. Probes only while a session
// is authenticated; the endpoint requires a token.
func (a *App) startAIStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			status, err := a.ai.Status(probeCtx)
			cancel()

			if err != nil || !status.Available {
				a.aiAvailable.Store(2)
			} else {
				a.aiAvailable.Store(1)
			}

		case <-ctx.Done():
			return
		}
	}
}
