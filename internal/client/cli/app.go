package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/userdesk-dev/userdesk/internal/client/api"
	"github.com/userdesk-dev/userdesk/internal/client/cache"
	"github.com/userdesk-dev/userdesk/internal/client/config"
	"github.com/userdesk-dev/userdesk/internal/client/services"
	"github.com/userdesk-dev/userdesk/internal/client/store"
	"github.com/userdesk-dev/userdesk/internal/logging"
)

// emailSort is the direction of the client-side email sort in the list view.
type emailSort string

const (
	sortAsc  emailSort = "asc"
	sortDesc emailSort = "desc"
)

// companyAll is the sentinel meaning "no company filter".
const companyAll = "All"

// App holds everything the REPL needs: the user service, the state store and
// the purely derived list-view controls (page, search, filter, sort). The
// view controls never feed back into the cache; they only shape rendering.
type App struct {
	config *config.Config
	users  *services.UserService
	state  *store.Store
	log    logging.Logger
	reader *bufio.Reader

	page          int
	totalPages    int
	query         string
	companyFilter string
	emailSort     emailSort
}

// NewApp wires the directory client, cache, store and service together.
// Construction cannot fail: an unusable state dir degrades to an in-memory
// store with a warning instead of blocking startup.
func NewApp(c *config.Config, log logging.Logger) *App {
	persister, err := store.NewPersistence(c.StateDir)
	if err != nil {
		// State persistence is best-effort; run in-memory if the state
		// dir cannot be created.
		log.Warn(context.Background(), "state dir unavailable, state will not persist", "error", err)
		persister = nil
	}
	st := store.New(persister, log)

	dir := api.NewHTTPDirectory(c.DirectoryBaseURL, c.RequestTimeout)
	pages := cache.New(c.CacheFreshness)
	users := services.NewUserService(dir, pages, st, log)

	return &App{
		config:        c,
		users:         users,
		state:         st,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		page:          1,
		companyFilter: companyAll,
		emailSort:     sortAsc,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
