package realestate

import (
	"context"
	"log/slog"

	"github.com/guddy2005/real-estate-app/ai"
	"github.com/guddy2005/real-estate-app/ai/googleai"
	"github.com/guddy2005/real-estate-app/assistant"
	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/catalog/badgerstore"
	"github.com/guddy2005/real-estate-app/catalog/jsonfile"
	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/ingest"
	"github.com/guddy2005/real-estate-app/match"
)

// App wires the catalog stores, the scorer, the AI provider and the
// assistant into a ready-to-use application.
type App struct {
	store     catalog.Store
	profiles  catalog.ProfileStore
	backend   *badgerstore.Backend
	provider  ai.Provider
	scorer    *match.Scorer
	assistant *assistant.Assistant
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig sets the AI configuration used to build the Gemini
// provider.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the Gemini
// default. Used by tests and custom deployments.
func WithProvider(provider ai.Provider) AppOption {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// NewApp builds an App over JSON catalog and user files loaded into
// memory.
func NewApp(ctx context.Context, catalogPath, usersPath string, opts ...AppOption) (*App, error) {
	store, err := jsonfile.Open(catalogPath)
	if err != nil {
		return nil, err
	}
	profiles, err := jsonfile.OpenProfiles(usersPath)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, store, profiles, nil, opts...)
}

// NewAppFromDB builds an App over a persistent BadgerDB catalog
// previously populated by the importer.
func NewAppFromDB(ctx context.Context, dbPath string, opts ...AppOption) (*App, error) {
	backend, err := badgerstore.OpenBackend(dbPath, false)
	if err != nil {
		return nil, err
	}
	store, err := badgerstore.NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	profiles, err := badgerstore.NewProfileStore(backend)
	if err != nil {
		store.Close()
		backend.Close()
		return nil, err
	}
	app, err := newApp(ctx, store, profiles, backend, opts...)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, store catalog.Store, profiles catalog.ProfileStore, backend *badgerstore.Backend, opts ...AppOption) (*App, error) {
	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = googleai.NewProvider(ctx, options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	scorer, err := match.NewScorer(store, profiles)
	if err != nil {
		provider.Close()
		return nil, err
	}

	a, err := assistant.NewAssistant(scorer, provider.Responder(), profiles)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &App{
		store:     store,
		profiles:  profiles,
		backend:   backend,
		provider:  provider,
		scorer:    scorer,
		assistant: a,
		logger:    slog.Default(),
	}, nil
}

// Close releases all application resources.
func (app *App) Close() error {
	if err := app.provider.Close(); err != nil {
		app.logger.Error("error closing AI provider", "err", err)
	}

	if err := app.profiles.Close(); err != nil {
		app.logger.Error("error closing profile store", "err", err)
		return err
	}
	if err := app.store.Close(); err != nil {
		app.logger.Error("error closing catalog store", "err", err)
		return err
	}
	if app.backend != nil {
		if err := app.backend.Close(); err != nil {
			app.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// Chat answers a single user message.
func (app *App) Chat(ctx context.Context, message string, user core.UserType) (string, error) {
	return app.assistant.Chat(ctx, message, user)
}

// Match ranks the catalog against a query without generating a reply.
func (app *App) Match(ctx context.Context, query string, user core.UserType) ([]match.Result, error) {
	return app.scorer.Score(ctx, query, user)
}

// Assistant returns the wired assistant.
func (app *App) Assistant() *assistant.Assistant {
	return app.assistant
}

// Store returns the catalog store.
func (app *App) Store() catalog.Store {
	return app.store
}

// ProfileStore returns the profile store.
func (app *App) ProfileStore() catalog.ProfileStore {
	return app.profiles
}

// NewImporter creates an importer bound to this app's stores. Only
// valid for apps opened with NewAppFromDB.
func (app *App) NewImporter(opts ...ingest.Option) (*ingest.Importer, error) {
	store, ok := app.store.(*badgerstore.Store)
	if !ok {
		return nil, ingest.ErrStoreRequired
	}
	profiles, ok := app.profiles.(*badgerstore.ProfileStore)
	if !ok {
		return nil, ingest.ErrProfileStoreRequired
	}
	return ingest.NewImporter(store, profiles, opts...)
}
