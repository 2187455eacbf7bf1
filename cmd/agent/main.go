package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"

	realestate "github.com/guddy2005/real-estate-app"
	"github.com/guddy2005/real-estate-app/ai"
	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/catalog/badgerstore"
	"github.com/guddy2005/real-estate-app/catalog/jsonfile"
	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/httpapi"
	"github.com/guddy2005/real-estate-app/ingest"
	"github.com/guddy2005/real-estate-app/match"
)

const apiKeyEnv = "GEMINI_API_KEY"

func main() {
	// Load .env if present; real environment wins.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "agent",
		Usage: "Conversational Dubai property search assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the chat API over HTTP",
				Action: serveCommand,
				Flags: append(storeFlags(), append(aiFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					})...),
			},
			{
				Name:   "import",
				Usage:  "Import catalog and user JSON files into a BadgerDB database",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Path to property catalog JSON file",
					},
					&cli.StringFlag{
						Name:  "users",
						Usage: "Path to user database JSON file",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent region writers",
						Value: 4,
					},
				},
			},
			{
				Name:      "match",
				Usage:     "Rank the catalog against a query and print the results",
				ArgsUsage: "QUERY...",
				Action:    matchCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:  "user",
						Usage: "User mode (guest, registered)",
						Value: "guest",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print the scoring sweep, including filtered properties",
					}),
			},
			{
				Name:      "chat",
				Usage:     "Chat with the assistant (one-shot with a message, interactive without)",
				ArgsUsage: "[MESSAGE...]",
				Action:    chatCommand,
				Flags: append(storeFlags(), append(aiFlags(),
					&cli.StringFlag{
						Name:  "user",
						Usage: "User mode (guest, registered)",
						Value: "guest",
					})...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory (overrides JSON files)",
		},
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "Path to property catalog JSON file",
			Value: "data/property_catalog.json",
		},
		&cli.StringFlag{
			Name:  "users",
			Usage: "Path to user database JSON file",
			Value: "data/user_database.json",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "model",
			Usage: "Generation model name",
			Value: ai.DefaultModel,
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Maximum reply tokens (0 = provider default)",
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature (0 = provider default)",
		},
	}
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := openApp(ctx, c)
	if err != nil {
		return err
	}
	defer app.Close()

	server, err := httpapi.NewServer(app.Assistant())
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, c.String("addr"))
}

func importCommand(c *cli.Context) error {
	catalogPath := c.String("catalog")
	usersPath := c.String("users")
	if catalogPath == "" && usersPath == "" {
		return fmt.Errorf("nothing to import: provide --catalog and/or --users")
	}

	backend, err := badgerstore.OpenBackend(c.String("db"), false)
	if err != nil {
		return err
	}
	defer backend.Close()

	store, err := badgerstore.NewStore(backend)
	if err != nil {
		return err
	}
	profiles, err := badgerstore.NewProfileStore(backend)
	if err != nil {
		return err
	}

	importer, err := ingest.NewImporter(store, profiles, ingest.WithPoolSize(c.Int("workers")))
	if err != nil {
		return err
	}
	defer importer.Release()

	if catalogPath != "" {
		report, err := importer.ImportCatalog(c.Context, catalogPath)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d regions with %d properties\n", report.Regions, report.Properties)
	}
	if usersPath != "" {
		report, err := importer.ImportUsers(c.Context, usersPath)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d user profiles\n", report.Profiles)
	}
	return nil
}

func matchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	user, err := parseUser(c.String("user"))
	if err != nil {
		return err
	}

	store, profiles, cleanup, err := openStores(c)
	if err != nil {
		return err
	}
	defer cleanup()

	scorer, err := match.NewScorer(store, profiles)
	if err != nil {
		return err
	}

	var monitor match.Monitor
	if c.Bool("verbose") {
		monitor = &sweepPrinter{out: os.Stdout}
	}
	results, err := scorer.ScoreWithMonitor(c.Context, query, user, monitor)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%d. %s (%s) score=%d\n", i+1, result.Property.Name, result.Region, result.Score)
		for _, reason := range result.Reasons {
			fmt.Printf("   - %s\n", reason.Text)
		}
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	user, err := parseUser(c.String("user"))
	if err != nil {
		return err
	}

	app, err := openApp(c.Context, c)
	if err != nil {
		return err
	}
	defer app.Close()

	if c.Args().Len() > 0 {
		reply, err := app.Chat(c.Context, strings.Join(c.Args().Slice(), " "), user)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	// Interactive loop
	fmt.Println("Type a message (Ctrl-D to exit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		reply, err := app.Chat(c.Context, scanner.Text(), user)
		if err != nil {
			return err
		}
		fmt.Println(reply)
	}
}

// openApp builds the full application from the store and AI flags.
func openApp(ctx context.Context, c *cli.Context) (*realestate.App, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set", apiKeyEnv)
	}

	config := ai.DefaultConfig(
		ai.WithAPIKey(apiKey),
		ai.WithModel(c.String("model")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithTemperature(c.Float64("temperature")),
	)

	if db := c.String("db"); db != "" {
		return realestate.NewAppFromDB(ctx, db, realestate.WithAIConfig(config))
	}
	return realestate.NewApp(ctx, c.String("catalog"), c.String("users"), realestate.WithAIConfig(config))
}

// openStores opens catalog and profile stores without the AI provider.
func openStores(c *cli.Context) (catalog.Store, catalog.ProfileStore, func(), error) {
	if db := c.String("db"); db != "" {
		backend, err := badgerstore.OpenBackend(db, false)
		if err != nil {
			return nil, nil, nil, err
		}
		s, err := badgerstore.NewStore(backend)
		if err != nil {
			backend.Close()
			return nil, nil, nil, err
		}
		p, err := badgerstore.NewProfileStore(backend)
		if err != nil {
			backend.Close()
			return nil, nil, nil, err
		}
		return s, p, func() { backend.Close() }, nil
	}

	s, err := jsonfile.Open(c.String("catalog"))
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := jsonfile.OpenProfiles(c.String("users"))
	if err != nil {
		return nil, nil, nil, err
	}
	return s, p, func() {}, nil
}

// sweepPrinter prints every scoring step of a match sweep.
type sweepPrinter struct {
	out io.Writer
}

func (p *sweepPrinter) Start(query string, user core.UserType) {
	fmt.Fprintf(p.out, "scoring query %q (user mode %d)\n", query, user)
}

func (p *sweepPrinter) AfterProfileLoad(profile *core.UserProfile) {
	if profile != nil {
		fmt.Fprintf(p.out, "loaded profile %s\n", profile.Name)
	}
}

func (p *sweepPrinter) PropertyMatched(result match.Result) {
	fmt.Fprintf(p.out, "  match    %-40s score=%d\n", result.Property.Name, result.Score)
}

func (p *sweepPrinter) PropertyFiltered(name string) {
	fmt.Fprintf(p.out, "  filtered %s\n", name)
}

func (p *sweepPrinter) AfterCatalogSweep(regions, properties int) {
	fmt.Fprintf(p.out, "swept %d regions, %d properties\n", regions, properties)
}

func (p *sweepPrinter) Finish(results []match.Result) {
	fmt.Fprintf(p.out, "returning %d results\n", len(results))
}

func parseUser(value string) (core.UserType, error) {
	switch strings.ToLower(value) {
	case "guest":
		return core.UserGuest, nil
	case "registered":
		return core.UserRegistered, nil
	}
	return 0, fmt.Errorf("invalid user mode %q: must be guest or registered", value)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	return nil
}
