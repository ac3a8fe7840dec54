// Command levelgen generates a room layout and prints it as text, or browses
// levels interactively in the terminal with -tui.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"roomgrid/internal/config"
	"roomgrid/internal/level"
	_ "roomgrid/internal/presets/classic"
	_ "roomgrid/internal/presets/crossroads"
	"roomgrid/internal/render"
	"roomgrid/internal/store"
	"roomgrid/internal/term"
)

// Config holds levelgen command configuration.
type Config struct {
	Level    config.Level
	DB       string `env:"ROOMGRID_DB"`
	TUI      bool
	History  int
	Bookmark string
	From     string
}

// ParseConfig reads the environment and then applies flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	lvl, err := config.LoadLevel()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Level: lvl}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Level.Bind(fs)
	fs.StringVar(&cfg.DB, "db", cfg.DB, "SQLite history path (empty disables history)")
	fs.BoolVar(&cfg.TUI, "tui", false, "browse levels in the terminal")
	fs.IntVar(&cfg.History, "history", 0, "print the n most recent runs and exit")
	fs.StringVar(&cfg.Bookmark, "bookmark", "", "save the generated seed under this name")
	fs.StringVar(&cfg.From, "from", "", "generate from a bookmarked seed")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.History < 0 {
		return Config{}, fmt.Errorf("history must be non-negative")
	}
	if (cfg.History > 0 || cfg.Bookmark != "" || cfg.From != "") && strings.TrimSpace(cfg.DB) == "" {
		return Config{}, fmt.Errorf("-history, -bookmark and -from need -db")
	}
	return cfg, nil
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("%v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil && !errors.Is(err, context.Canceled) {
		config.Exitf("%v", err)
	}
}

func run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	var history *store.Store
	if strings.TrimSpace(cfg.DB) != "" {
		s, err := store.Open(cfg.DB)
		if err != nil {
			return err
		}
		defer s.Close()
		history = s
	}

	if cfg.History > 0 {
		return printHistory(ctx, history, cfg.History, out)
	}

	seed := cfg.Level.Seed
	if cfg.From != "" {
		saved, err := history.LookupBookmark(ctx, cfg.From)
		if err != nil {
			return err
		}
		seed = saved
	}

	levelCfg, err := cfg.Level.Resolve()
	if err != nil {
		return err
	}
	logger := log.New(errOut, "roomgrid: ", 0)
	session, err := level.NewSession(levelCfg, cfg.Level.Catalog, level.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.TUI {
		return runTUI(ctx, session, seed)
	}

	genErr := session.Generate(seed)
	if history != nil {
		if err := recordRun(ctx, history, cfg.Level.Catalog, session); err != nil {
			return err
		}
	}
	if genErr != nil {
		fmt.Fprintf(out, "seed %s\n", session.Seed())
		return genErr
	}
	if cfg.Bookmark != "" {
		if err := history.Bookmark(ctx, cfg.Bookmark, session.Seed()); err != nil {
			return err
		}
	}
	printLevel(out, session)
	return nil
}

func runTUI(ctx context.Context, session *level.Session, seed string) error {
	// Errors are shown in the viewer status line.
	_ = session.Generate(seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	return term.NewViewer(screen, session).Run(ctx)
}

func recordRun(ctx context.Context, history *store.Store, catalog string, session *level.Session) error {
	cfg := session.Config()
	run := store.Run{
		Seed:    session.Seed(),
		Catalog: catalog,
		Width:   cfg.Width,
		Height:  cfg.Height,
		MinSize: cfg.MinLevelSize,
		MaxSize: cfg.MaxLevelSize,
		Density: cfg.LevelDensity,
		Placed:  session.Stats().Placed,
	}
	if res := session.Result(); res != nil {
		run.OK = true
		run.Attempts = res.Attempts
	} else {
		var capErr *level.AttemptCapError
		if errors.As(session.Err(), &capErr) {
			run.Attempts = capErr.Attempts
		}
	}
	_, err := history.Record(ctx, run)
	return err
}

func printLevel(out io.Writer, session *level.Session) {
	res := session.Result()
	stats := session.Stats()
	size := session.Size()
	fmt.Fprintf(out, "seed %s\n", session.Seed())
	fmt.Fprintf(out, "catalog %s %dx%d, %d attempts\n", session.Name(), size.W, size.H, res.Attempts)
	fmt.Fprintf(out, "rooms %d (corridors %d, dead ends %d, essentials %d), depth %d\n",
		stats.Placed, stats.Corridors, stats.DeadEnds, stats.Essentials, stats.MaxWave)
	fmt.Fprint(out, render.Text(session.Cells(), size.W, size.H))
}

func printHistory(ctx context.Context, history *store.Store, limit int, out io.Writer) error {
	runs, err := history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		status := "ok"
		if !r.OK {
			status = "failed"
		}
		fmt.Fprintf(out, "%4d %s %-6s %s %dx%d min=%d max=%d density=%d attempts=%d rooms=%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), status, r.Seed,
			r.Width, r.Height, r.MinSize, r.MaxSize, r.Density, r.Attempts, r.Placed)
	}
	return nil
}
