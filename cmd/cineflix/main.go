package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mmcdole/cineflix/internal/collections"
	"github.com/mmcdole/cineflix/internal/config"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/log"
	"github.com/mmcdole/cineflix/internal/preferences"
	"github.com/mmcdole/cineflix/internal/storage"
	"github.com/mmcdole/cineflix/internal/tui"
	"github.com/mmcdole/cineflix/internal/watchlist"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	var configDir string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configDir, "config", "", "directory holding config.yaml (default: the OS config directory)")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("cineflix %s\n", Version)
		return
	}

	if err := run(configDir, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: cineflix [flags] [command]

Commands:
  list [-sort key] [-desc] [-type t] [-status s]   print the list
  search <query>                                    search titles and overviews
  stats                                             print list statistics
  import <file> [-replace]                          import an exported list
  export                                            write the list as JSON to stdout
  continue                                          items in progress, most recent first
  collections                                       print custom collections
  config init [-force]                              write a default config.yaml

With no command the interactive browser starts when stdout is a terminal.

Flags:
`)
	flag.PrintDefaults()
}

// app bundles the services every command needs
type app struct {
	logger      *slog.Logger
	repo        *watchlist.Repository
	collections *collections.Service
	prefs       *preferences.Service
	cfg         *config.Config
}

func run(configDir string, args []string) error {
	// A missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Writing a config must not depend on the current one loading
	if len(args) > 0 && args[0] == "config" {
		return cmdConfig(os.Stdout, configDir, args[1:])
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if configDir != "" {
		cfg, err = config.LoadConfigFrom(configDir)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting cineflix", "version", Version, "backend", cfg.Storage.Backend)

	kv, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	store := storage.NewJSON(kv, logger)
	defer store.Close()

	a := &app{
		logger:      logger,
		repo:        watchlist.NewRepository(store, watchlist.WithLogger(logger)),
		collections: collections.NewService(store, logger),
		prefs:       preferences.NewService(store, logger),
		cfg:         cfg,
	}

	prefs := a.prefs.Get()
	if prefs.AutoRemoveCompleted {
		if n, err := a.repo.CleanupCompleted(prefs.RetentionDays); err != nil {
			logger.Warn("cleanup of completed items failed", "error", err)
		} else if n > 0 {
			logger.Info("removed completed items", "count", n, "retentionDays", prefs.RetentionDays)
		}
	}

	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return a.runTUI(prefs)
		}
		return a.printList(os.Stdout, a.repo.Query(domain.Filter{}, prefs.DefaultSort, prefs.DefaultSortDirection))
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return a.cmdList(rest, prefs)
	case "search":
		return a.cmdSearch(rest)
	case "stats":
		return a.cmdStats(os.Stdout)
	case "import":
		return a.cmdImport(rest)
	case "export":
		return a.cmdExport(os.Stdout)
	case "continue":
		return a.printList(os.Stdout, a.repo.ContinueWatching(10))
	case "collections":
		return a.cmdCollections(os.Stdout)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) runTUI(prefs domain.Preferences) error {
	model := tui.NewModel(a.repo, prefs, a.logger)

	var opts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

func (a *app) cmdList(args []string, prefs domain.Preferences) error {
	fset := flag.NewFlagSet("list", flag.ContinueOnError)
	sortKey := fset.String("sort", string(prefs.DefaultSort), "sort key: dateAdded, title, rating, runtime, releaseYear")
	desc := fset.Bool("desc", prefs.DefaultSortDirection == domain.SortDesc, "sort descending")
	typ := fset.String("type", domain.FilterAll, "type filter: all, movie, tv, documentary")
	status := fset.String("status", domain.FilterAll, "status filter: all, notStarted, inProgress, completed, dropped")
	if err := fset.Parse(args); err != nil {
		return err
	}

	key := domain.SortKey(*sortKey)
	if !key.Valid() {
		return fmt.Errorf("unknown sort key %q", *sortKey)
	}
	dir := domain.SortAsc
	if *desc {
		dir = domain.SortDesc
	}

	f, err := listFilter(*typ, *status)
	if err != nil {
		return err
	}
	return a.printList(os.Stdout, a.repo.Query(f, key, dir))
}

// listFilter builds the list command's filter, rejecting unknown values
// instead of letting them match nothing.
func listFilter(typ, status string) (domain.Filter, error) {
	t := domain.TypeFilter(typ)
	if !t.Valid() {
		return domain.Filter{}, fmt.Errorf("unknown type filter %q", typ)
	}
	st := domain.Status(status)
	if status != domain.FilterAll && !st.Valid() {
		return domain.Filter{}, fmt.Errorf("unknown status filter %q", status)
	}
	return domain.Filter{ContentType: t, Status: st}, nil
}

func cmdConfig(w io.Writer, dir string, args []string) error {
	if len(args) == 0 || args[0] != "init" {
		return errors.New("usage: cineflix config init [-force]")
	}

	fset := flag.NewFlagSet("config init", flag.ContinueOnError)
	force := fset.Bool("force", false, "overwrite an existing config.yaml")
	if err := fset.Parse(args[1:]); err != nil {
		return err
	}

	if dir == "" {
		dir = config.DefaultDir()
	}
	target := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(target); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", target)
	}

	path, err := config.SaveConfig(config.DefaultConfig(), dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func (a *app) cmdSearch(args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return errors.New("search requires a query")
	}

	results := a.repo.Search(query, domain.SearchOptions{IncludeNotes: true, IncludeTags: true})
	if len(results) == 0 {
		// Fall back to fuzzy title suggestions for near misses
		results = a.repo.Suggest(query, 10)
	}
	return a.printList(os.Stdout, results)
}

func (a *app) cmdStats(w io.Writer) error {
	s := a.repo.Stats()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Items\t%d\n", s.TotalItems)
	fmt.Fprintf(tw, "Movies\t%d\n", s.Movies)
	fmt.Fprintf(tw, "Series\t%d\n", s.TVShows)
	fmt.Fprintf(tw, "Watch time\t%dh\n", s.TotalHours)
	fmt.Fprintf(tw, "Completion\t%.1f%%\n", s.CompletionRate)
	fmt.Fprintf(tw, "Avg rating\t%.1f\n", s.AverageRating)
	for _, st := range domain.Statuses() {
		fmt.Fprintf(tw, "%s\t%d\n", st, s.StatusDistribution[st])
	}
	return tw.Flush()
}

func (a *app) cmdImport(args []string) error {
	fset := flag.NewFlagSet("import", flag.ContinueOnError)
	replace := fset.Bool("replace", false, "replace the list instead of merging")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 1 {
		return errors.New("import requires exactly one file")
	}

	data, err := os.ReadFile(fset.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	n, err := a.repo.Import(data, *replace)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("Imported %d items\n", n)
	return nil
}

func (a *app) cmdExport(w io.Writer) error {
	data, err := a.repo.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func (a *app) cmdCollections(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tITEMS\tPUBLIC\tUPDATED")
	for _, c := range a.collections.List() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n",
			c.ID, c.Name, len(c.Items), c.IsPublic, c.UpdatedAt.Format("2006-01-02"))
	}
	return tw.Flush()
}

func (a *app) printList(w io.Writer, items []domain.ListItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tTYPE\tSTATUS\tPROGRESS\tPRIORITY\tLIKED\tADDED")
	for _, it := range items {
		liked := ""
		if it.IsLiked {
			liked = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
			it.Title(), it.ContentType, it.Status, it.Progress, it.Priority, liked,
			it.DateAdded.Format("2006-01-02"))
	}
	return tw.Flush()
}
