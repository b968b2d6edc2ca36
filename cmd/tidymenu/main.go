// Package main provides the CLI entry point for tidymenu.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AntoineGS/tidymenu/internal/card"
	"github.com/AntoineGS/tidymenu/internal/client"
	"github.com/AntoineGS/tidymenu/internal/config"
	"github.com/AntoineGS/tidymenu/internal/journal"
	"github.com/AntoineGS/tidymenu/internal/menu"
	"github.com/AntoineGS/tidymenu/internal/metric"
	"github.com/AntoineGS/tidymenu/internal/tui"
)

var version = "dev"

var (
	configPath  string // Override from --config flag
	apiURL      string
	metricsAddr string
	verbose     bool
	logFile     *os.File
	logLevel    = new(slog.LevelVar)

	listCategory  string
	listSort      string
	listAllergies []string
	listPage      int

	historyLimit int
	historyLast  bool
	initForce    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tidymenu",
		Version: version,
		Short:   "Browse a restaurant menu from the terminal",
		Long: `tidymenu fetches a restaurant menu once and lets you browse it by
category, hide dishes containing allergens, sort and page through the result.

Configuration is read from ~/.config/tidymenu/config.yaml when present.
Run 'tidymenu init' to write the defaults.
Run without arguments to start the interactive TUI.`,
		SilenceUsage: true,
		RunE:         runInteractive,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logFile != nil {
				_ = logFile.Close()
				logFile = nil
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.config/tidymenu/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the menu API base URL")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the menu",
		Long: `Fetch the menu and print one page of it.

Filters are applied in the same order as the interactive view: category
first, then allergy exclusions, then the sort.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	listCmd.Flags().StringVar(&listCategory, "category", "all", "Category (all, salad, pizza, soup, dessert, drinks)")
	listCmd.Flags().StringVar(&listSort, "sort", "default", "Sort order (default, A-Z, Z-A, low-to-high, high-to-low)")
	listCmd.Flags().StringArrayVar(&listAllergies, "allergy", nil, "Exclude items for this allergy (repeatable)")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page to print")

	allergiesCmd := &cobra.Command{
		Use:   "allergies",
		Short: "List the configured allergy rules",
		Args:  cobra.NoArgs,
		RunE:  runAllergies,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent menu fetches",
		Long:  `Show the most recent entries of the fetch journal, newest first.`,
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show only the latest fetch, with its URL")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write the default configuration to ~/.config/tidymenu/config.yaml,
or to the path given with --config.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")

	rootCmd.AddCommand(listCmd, allergiesCmd, historyCmd, initCmd)

	return rootCmd
}

// setupLogging installs the default logger. The TUI owns the terminal, so
// while it runs logs go to a file (verbose) or nowhere.
func setupLogging(cmd *cobra.Command) {
	var logWriter io.Writer = cmd.ErrOrStderr()

	if cmd == cmd.Root() && tui.IsTerminal() {
		logWriter = io.Discard
		if verbose {
			logPath := filepath.Join(os.TempDir(), "tidymenu.log")
			f, err := os.Create(logPath) //nolint:gosec // fixed name in the temp dir
			if err == nil {
				logFile = f
				logWriter = f
				fmt.Fprintf(os.Stderr, "Verbose logs: %s\n", logPath)
			}
		}
	}

	logLevel.Set(slog.LevelInfo)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func resolveConfigPath() string {
	if configPath != "" {
		return config.ExpandPath(configPath)
	}

	return config.AppConfigPath()
}

func loadConfig() (*config.Config, error) {
	path := resolveConfigPath()

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if !verbose {
		logLevel.Set(config.ParseLogLevel(cfg.LogLevel))
	}

	return cfg, nil
}

func newClient(cfg *config.Config) *client.Client {
	return client.New(cfg.APIURL,
		client.WithEndpoint(cfg.MenuEndpoint),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(slog.Default()),
	)
}

// openJournal opens the fetch journal. A disabled or broken journal is not
// fatal; the returned journal is nil in that case.
func openJournal(cfg *config.Config) *journal.Journal {
	path := cfg.JournalFile()
	if path == "" {
		return nil
	}

	j, err := journal.Open(path)
	if err != nil {
		slog.Warn("could not open fetch journal", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}

	return j
}

func closeJournal(j *journal.Journal) {
	if j == nil {
		return
	}
	if err := j.Close(); err != nil {
		slog.Warn("closing fetch journal", slog.String("error", err.Error()))
	}
}

func runInteractive(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Check if we're in a terminal
	if !tui.IsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal; use 'tidymenu list' for non-interactive use")
	}

	cards, err := card.New(cfg.CardTemplate)
	if err != nil {
		return fmt.Errorf("card_template: %w", err)
	}

	c := newClient(cfg)
	j := openJournal(cfg)
	defer closeJournal(j)

	metrics := metric.NewRecorder()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := tui.Options{
		Fetch:   c.FetchMenu,
		Cards:   cards,
		Metrics: metrics,
		Journal: journal.NewRecorder(j, cfg.JournalKeep, slog.Default()),
		Logger:  slog.Default(),
		URL:     c.URL(),
		Rules:   cfg.Allergies,
	}

	return runWithMetrics(ctx, metricsAddr, metrics, func(ctx context.Context) error {
		return tui.Run(ctx, opts)
	})
}

// runWithMetrics runs fn, serving the recorder's registry on addr beside it
// when addr is set. The listener stops when fn returns; a listener failure
// cancels fn.
func runWithMetrics(ctx context.Context, addr string, rec *metric.Recorder, fn func(context.Context) error) error {
	if addr == "" {
		return fn(ctx)
	}

	g, gCtx := errgroup.WithContext(ctx)
	serveCtx, cancel := context.WithCancel(gCtx)

	g.Go(func() error {
		defer cancel()
		return fn(gCtx)
	})

	g.Go(func() error {
		return metric.ListenAndServe(serveCtx, addr, rec.Registry)
	})

	return g.Wait()
}

// listOptions mirrors the selection controls of the interactive view.
type listOptions struct {
	category  menu.Category
	sort      menu.SortOption
	allergies []string
	page      int
}

func parseListOptions() (listOptions, error) {
	category, err := menu.ParseCategory(listCategory)
	if err != nil {
		return listOptions{}, err
	}

	sortOpt, err := menu.ParseSortOption(listSort)
	if err != nil {
		return listOptions{}, err
	}

	return listOptions{
		category:  category,
		sort:      sortOpt,
		allergies: listAllergies,
		page:      listPage,
	}, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	opts, err := parseListOptions()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := newClient(cfg)
	j := openJournal(cfg)
	defer closeJournal(j)
	rec := journal.NewRecorder(j, cfg.JournalKeep, slog.Default())

	ctx := cmd.Context()
	start := time.Now()
	items, err := c.FetchMenu(ctx)
	rec.Observe(ctx, c.URL(), len(items), time.Since(start), err)
	if err != nil {
		slog.Error("fetching menu", slog.String("url", c.URL()), slog.String("error", err.Error()))
		return err
	}

	return printList(cmd.OutOrStdout(), items, cfg.Allergies, opts)
}

func printList(w io.Writer, items []menu.Item, rules []menu.AllergyRule, opts listOptions) error {
	for _, name := range opts.allergies {
		if _, ok := menu.FindRule(rules, name); !ok {
			slog.Warn("unknown allergy ignored", slog.String("allergy", name))
		}
	}

	visible := menu.Derive(items, opts.category, rules, opts.allergies, opts.sort)
	if len(visible) == 0 {
		_, err := fmt.Fprintln(w, "No items match the current filters.")
		return err
	}

	total := menu.PageCount(len(visible), menu.PageSize)
	page := menu.ClampPage(opts.page, total)

	rows := make([][]string, 0, menu.PageSize)
	for _, it := range menu.PageSlice(visible, page, menu.PageSize) {
		rows = append(rows, []string{it.Name, it.Category, card.FormatPrice(it.Price), card.Excerpt(it.Recipe, 48)})
	}

	t := newTable("Name", "Category", "Price", "Recipe").Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\npage %d of %d (%d items)\n", t.Render(), page, total, len(visible))
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		BorderHeader(true).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func runAllergies(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return printAllergies(cmd.OutOrStdout(), cfg.Allergies)
}

func printAllergies(w io.Writer, rules []menu.AllergyRule) error {
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{rule.Name, strings.Join(rule.Ingredients, ", ")})
	}

	_, err := fmt.Fprintln(w, newTable("Allergy", "Ingredients").Rows(rows...).Render())
	return err
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.JournalFile()
	if path == "" {
		return errors.New("fetch journal is disabled (journal_path is empty)")
	}

	j, err := journal.Open(path)
	if err != nil {
		return fmt.Errorf("opening fetch journal: %w", err)
	}
	defer closeJournal(j)

	if historyLast {
		latest, err := j.Latest(cmd.Context())
		if err != nil {
			return err
		}

		return printLatest(cmd.OutOrStdout(), latest)
	}

	entries, err := j.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	return printHistory(cmd.OutOrStdout(), entries)
}

func printHistory(w io.Writer, entries []journal.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No fetches recorded yet.")
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		outcome := "ok"
		if !e.OK() {
			outcome = e.Error
		}

		status := "-"
		if e.Status != 0 {
			status = strconv.Itoa(e.Status)
		}

		rows = append(rows, []string{
			e.FetchedAt.Local().Format(time.DateTime),
			status,
			strconv.Itoa(e.Items),
			e.Duration.Round(time.Millisecond).String(),
			outcome,
		})
	}

	_, err := fmt.Fprintln(w, newTable("Fetched", "Status", "Items", "Took", "Result").Rows(rows...).Render())
	return err
}

// printLatest prints one journal entry in detail. A nil entry means the
// journal is empty.
func printLatest(w io.Writer, e *journal.Entry) error {
	if e == nil {
		_, err := fmt.Fprintln(w, "No fetches recorded yet.")
		return err
	}

	result := "ok"
	if !e.OK() {
		result = e.Error
	}

	status := "-"
	if e.Status != 0 {
		status = strconv.Itoa(e.Status)
	}

	_, err := fmt.Fprintf(w, "Fetched: %s\nURL:     %s\nStatus:  %s\nItems:   %d\nTook:    %s\nResult:  %s\n",
		e.FetchedAt.Local().Format(time.DateTime),
		e.URL,
		status,
		e.Items,
		e.Duration.Round(time.Millisecond),
		result,
	)

	return err
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := resolveConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

	return nil
}
