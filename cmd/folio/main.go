package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yourusername/folio/internal/adapter/browser"
	"github.com/yourusername/folio/internal/adapter/config"
	"github.com/yourusername/folio/internal/adapter/github"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/ui"
	"github.com/yourusername/folio/internal/ui/portfolio"
	"github.com/yourusername/folio/internal/usecase"
	"github.com/yourusername/folio/internal/web"
	"gopkg.in/yaml.v3"
)

var (
	version    = "0.1.0"
	cfgManager *config.Manager

	flagAccount string
	flagConfig  string
	flagDebug   bool
)

func main() {
	// Initialize config manager
	var err error
	cfgManager, err = config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "folio - a GitHub project portfolio",
		Long: `folio shows the most recently updated public projects of a GitHub account
as cards, each with its cover image, in the terminal or as a web page.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagAccount, "account", "a", "", "GitHub account to show (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Browse the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow()
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the portfolio as a table",
		Long: `Loads the portfolio once and prints it as a table.
Exits with status 1 when the repository listing fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func serveCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(address)
		},
	}

	cmd.Flags().StringVar(&address, "addr", "", "listen address (overrides config)")

	return cmd
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle|light|dark]",
		Short:     "Show or change the saved theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle", "light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd.OutOrStdout(), action)
		},
	}
}

func configCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config file")

	return cmd
}

// app bundles what every command needs.
type app struct {
	cfg     *domain.Config
	log     *logrus.Logger
	closeFn func()
}

func (a *app) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// loadApp loads the configuration and builds the logger. With logToFile the
// log goes to ~/.folio/folio.log so it does not draw over the TUI.
func loadApp(logToFile bool) (*app, error) {
	if flagConfig != "" {
		cfgManager.SetConfigPath(flagConfig)
	}

	cfg, err := cfgManager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagAccount != "" {
		cfg.GitHub.Account = flagAccount
	}

	a := &app{cfg: cfg}
	var out io.Writer = os.Stderr
	if logToFile {
		f, err := cfgManager.OpenLog()
		if err != nil {
			return nil, err
		}
		out = f
		a.closeFn = func() { _ = f.Close() }
	}
	a.log = newLogger(out, flagDebug)
	return a, nil
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (a *app) pipeline() *usecase.LoadPortfolioUseCase {
	client := github.NewClient(a.cfg.GitHub.APIBaseURL, a.cfg.Timeout(), github.WithLogger(a.log))
	return usecase.NewPortfolioPipeline(client, a.cfg.GitHub.CoverPath, a.cfg.GitHub.Concurrency, a.log)
}

func (a *app) themes() *usecase.ThemeUseCase {
	return usecase.NewThemeUseCase(cfgManager.Preferences(), termenv.HasDarkBackground, a.log)
}

// useTheme resolves the initial theme and switches the global palette to it,
// so printed output matches the TUI.
func useTheme(themes *usecase.ThemeUseCase) usecase.ThemeResponse {
	current := themes.Current()
	ui.SetGlobalMode(current.Mode)
	return current
}

func (a *app) loadRequest() usecase.LoadPortfolioRequest {
	return usecase.LoadPortfolioRequest{
		Account:         a.cfg.GitHub.Account,
		MaxRepositories: a.cfg.GitHub.MaxRepositories,
	}
}

func runShow() error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	themes := a.themes()
	current := useTheme(themes)
	a.log.WithField("mode", current.Mode).WithField("persisted", current.Persisted).Debug("theme resolved")

	model := portfolio.NewModel(a.pipeline(), themes, browser.Open, a.log, portfolio.Options{
		Account:         a.cfg.GitHub.Account,
		MaxRepositories: a.cfg.GitHub.MaxRepositories,
		Timeout:         a.cfg.Timeout(),
		Theme:           current.Presentation,
		Hyperlinks:      termenv.NewOutput(os.Stdout).Profile != termenv.Ascii,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run card browser: %w", err)
	}
	return nil
}

func runList(out io.Writer) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	useTheme(a.themes())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	spr := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spr.Writer = os.Stderr
	spr.Suffix = " " + domain.LoadingMessage
	spr.Start()
	result := a.pipeline().Execute(ctx, a.loadRequest())
	spr.Stop()

	printer := ui.NewPrinter(os.Stderr)
	switch result.State {
	case domain.PortfolioFailed:
		return fmt.Errorf("%s (%w)", domain.ListingFailedMessage, result.Err)
	case domain.PortfolioEmpty:
		printer.Info(domain.EmptyPortfolioMessage)
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Name", "Stars", "Description", "Cover", "URL"})
	for i, repo := range result.Repositories {
		cover, ok := repo.Cover.URL()
		if !ok {
			cover = "-"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			repo.Name,
			strconv.Itoa(repo.Stars),
			repo.DisplayDescription(),
			cover,
			repo.HTMLURL,
		})
	}
	table.Render()

	printer.Subtle(fmt.Sprintf("%d projects of @%s", len(result.Repositories), result.Account))
	return nil
}

func runServe(address string) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if address == "" {
		address = a.cfg.Server.Address
	}

	srv, err := web.NewServer(a.pipeline(), web.Config{
		Address:         address,
		Account:         a.cfg.GitHub.Account,
		MaxRepositories: a.cfg.GitHub.MaxRepositories,
	}, a.log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return srv.Run(ctx)
}

func runTheme(out io.Writer, action string) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	themes := a.themes()
	printer := ui.NewPrinter(out)
	current := useTheme(themes)

	var resp usecase.ThemeResponse
	switch action {
	case "":
		resp = current
		source := "system"
		if resp.Persisted {
			source = "saved"
		}
		printer.Info(fmt.Sprintf("%s %s (%s)", ui.FormatLabel("Theme:"), ui.FormatValue(resp.Mode.String()), source))
		return nil
	case "toggle":
		resp, err = themes.Toggle(current.Mode)
	default:
		mode, perr := domain.ParseThemeMode(action)
		if perr != nil {
			return perr
		}
		resp, err = themes.Set(mode)
	}
	if err != nil {
		return err
	}

	ui.SetGlobalMode(resp.Mode)
	printer.Success(fmt.Sprintf("Theme set to %s", ui.FormatValue(resp.Mode.String())))
	return nil
}

func runConfig(out io.Writer, save bool) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	useTheme(a.themes())

	printer := ui.NewPrinter(out)
	printer.Info(fmt.Sprintf("%s %s", ui.FormatLabel("Config file:"), cfgManager.ConfigPath()))
	printer.Separator(60)

	data, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(out, string(data))

	if save {
		if err := cfgManager.Save(a.cfg); err != nil {
			return err
		}
		printer.Success("Configuration saved")
	}
	return nil
}
