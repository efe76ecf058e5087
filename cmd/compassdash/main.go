package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"time"

	"github.com/opensource-compass/compassdash/internal/adapter/github"
	"github.com/opensource-compass/compassdash/internal/adapter/programs"
	"github.com/opensource-compass/compassdash/internal/api/http"
	"github.com/opensource-compass/compassdash/internal/api/http/limiter"
	"github.com/opensource-compass/compassdash/internal/api/static"
	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var conf Config

	cmd := &cobra.Command{
		Use:           "compassdash",
		Short:         "Contributor dashboard and program catalog for an open source repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return fmt.Errorf("couldn't parse config: %w", err)
			}
			applyFlags(cmd, &c)
			conf = c
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("repo-owner", "", "Repository owner (overrides "+envPrefix+"_REPOOWNER)")
	flags.String("repo-name", "", "Repository name (overrides "+envPrefix+"_REPONAME)")
	flags.String("programs", "", "Program data file or url (overrides "+envPrefix+"_PROGRAMSPATH)")
	flags.String("log-level", "", "Log level (overrides "+envPrefix+"_LOGLEVEL)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve dashboard over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), conf)
		},
	}
	serve.Flags().String("addr", "", "Listen address (overrides "+envPrefix+"_HTTPSERVERADDRESS)")

	render := &cobra.Command{
		Use:   "render",
		Short: "Render dashboard as static html files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), conf)
		},
	}
	render.Flags().StringP("out", "o", "", "Output directory (overrides "+envPrefix+"_OUTPUTDIR)")

	cmd.AddCommand(serve, render)

	return cmd
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, conf *Config) {
	set := func(name string, dst *string) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	set("repo-owner", &conf.RepoOwner)
	set("repo-name", &conf.RepoName)
	set("programs", &conf.ProgramsPath)
	set("log-level", &conf.LogLevel)
	set("addr", &conf.HTTPServerAddress)
	set("out", &conf.OutputDir)
}

func newLogger(conf Config) (*logrus.Logger, error) {
	l := logrus.New()
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.Level = level

	return l, nil
}

// deps holds components shared by both commands.
type deps struct {
	githubClient app.GithubClient
	programs     app.ProgramSource
	renderer     *view.Renderer
}

func newDeps(conf Config, reg prometheus.Registerer, cached bool) (*deps, error) {
	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
		conf.GithubAPIBurst,
	)

	var githubClient app.GithubClient = github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
	)
	if reg != nil {
		instrumented, err := github.NewInstrumentedClient(githubClient, reg)
		if err != nil {
			return nil, fmt.Errorf("couldn't create instrumented github client: %w", err)
		}
		githubClient = instrumented
	}
	if cached {
		cachedClient, err := github.NewCachedClient(
			githubClient,
			conf.GithubClientCacheSize,
			conf.GithubClientCacheTTL,
		)
		if err != nil {
			return nil, fmt.Errorf("couldn't create github client cache: %w", err)
		}
		githubClient = cachedClient
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("couldn't create renderer: %w", err)
	}

	return &deps{
		githubClient: githubClient,
		programs:     programs.NewSource(conf.ProgramsPath, httpClient),
		renderer:     renderer,
	}, nil
}

func runServe(ctx context.Context, conf Config) error {
	l, err := newLogger(conf)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	d, err := newDeps(conf, reg, true)
	if err != nil {
		return err
	}

	service := app.NewService(
		d.githubClient,
		d.programs,
		conf.RepoOwner,
		conf.RepoName,
		conf.LoadTimeout,
		l.WithField("component", "service"),
	)
	if c := service.LoadCatalog(ctx); !c.Programs().OK() {
		l.Warn("programs unavailable, catalog will show notice")
	}

	site := http.Site{
		Title: conf.SiteTitle,
		Owner: conf.RepoOwner,
		Repo:  conf.RepoName,
		Lead:  conf.LeadLogin,
	}
	mux := http.NewMux(
		service,
		d.renderer,
		site,
		reg,
		conf.ServiceResponseTimeout,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	return server.Run(ctx)
}

func runRender(ctx context.Context, conf Config) error {
	l, err := newLogger(conf)
	if err != nil {
		return err
	}

	d, err := newDeps(conf, nil, false)
	if err != nil {
		return err
	}

	generator := static.NewGenerator(
		app.NewDashboard(d.githubClient, conf.RepoOwner, conf.RepoName, conf.LoadTimeout, l.WithField("component", "dashboard")),
		app.NewCatalog(d.programs, l.WithField("component", "catalog")),
		d.renderer,
		static.Site{
			Title: conf.SiteTitle,
			Owner: conf.RepoOwner,
			Repo:  conf.RepoName,
			Lead:  conf.LeadLogin,
		},
		l.WithField("component", "static"),
	)

	files, err := generator.Generate(ctx, conf.OutputDir)
	if err != nil {
		return err
	}
	l.Infof("rendered %d page(s) into %s", len(files), conf.OutputDir)

	return nil
}
