package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/jopela/urlinfer/internal/adapters/fs"
	httpAdapter "github.com/jopela/urlinfer/internal/adapters/http"
	"github.com/jopela/urlinfer/internal/cliconfig"
	"github.com/jopela/urlinfer/internal/urlio"
	"github.com/jopela/urlinfer/pkg/infer"
	"github.com/jopela/urlinfer/pkg/log"
	"github.com/jopela/urlinfer/pkg/resolver"
)

const helpDescription = `
Infer related URLs from a list of Wikipedia, Wikivoyage and DBpedia URLs.

Rules compose like functions: the last one given runs first and each
earlier one consumes the output of the one after it, so "-i wikivoyage
-i dbpedia" rewrites DBpedia URLs, then adds their Wikivoyage URLs.
Available rules:
  wikivoyage                  add the Wikivoyage URL of every Wikipedia URL
  dbpedia                     rewrite DBpedia resources to Wikipedia articles
  wikipedia-language-expand   replace articles by their versions in --languages
                              (live lookup, paced and cached)

URLs are read from FILE, or from stdin when FILE is omitted or "-", and
printed one per line on stdout. Diagnostics go to stderr.
`

var exampleUsage = strings.TrimSpace(`
  urlinfer -i wikivoyage -i dbpedia urls.txt
  echo http://dbpedia.org/resource/Montreal | urlinfer -i dbpedia --lang fr
  urlinfer -i wikipedia-language-expand,dbpedia --languages en,fr,de < urls.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, &http.Client{})
	if err := root.ExecuteContext(ctx); err != nil {
		cliconfig.Logger("info").Error("urlinfer", log.Err(err))
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer, client *http.Client) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "urlinfer [FILE]",
		Short:         "Infer related Wikipedia, Wikivoyage and DBpedia URLs",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env in the working directory feeds the URLINFER_* variables.
			if err := godotenv.Load(); err != nil && !errors.Is(err, iofs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Env overrides file config, flags override env (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cliconfig.Logger(cfg.LogLevel).With(log.String("run_id", uuid.NewString()))
			logger.Debug("configuration", log.Any("config", cfg))

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), cfg, path, stdin, stdout, client, logger)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.urlinfer/config.toml)")
	root.Flags().StringSliceVarP(&cfg.Rules, "infer", "i", cfg.Rules,
		fmt.Sprintf("inference rule, repeatable; the last one given runs first (%s)", ruleNames()))
	root.Flags().StringVarP(&cfg.Lang, "lang", "l", cfg.Lang, "default language for DBpedia URLs without one")
	root.Flags().StringSliceVar(&cfg.Languages, "languages", cfg.Languages, "languages kept by wikipedia-language-expand")

	root.Flags().StringVar(&cfg.APIEndpoint, "api-endpoint", cfg.APIEndpoint,
		fmt.Sprintf("MediaWiki API URL, %s is replaced by the source host (default https://%s/w/api.php)",
			httpAdapter.SitePlaceholder, httpAdapter.SitePlaceholder))
	root.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent sent to the MediaWiki API")
	root.Flags().DurationVar(&cfg.RateInterval, "rate-interval", cfg.RateInterval, "minimum delay between two API calls (0 disables)")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "timeout of a single API call")
	root.Flags().IntVar(&cfg.MaxRetries, "retries", cfg.MaxRetries, "extra attempts after a failed API call")
	root.Flags().StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory keeping API answers between runs (default: memory only)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}

func run(ctx context.Context, cfg cliconfig.Config, path string, stdin io.Reader, stdout io.Writer, client *http.Client, logger log.Logger) error {
	in, err := urlio.Open(path, stdin)
	if err != nil {
		return err
	}
	urls, err := urlio.Read(in)
	in.Close()
	if err != nil {
		return err
	}

	deps := infer.Deps{
		Lang:      cfg.Lang,
		Languages: cfg.Languages,
		Logger:    logger,
	}

	if infer.NeedsResolver(cfg.Rules) {
		// One limiter spaces lookups and their continuation requests alike.
		limiter := resolver.NewLimiter(cfg.RateInterval)
		base := httpAdapter.NewLangLinkResolver(client,
			httpAdapter.WithEndpoint(cfg.APIEndpoint),
			httpAdapter.WithUserAgent(cfg.UserAgent),
			httpAdapter.WithPacer(limiter),
			httpAdapter.WithLogger(logger),
		)

		stackCfg := resolver.Config{
			Limiter:    limiter,
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
			Logger:     logger,
		}
		if cfg.CacheDir != "" {
			stackCfg.Repository = fsAdapter.NewCacheFileRepository(cfg.CacheDir)
		}

		cached := resolver.NewStack(base, stackCfg)
		if err := cached.Load(ctx); err != nil {
			logger.Warn("ignoring unreadable cache", log.Err(err))
		}
		defer func() {
			// Save even when interrupted; ctx may already be canceled.
			if err := cached.Flush(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("cache not saved", log.Err(err))
			}
		}()
		deps.Resolver = cached
	}

	rules, err := infer.Build(cfg.Rules, deps)
	if err != nil {
		return err
	}

	res := infer.Infer(ctx, urls, rules)
	logger.Debug("inference done", log.Int("in", len(urls)), log.Int("out", len(res)), log.Strings("rules", cfg.Rules))

	return urlio.Write(stdout, res)
}

func ruleNames() string {
	names := infer.Names()
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}
