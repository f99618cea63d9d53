package cmd

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/finpredictor/agent"
	"github.com/etnz/finpredictor/config"
	"github.com/etnz/finpredictor/server"
	"github.com/etnz/finpredictor/store"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the finpredictor API" }
func (*serveCmd) Usage() string {
	return `finpredict serve [-addr <host:port>]

  Runs the HTTP API used by the dashboard and by the other commands.

  Environment:
    FINPREDICTOR_ADDR          listen address (default :8000)
    FINPREDICTOR_REDIS_URL     cache AI predictions in Redis instead of memory
    FINPREDICTOR_CACHE_TTL     how long predictions are cached (default 1h)
    FINPREDICTOR_CORS_ORIGINS  comma separated allowed origins (default *)
    GEMINI_API_KEY             enables AI insights, demo insights otherwise
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Overrides FINPREDICTOR_ADDR.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("%v", err)
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	advisor, closeAdvisor, err := newAdvisor(ctx, cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer closeAdvisor()

	s := server.New(server.Options{Advisor: advisor, CORSOrigins: cfg.CORSOrigins})
	if err := s.Run(ctx, cfg.Addr); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}

// newAdvisor wires the prediction cache and the Gemini model from cfg.
func newAdvisor(ctx context.Context, cfg config.Config) (*agent.Advisor, func(), error) {
	advisor := &agent.Advisor{TTL: cfg.CacheTTL}
	closer := func() {}

	if cfg.RedisURL != "" {
		cache, err := store.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.Ping(ctx); err != nil {
			log.Printf("warning, redis is not reachable, predictions are cached in memory: %v", err)
			cache.Close()
			advisor.Cache = store.NewMemoryCache()
		} else {
			advisor.Cache = cache
			closer = func() { cache.Close() }
		}
	} else {
		advisor.Cache = store.NewMemoryCache()
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, serving demo insights")
		return advisor, closer, nil
	}
	model, err := agent.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		closer()
		return nil, nil, err
	}
	advisor.Model = model
	return advisor, closer, nil
}
