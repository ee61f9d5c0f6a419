package cli

import (
	"github.com/spf13/cobra"

	"github.com/Achu067/PLANEXA/internal/server"
	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the floor plan HTTP API",
		Long: `Start the HTTP API exposing POST /generate, POST /export/png,
POST /export/pdf and GET /healthz.

Configuration comes from the environment (a .env file is honored):
  PORT        listen port (default 5000)
  REDIS_ADDR  enable the Redis cache, e.g. localhost:6379
  CACHE_DIR   enable the file cache at the given directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.LoadConfig()
			if port != "" {
				cfg.Port = port
			}

			cch, err := c.serverCache(cmd, cfg)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cch, nil, c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			return srv.Run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}

// serverCache picks the cache backend from the config: Redis when
// configured, then the file cache, then no caching at all.
func (c *CLI) serverCache(cmd *cobra.Command, cfg server.Config) (cache.Cache, error) {
	if cfg.RedisAddr != "" {
		cch, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", cfg.RedisAddr)
		return cch, nil
	}
	if cfg.CacheDir != "" {
		cch, err := cache.NewFileCache(cfg.CacheDir)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using file cache", "dir", cfg.CacheDir)
		return cch, nil
	}
	return cache.NewNullCache(), nil
}
