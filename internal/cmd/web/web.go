// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/jobportal/internal/platform/cmd"
	"github.com/louisbranch/jobportal/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"JOBPORTAL_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	CategoryAPI         string        `env:"JOBPORTAL_CATEGORY_API" envDefault:"http://localhost:8000/api/v1/category"`
	JobAPI              string        `env:"JOBPORTAL_JOB_API" envDefault:"http://localhost:8000/api/v1/job"`
	CompanyAPI          string        `env:"JOBPORTAL_COMPANY_API" envDefault:"http://localhost:8000/api/v1/company"`
	APITimeout          time.Duration `env:"JOBPORTAL_API_TIMEOUT" envDefault:"10s"`
	CompanyRefresh      time.Duration `env:"JOBPORTAL_COMPANY_REFRESH" envDefault:"5m"`
	CompanyToken        string        `env:"JOBPORTAL_COMPANY_TOKEN"`
	TrustForwardedProto bool          `env:"JOBPORTAL_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"JOBPORTAL_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"JOBPORTAL_LOG_FORMAT" envDefault:"json"`

	entrypoint.TelemetryConfig
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CategoryAPI, "category-api", cfg.CategoryAPI, "Backend category API base URL")
	fs.StringVar(&cfg.JobAPI, "job-api", cfg.JobAPI, "Backend job API base URL")
	fs.StringVar(&cfg.CompanyAPI, "company-api", cfg.CompanyAPI, "Backend company API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for one backend request")
	fs.DurationVar(&cfg.CompanyRefresh, "company-refresh", cfg.CompanyRefresh, "Interval between company directory refreshes")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when deciding cookie security")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log encoding (json, console)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{
		Telemetry: cfg.TelemetryConfig,
		Logger:    logger,
	}, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			CategoryAPI:         cfg.CategoryAPI,
			JobAPI:              cfg.JobAPI,
			CompanyAPI:          cfg.CompanyAPI,
			APITimeout:          cfg.APITimeout,
			CompanyRefresh:      cfg.CompanyRefresh,
			CompanyToken:        cfg.CompanyToken,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
