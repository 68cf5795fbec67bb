package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/jobportal/internal/platform/logging"
	"github.com/louisbranch/jobportal/internal/platform/timeouts"
	"github.com/louisbranch/jobportal/internal/services/web/app"
	"github.com/louisbranch/jobportal/internal/services/web/integration/companies"
	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	module "github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/modules"
	"github.com/louisbranch/jobportal/internal/services/web/platform/httpx"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
	"github.com/louisbranch/jobportal/internal/services/web/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr    string
	CategoryAPI string
	JobAPI      string
	CompanyAPI  string
	APITimeout  time.Duration
	// CompanyRefresh is the pause between company directory refreshes.
	CompanyRefresh time.Duration
	// CompanyToken authenticates the background company refresh; it is sent
	// as the backend "token" cookie.
	CompanyToken        string
	TrustForwardedProto bool
	Logger              *zap.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	refresher  *companies.Refresher
	logger     *zap.Logger
}

// NewHandler builds the root HTTP handler from the module registry.
func NewHandler(config Config, deps modules.Dependencies) (http.Handler, error) {
	logger := logging.OrNop(config.Logger)
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	deps.Base = modulehandler.NewBase(logger, policy)

	public := modules.DefaultPublicModules(deps)
	admin := modules.DefaultAdminModules(deps)
	mux, err := app.Compose(app.ComposeInput{
		PublicModules:       public,
		AdminModules:        admin,
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, static.Handler()))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, healthHandler(append(public, admin...)))

	handler := httpx.Chain(mux,
		httpx.RequestID(),
		httpx.AccessLog(logger),
		httpx.RecoverPanic(logger),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// healthHandler reports OK only while every module that can report health is
// healthy.
func healthHandler(features []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, feature := range features {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("DEGRADED " + feature.ID()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := logging.OrNop(config.Logger)

	client, err := jobapi.New(jobapi.Config{
		CategoryURL: config.CategoryAPI,
		JobURL:      config.JobAPI,
		CompanyURL:  config.CompanyAPI,
		Timeout:     config.APITimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}

	directory := companies.NewDirectory()
	var creds jobapi.Credentials
	if token := strings.TrimSpace(config.CompanyToken); token != "" {
		creds = jobapi.Credentials{{Name: "token", Value: token}}
	}
	refresher := companies.NewRefresher(client, directory, creds, config.CompanyRefresh, logger)

	handler, err := NewHandler(config, modules.Dependencies{
		CategoryClient: client,
		JobsClient:     client,
		JobPostClient:  client,
		Companies:      directory,
	})
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		refresher: refresher,
		logger:    logger,
	}, nil
}

// ListenAndServe runs the HTTP server and the company refresher until the
// context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	var workers sync.WaitGroup
	defer func() {
		stopWorkers()
		workers.Wait()
	}()
	if s.refresher != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			s.refresher.Run(workerCtx)
		}()
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without waiting for in-flight requests.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", zap.Error(err))
	}
}
