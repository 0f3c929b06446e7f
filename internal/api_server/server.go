package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"

	api "github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/internal/config"
	handlers "github.com/kubev2v/paint-planner/internal/handlers/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/metrics"
	"github.com/kubev2v/paint-planner/pkg/middleware"
	"github.com/kubev2v/paint-planner/pkg/requestid"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of a paint-planner server.
func New(cfg *config.Config, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

func oapiErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Message: fmt.Sprintf("API Error: %s", message)})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, api.Error{Message: "route not found", RequestId: requestid.FromContextPtr(r.Context())})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, api.Error{Message: "method not allowed", RequestId: requestid.FromContextPtr(r.Context())})
}

// NewRouter wires the middleware chain, the worksheet store and the v1alpha1 handlers.
// The request metrics are registered with reg.
func NewRouter(cfg *config.Config, reg prometheus.Registerer) (chi.Router, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	oapiOpts := oapimiddleware.Options{
		ErrorHandler: oapiErrorHandler,
	}

	buckets, err := metrics.ParseBuckets(cfg.Service.LatencyBuckets)
	if err != nil {
		return nil, err
	}
	metricMiddleware := metrics.NewMiddleware("api_server", buckets)
	if err := metricMiddleware.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}

	router := chi.NewRouter()
	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Service.AllowedOrigins,
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{"Content-Disposition", requestid.Header},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		log.ConditionalLogger(cfg.Service.AccessLog || log.AccessLogEnabled(cfg.Service.LogLevel), zap.L(), "api_server"),
		chiMiddleware.Recoverer,
		oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapiOpts),
	)
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	store := worksheet.NewStore(cfg.Service.MaxWorksheets)
	estimationService := service.NewEstimationService()

	h := handlers.NewServiceHandler(
		estimationService,
		service.NewWorksheetService(store, cfg.Service.MaxWorksheets, estimationService, service.NewReportService()),
	)
	server.HandlerFromMux(server.NewStrictHandler(h, nil), router)

	return router, nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router, err := NewRouter(s.cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
