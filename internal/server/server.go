package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ziflex/lecho/v2"

	"gitlab.com/zlyzol/uledger/internal/config"
	"gitlab.com/zlyzol/uledger/internal/ledger"
	"gitlab.com/zlyzol/uledger/internal/store"
	"gitlab.com/zlyzol/uledger/internal/store/inmemorydb"
	"gitlab.com/zlyzol/uledger/internal/store/mongo"
	httpdelivery "gitlab.com/zlyzol/uledger/openapi"
)

// Server
type Server struct {
	cfg        config.Configuration
	srv        *http.Server
	logger     zerolog.Logger
	echoEngine *echo.Echo
	ledger     *ledger.Ledger
	closers    []io.Closer
}

func initLog(level, file string, pretty bool) (zerolog.Logger, io.Closer, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", level)
		l = zerolog.InfoLevel
	}
	var out io.Writer = os.Stdout
	var closer io.Closer
	if file != "" {
		logFile, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, nil, errors.Wrap(err, "failed to open log file")
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closer = logFile
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = log.Output(out)
	zerolog.SetGlobalLevel(l)
	log.Info().Msg("log started")
	return log.Output(out).With().Str("service", "uledger").Logger(), closer, nil
}

func newStore(cfg config.Configuration) (store.Store, io.Closer, error) {
	switch cfg.Store {
	case config.StoreMongo:
		m, err := mongo.NewClient(cfg.Mongo)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create mongodb client instance")
		}
		return m, m, nil
	default:
		m, err := inmemorydb.NewClient()
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create in-memory store")
		}
		return m, nil, nil
	}
}

func NewServer(cfgFile string) (*Server, error) {
	// Load config
	cfg, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger service config")
	}

	log, logCloser, err := initLog(cfg.LogLevel, cfg.LogFile, cfg.Pretty)
	if err != nil {
		return nil, err
	}

	db, dbCloser, err := newStore(*cfg)
	if err != nil {
		return nil, err
	}

	l, err := ledger.NewLedger(db, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ledger instance")
	}

	// Setup echo
	echoEngine := echo.New()
	echoEngine.HideBanner = true
	echoEngine.Use(middleware.Recover())

	// CORS default
	// Allows requests from any origin wth GET, HEAD, PUT, POST or DELETE method.
	echoEngine.Use(middleware.CORS())

	logger := log.With().Str("module", "httpServer").Logger()

	// Initialise handlers
	h := httpdelivery.New(l, logger)

	// Register handlers
	httpdelivery.RegisterHandlers(echoEngine, h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%v", cfg.ListenPort),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	s := &Server{
		echoEngine: echoEngine,
		cfg:        *cfg,
		srv:        srv,
		logger:     logger,
		ledger:     l,
	}
	for _, c := range []io.Closer{dbCloser, logCloser} {
		if c != nil {
			s.closers = append(s.closers, c)
		}
	}
	return s, nil
}

func (s *Server) Start() error {
	s.registerEchoWithLogger()
	if err := s.ledger.Start(); err != nil {
		return errors.Wrap(err, "failed to start ledger")
	}
	// Serve HTTP
	go s.startServer()
	return nil
}

func (s *Server) startServer() {
	err := s.echoEngine.StartServer(s.srv)
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatal().Err(err).Msg("http server failed")
	}
}

func (s *Server) Stop() error {
	if err := s.ledger.Stop(); nil != err {
		s.logger.Error().Err(err).Msg("failed to stop ledger")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	err := s.echoEngine.Shutdown(ctx)
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			s.logger.Error().Err(cerr).Msg("failed to close resource")
		}
	}
	return err
}

func (s *Server) Log() *zerolog.Logger {
	return &s.logger
}

func (s *Server) registerEchoWithLogger() {
	l := lecho.New(s.logger)
	s.echoEngine.Use(lecho.Middleware(lecho.Config{Logger: l}))
	s.echoEngine.Use(middleware.RequestID())
}
