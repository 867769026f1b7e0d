package mockserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Config *config.Config
	Logger logger.Logger
}

type Server struct {
	http   *http.Server
	store  *Store
	logger logger.Logger
}

// New loads the generated document and serves it for the lifetime of the
// fx application.
func New(opts Opts) (*Server, error) {
	store, err := LoadFile(opts.Config.Generator.OutputPath)
	if err != nil {
		return nil, err
	}

	log := opts.Logger.WithComponent("MockServer")
	s := &Server{
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
			Handler:           NewRouter(store, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:  store,
		logger: log,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", s.http.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
			}
			s.logger.Info("Serving fixtures",
				"addr", ln.Addr().String(),
				"file", opts.Config.Generator.OutputPath,
				"collections", store.Collections(),
			)
			go func() {
				if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.logger.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("Shutting down mock server")
			return s.http.Shutdown(ctx)
		},
	})

	return s, nil
}

func (s *Server) Store() *Store {
	return s.store
}
