package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const Version = "1.0.0"

type Server struct {
	addr      string
	publicDir string
	upgrader  websocket.Upgrader
}

// NewServer serves the API on addr. Static files are served from publicDir
// when it names an existing directory.
func NewServer(addr, publicDir string) *Server {
	return &Server{
		addr:      addr,
		publicDir: publicDir,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/nozzle", s.handleNozzle)
	mux.HandleFunc("POST /api/performance", s.handlePerformance)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/propellants/{name}", s.handlePropellant)
	mux.HandleFunc("GET /api/area-ratio", s.handleAreaRatio)
	mux.HandleFunc("GET /ws", s.serveWs)
	if fi, err := os.Stat(s.publicDir); err == nil && fi.IsDir() {
		log.WithField("dir", s.publicDir).Info("serving static files")
		mux.Handle("/", http.FileServer(http.Dir(s.publicDir)))
	}
	return logRequests(cors(mux))
}

// Serve blocks until ctx is canceled or the listener fails
func (s *Server) Serve(ctx context.Context) (err error) {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()
	select {
	case err = <-errc:
		return
	case <-ctx.Done():
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("shutting down")
	if err = srv.Shutdown(shutCtx); err != nil {
		return
	}
	if err = <-errc; errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	sr.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			start = time.Now()
			sr    = &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		)
		next.ServeHTTP(sr, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sr.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
