package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/oberth/isentropic"
	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/performance"
	"github.com/notargets/oberth/propellants"
	"github.com/notargets/oberth/types"
)

const maxBody = 1 << 20

// PerformanceRequest is the body of POST /api/performance. Missing fields
// keep the values from NewPerformanceRequest.
type PerformanceRequest struct {
	ChamberPressure float64    `json:"pc"`
	ExitPressure    float64    `json:"pe"`
	Propellants     []string   `json:"propellants"`
	OFRange         [2]float64 `json:"of_range"`
}

func NewPerformanceRequest() PerformanceRequest {
	e := performance.NewEngine()
	return PerformanceRequest{
		ChamberPressure: e.ChamberPressure,
		ExitPressure:    e.ExitPressure,
		Propellants:     []string{"LOX", "RP-1"},
		OFRange:         [2]float64{1.5, 4.0},
	}
}

func solveNozzle(cfg nozzle.Config) (w nozzle.Wire, err error) {
	var r nozzle.Result
	if r, err = nozzle.Solve(cfg); err != nil {
		return
	}
	return r.Wire(), nil
}

func scanPerformance(req PerformanceRequest) (performance.Scan, error) {
	e := performance.NewEngine(req.ChamberPressure, req.ExitPressure)
	return e.ScanMixtureRatio(req.Propellants, req.OFRange)
}

// decode fills v from the request body, an empty body leaves v unchanged
func decode(r *http.Request, v interface{}) (err error) {
	if err = json.NewDecoder(r.Body).Decode(v); errors.Is(err, io.EOF) {
		err = nil
	}
	return
}

func (s *Server) handleNozzle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	cfg := nozzle.DefaultConfig()
	if err := decode(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	wire, err := solveNozzle(cfg)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, wire)
}

func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	req := NewPerformanceRequest()
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	scan, err := scanPerformance(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, scan)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

func (s *Server) handlePropellant(w http.ResponseWriter, r *http.Request) {
	p, ok := propellants.Lookup(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("Propellant not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAreaRatio(w http.ResponseWriter, r *http.Request) {
	var (
		q     = r.URL.Query()
		gamma = nozzle.DefaultGamma
		mach  float64
		err   error
	)
	if mach, err = strconv.ParseFloat(q.Get("mach"), 64); err != nil {
		writeError(w, http.StatusBadRequest, types.NewInputError("mach", q.Get("mach"), "must be a number"))
		return
	}
	if g := q.Get("gamma"); g != "" {
		if gamma, err = strconv.ParseFloat(g, 64); err != nil {
			writeError(w, http.StatusBadRequest, types.NewInputError("gamma", g, "must be a number"))
			return
		}
	}
	ar, err := isentropic.AreaRatioOf(mach, gamma)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mach":       mach,
		"gamma":      gamma,
		"area_ratio": ar,
	})
}

func statusFor(err error) int {
	if errors.Is(err, types.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
