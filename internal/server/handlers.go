package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/pipeline"
	"github.com/Achu067/PLANEXA/pkg/plan"
)

// generateResponse is the payload returned by POST /generate. The svg map is
// keyed "floor_1", "floor_2", ... matching the floor numbers in building.
type generateResponse struct {
	Success   bool                 `json:"success"`
	Timestamp string               `json:"timestamp"`
	Seed      uint64               `json:"seed"`
	Building  *plan.Building       `json:"building"`
	Metrics   plan.BuildingMetrics `json:"metrics"`
	SVG       map[string]string    `json:"svg"`
}

// errorResponse is the uniform failure envelope.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// exportRequest extends the pipeline options with a floor selector for
// single-floor exports.
type exportRequest struct {
	pipeline.Options
	Floor int `json:"floor,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"service": "planexa",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}

	// The generate endpoint always returns inline SVG; other formats go
	// through the export endpoints.
	opts.Formats = []string{pipeline.FormatSVG}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	svgs := make(map[string]string, len(result.Artifacts))
	for name, data := range result.Artifacts {
		svgs[strings.TrimSuffix(name, ".svg")] = string(data)
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Seed:      result.Seed,
		Building:  result.Building,
		Metrics:   result.Building.Metrics,
		SVG:       svgs,
	})
}

func (s *Server) handleExportPNG(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}
	if req.Floor == 0 {
		req.Floor = 1
	}

	req.Options.Formats = []string{pipeline.FormatPNG}
	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	name := fmt.Sprintf("floor_%d.png", req.Floor)
	data, ok := result.Artifacts[name]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"floor %d does not exist, building has %d floors",
			req.Floor, len(result.Building.Floors)))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}

	req.Options.Formats = []string{pipeline.FormatPDF}
	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="building.pdf"`)
	_, _ = w.Write(result.Artifacts["building.pdf"])
}

// writeError maps pipeline error codes to HTTP statuses: validation errors
// are the client's fault (400), an exhausted placement is a valid request
// the generator could not satisfy (422), everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodePlacementExhausted):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "code", errors.GetCode(err), "err", err)
	}

	writeJSON(w, status, errorResponse{
		Success: false,
		Code:    string(errors.GetCode(err)),
		Error:   err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
