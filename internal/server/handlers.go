package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/scenario"
	"github.com/sells-group/mandate-cli/internal/store"
	"github.com/sells-group/mandate-cli/internal/uptake"
)

type computeRequest struct {
	Preset    string               `json:"preset,omitempty"`
	Selection model.SelectionPatch `json:"selection"`
	Overrides cost.Overrides       `json:"overrides,omitempty"`
}

type computeResponse struct {
	Scenario       *model.Scenario         `json:"scenario"`
	Recommendation scenario.Recommendation `json:"recommendation"`
}

type sweepRequest struct {
	computeRequest
	From int `json:"from"`
	To   int `json:"to"`
	Step int `json:"step"`
}

type sweepResponse struct {
	Points []scenario.SweepPoint `json:"points"`
}

type wtslResponse struct {
	Severity  model.Severity `json:"severity"`
	TradeOffs []uptake.WTSL  `json:"tradeoffs"`
}

type compareResponse struct {
	Header []string              `json:"header"`
	Rows   []model.ComparisonRow `json:"rows"`
}

// handleHealth reports ok only while the scenario store answers.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		zap.L().Warn("health check: store unavailable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenario.Presets())
}

func (s *Server) handleWTSL(w http.ResponseWriter, r *http.Request) {
	sev := model.ParseSeverity(r.URL.Query().Get("severity"))
	list, err := s.engine.WTSL(sev)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wtslResponse{Severity: sev, TradeOffs: list})
}

// selection resolves the request's preset. A request naming neither a
// preset nor any attribute gets the default selection.
func (req computeRequest) selection() (model.AttributeSelection, error) {
	if req.Preset == "" && req.Selection.IsEmpty() {
		return model.DefaultSelection(), nil
	}
	return scenario.Request{Preset: req.Preset, Selection: req.Selection}.Resolve()
}

// build resolves the request's selection and computes the scenario.
func (s *Server) build(req computeRequest) (*model.Scenario, error) {
	sel, err := req.selection()
	if err != nil {
		return nil, err
	}
	sc, err := s.engine.Build(sel, req.Overrides)
	s.metrics.ObserveScenario(sel.Country, sc, err)
	return sc, err
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	sc, err := s.build(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, computeResponse{
		Scenario:       sc,
		Recommendation: scenario.Recommend(sc.UptakePercentage, sc.Participants, sc.Population),
	})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	sel, err := req.selection()
	if err != nil {
		writeError(w, err)
		return
	}
	rng := scenario.SweepRange{From: req.From, To: req.To, Step: req.Step}
	if rng == (scenario.SweepRange{}) {
		rng = scenario.DefaultSweep
	}
	points, err := s.engine.Sweep(sel, req.Overrides, rng)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sweepResponse{Points: points})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	sc, err := s.build(req)
	if err != nil {
		writeError(w, err)
		return
	}
	stored, err := s.store.Save(r.Context(), *sc)
	if err != nil {
		writeError(w, err)
		return
	}
	s.refreshStored(r)
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []model.StoredScenario{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	s.refreshStored(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	rows, err := store.Compare(r.Context(), s.store)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Header: model.ComparisonHeader, Rows: rows})
}

func (s *Server) refreshStored(r *http.Request) {
	if n, err := s.store.Count(r.Context()); err == nil {
		s.metrics.SetStored(n)
	}
}
