package ipc

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/StarNumber12046/rocket/internal/gesture"
	"github.com/StarNumber12046/rocket/internal/history"
)

const maxBodyBytes = 64 << 10

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthzResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Commands:      s.runner.Registry().Len(),
		Bindings:      len(s.launcher.Actions()),
		CurrentApp:    s.launcher.CurrentAppPath(),
	})
}

// handleCommand handles POST /command. A failing command line is a client
// error: the message goes back as {"error": ...} with 400.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	run := func(line string) (string, error) { return s.runner.RunNow(s.launcher, line) }
	var (
		out string
		err error
	)
	if s.history != nil {
		out, err = s.history.Exec(r.Context(), history.SourceIPC, req.Line, run)
	} else {
		out, err = run(req.Line)
	}
	if err != nil {
		s.logger.Info("command failed", "line", req.Line, "error", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CommandResponse{Output: out})
}

// handleGesture handles POST /gesture, firing every binding for the gesture.
func (s *Server) handleGesture(w http.ResponseWriter, r *http.Request) {
	var req GestureRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	parse := gesture.Parse
	if s.config.StrictGestures {
		parse = gesture.ParseStrict
	}
	action, err := parse(req.Gesture)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fired := s.launcher.Trigger(action)
	respondJSON(w, http.StatusOK, GestureResponse{Gesture: action.String(), Fired: fired})
}

func (s *Server) handleBindings(w http.ResponseWriter, r *http.Request) {
	actions := s.launcher.Actions()
	out := make([]BindingResponse, 0, len(actions))
	for _, b := range actions {
		out = append(out, BindingResponse{
			ID:          b.ID,
			Gesture:     b.Gesture.String(),
			Command:     b.Command,
			Fingerprint: b.Fingerprint,
			CreatedAt:   b.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	reg := s.runner.Registry()
	out := make([]CommandInfo, 0, reg.Len())
	for _, name := range reg.Names() {
		desc, _ := reg.Lookup(name)
		out = append(out, CommandInfo{Name: name, Arity: desc.Arity(), Help: desc.Help()})
	}
	respondJSON(w, http.StatusOK, out)
}

// handleHistory handles GET /history?limit=N.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, "history is disabled")
		return
	}

	limit := history.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to read history", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	respondJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if len(body) > maxBodyBytes {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}
