package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/investlens/investlens/internal/analysis"
	"github.com/investlens/investlens/internal/catalog"
	"github.com/investlens/investlens/internal/domain"
	"github.com/investlens/investlens/internal/realtime"
	"github.com/investlens/investlens/internal/state"
)

type Server struct {
	app      *state.App
	catalog  *catalog.Catalog
	pipeline *analysis.Pipeline
	hub      *realtime.Hub
	log      *slog.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
}

func NewServer(app *state.App, cat *catalog.Catalog, pipeline *analysis.Pipeline, hub *realtime.Hub, log *slog.Logger) *Server {
	s := &Server{
		app:      app,
		catalog:  cat,
		pipeline: pipeline,
		hub:      hub,
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/properties", s.handleListProperties).Methods(http.MethodGet)
	r.HandleFunc("/api/properties/{id}", s.handleGetProperty).Methods(http.MethodGet)

	r.HandleFunc("/api/match", s.handleRunMatching).Methods(http.MethodPost)
	r.HandleFunc("/api/matches", s.handleGetMatches).Methods(http.MethodGet)

	r.HandleFunc("/api/profile", s.handleGetProfile).Methods(http.MethodGet)
	r.HandleFunc("/api/profile", s.handleReplaceProfile).Methods(http.MethodPut)
	r.HandleFunc("/api/profile", s.handlePatchProfile).Methods(http.MethodPatch)

	r.HandleFunc("/api/settings", s.handleGetSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", s.handlePatchSettings).Methods(http.MethodPatch)

	r.HandleFunc("/api/notifications", s.handleListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications", s.handleClearNotifications).Methods(http.MethodDelete)
	r.HandleFunc("/api/notifications/read-all", s.handleMarkAllRead).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications/{id}/read", s.handleMarkRead).Methods(http.MethodPost)

	r.HandleFunc("/api/uploads", s.handleEnqueueUploads).Methods(http.MethodPost)
	r.HandleFunc("/api/uploads", s.handleListUploads).Methods(http.MethodGet)
	r.HandleFunc("/api/uploads/{id}", s.handleRemoveUpload).Methods(http.MethodDelete)
	r.HandleFunc("/api/analysis", s.handleRunAnalysis).Methods(http.MethodPost)
	r.HandleFunc("/api/analysis", s.handleGetAnalysis).Methods(http.MethodGet)

	r.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Properties ----

type PropertySummary struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Location         string              `json:"location"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	Price            float64             `json:"price"`
	DisplayPrice     string              `json:"displayPrice"`
	RentalYield      float64             `json:"rentalYield"`
	Appreciation     float64             `json:"appreciation"`
	OpportunityScore int                 `json:"opportunityScore"`
	RiskLevel        domain.RiskLevel    `json:"riskLevel"`
	PropertyType     domain.PropertyType `json:"propertyType"`
}

type PropertiesListResponse struct {
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Total  int               `json:"total"`
	Items  []PropertySummary `json:"items"`
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Query:        q.Get("q"),
		City:         q.Get("city"),
		State:        q.Get("state"),
		PropertyType: q.Get("type"),
		RiskLevel:    q.Get("risk"),
	}
	sortBy := catalog.SortKey(q.Get("sort"))
	if sortBy == "" {
		sortBy = catalog.SortOpportunity
	}

	props := s.catalog.List(filter, sortBy)
	limit, offset := parseLimitOffset(r, 20, 0)

	total := len(props)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	items := make([]PropertySummary, 0, end-offset)
	for _, p := range props[offset:end] {
		items = append(items, PropertySummary{
			ID:               p.ID,
			Name:             p.Name,
			Location:         p.Location,
			City:             p.City,
			State:            p.State,
			Price:            p.Price,
			DisplayPrice:     domain.FormatINR(p.Price),
			RentalYield:      p.RentalYield,
			Appreciation:     p.Appreciation,
			OpportunityScore: p.OpportunityScore,
			RiskLevel:        p.RiskLevel,
			PropertyType:     p.PropertyType,
		})
	}

	writeJSON(w, http.StatusOK, PropertiesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := s.catalog.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ---- Matching ----

type MatchResponse struct {
	Results []domain.MatchResult `json:"results"`
}

func (s *Server) handleRunMatching(w http.ResponseWriter, r *http.Request) {
	results := s.app.RunMatching()
	writeJSON(w, http.StatusOK, MatchResponse{Results: results})
}

func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MatchResponse{Results: s.app.Matches()})
}

// ---- Profile ----

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Profile())
}

func (s *Server) handleReplaceProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.InvestorProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	s.app.ReplaceProfile(p)
	writeJSON(w, http.StatusOK, s.app.Profile())
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var patch state.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.app.PatchProfile(patch))
}

// ---- Settings ----

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Settings())
}

func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch state.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.app.PatchSettings(patch))
}

// ---- Notifications ----

type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NotificationsResponse{
		Notifications: s.app.Notifications(),
		UnreadCount:   s.app.UnreadCount(),
	})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	s.app.MarkNotificationRead(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]int{"unreadCount": s.app.UnreadCount()})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s.app.MarkAllNotificationsRead()
	writeJSON(w, http.StatusOK, map[string]int{"unreadCount": s.app.UnreadCount()})
}

func (s *Server) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	s.app.ClearNotifications()
	w.WriteHeader(http.StatusNoContent)
}

// ---- Uploads & analysis ----

type UploadRequest struct {
	Files []struct {
		Name string `json:"name"`
		Size int64  `json:"size"`
		Type string `json:"type"`
	} `json:"files"`
}

func (s *Server) handleEnqueueUploads(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Files) == 0 {
		http.Error(w, "no files", http.StatusBadRequest)
		return
	}

	metas := make([]analysis.FileMeta, 0, len(req.Files))
	for _, f := range req.Files {
		metas = append(metas, analysis.FileMeta{Name: f.Name, Size: f.Size, ContentType: f.Type})
	}
	writeJSON(w, http.StatusAccepted, s.pipeline.Enqueue(metas))
}

func (s *Server) handleListUploads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.Files())
}

func (s *Server) handleRemoveUpload(w http.ResponseWriter, r *http.Request) {
	s.pipeline.RemoveFile(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.RunAnalysis())
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	res := s.pipeline.Result()
	if res == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no_analysis"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Websocket ----

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	s.hub.AddClient(conn)

	// Reader loop only to detect disconnects; clients don't send anything.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.RemoveClient(conn)
				return
			}
		}
	}()
}

// ---- Helpers ----

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
