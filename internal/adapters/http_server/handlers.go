package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rentwatch/internal/adapters/session"
	"rentwatch/internal/app"
	"rentwatch/internal/domain"
)

type Handlers struct {
	Q        *app.QueryService
	C        *app.CommandService
	Sessions *session.Store
	Writes   *WriteLimiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/properties", h.listProperties)
	s.mux.Get("/v1/properties/search", h.searchProperties)
	s.mux.Get("/v1/properties/{id}", h.getProperty)
	s.mux.Get("/v1/properties/{id}/reviews", h.listReviews)
	s.mux.Get("/v1/landlords", h.listLandlords)
	s.mux.Get("/v1/alerts", h.riskAlerts)

	s.mux.Post("/v1/session", h.createSession)
	s.mux.Delete("/v1/session", h.destroySession)

	// Mutations require a session and are write rate limited.
	s.mux.Group(func(g chi.Router) {
		g.Use(RequireSession(h.Sessions))
		g.Use(h.Writes.Middleware)
		g.Post("/v1/properties", h.addProperty)
		g.Put("/v1/properties/{id}", h.updateProperty)
		g.Delete("/v1/properties/{id}", h.deleteProperty)
		g.Post("/v1/properties/{id}/reviews", h.addReview)
		g.Post("/v1/reviews/{id}/helpful", h.markHelpful)
		g.Post("/v1/reviews/{id}/report", h.reportReview)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps the domain error taxonomy onto HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		writeProblem(w, http.StatusBadRequest, "Invalid Argument", err.Error())
	case errors.Is(err, domain.ErrLandlordMissing):
		writeProblem(w, http.StatusUnprocessableEntity, "Unknown Landlord", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// writeCached sends v with an ETag, short-circuiting to 304 when the client
// already holds this version.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- read endpoints ----

func parseFilters(r *http.Request) (domain.Filters, error) {
	q := r.URL.Query()
	var f domain.Filters
	for _, fld := range []struct {
		name string
		dst  *int
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
		{"rooms", &f.Rooms},
	} {
		if s := q.Get(fld.name); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return domain.Filters{}, errors.New(fld.name + " must be a non-negative integer")
			}
			*fld.dst = n
		}
	}
	f.RiskLevel = q.Get("risk_level")
	return f, nil
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}

	pageSize := 10
	if ps := r.URL.Query().Get("page_size"); ps != "" {
		n, err := strconv.Atoi(ps)
		if err != nil || n <= 0 || n > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid page_size", "page_size must be an integer between 1 and 100")
			return
		}
		pageSize = n
	}

	page, err := h.Q.ListProperties(r.Context(), r.URL.Query().Get("cursor"), pageSize, f)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, page)
}

func (h *Handlers) searchProperties(w http.ResponseWriter, r *http.Request) {
	items, err := h.Q.SearchProperties(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, items)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, p)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Q.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, rs)
}

func (h *Handlers) listLandlords(w http.ResponseWriter, r *http.Request) {
	lls, err := h.Q.ListLandlords(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, lls)
}

func (h *Handlers) riskAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.Q.RiskAlerts(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeCached(w, r, alerts)
}

// ---- write endpoints ----

type propertyRequest struct {
	Title       string           `json:"title"`
	Address     string           `json:"address"`
	Price       int              `json:"price"`
	Size        float64          `json:"size"`
	Rooms       int              `json:"rooms"`
	Bathrooms   int              `json:"bathrooms"`
	Description string           `json:"description"`
	Images      []string         `json:"images"`
	LandlordID  string           `json:"landlordId"`
	RiskLevel   domain.RiskLevel `json:"riskLevel"`
	RiskFactors []string         `json:"riskFactors"`
}

func (pr propertyRequest) toDomain() domain.Property {
	return domain.Property{
		Title:       pr.Title,
		Address:     pr.Address,
		Price:       pr.Price,
		Size:        pr.Size,
		Rooms:       pr.Rooms,
		Bathrooms:   pr.Bathrooms,
		Description: pr.Description,
		Images:      pr.Images,
		LandlordID:  pr.LandlordID,
		RiskLevel:   pr.RiskLevel,
		RiskFactors: pr.RiskFactors,
	}
}

func (h *Handlers) addProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	p, err := h.C.AddProperty(r.Context(), req.toDomain())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	p, err := h.C.UpdateProperty(r.Context(), chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reviewRequest struct {
	Rating  int      `json:"rating"`
	Content string   `json:"content"`
	Pros    string   `json:"pros"`
	Cons    string   `json:"cons"`
	Images  []string `json:"images"`
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	// minimum-length rule lives at this boundary, not in the core
	if len(strings.TrimSpace(req.Content)) < 10 {
		writeProblem(w, http.StatusBadRequest, "Invalid Review", "content must be at least 10 characters")
		return
	}

	u, _ := sessionUser(r)
	rv, err := h.C.AddReview(r.Context(), domain.Review{
		PropertyID: chi.URLParam(r, "id"),
		UserID:     u.ID,
		UserName:   u.DisplayName,
		Rating:     req.Rating,
		Content:    req.Content,
		Pros:       req.Pros,
		Cons:       req.Cons,
		Images:     req.Images,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) markHelpful(w http.ResponseWriter, r *http.Request) {
	rv, err := h.C.MarkReviewHelpful(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) reportReview(w http.ResponseWriter, r *http.Request) {
	rv, err := h.C.ReportReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

// ---- session endpoints ----

type sessionRequest struct {
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Session", "displayName is required")
		return
	}
	if req.Role == "" {
		req.Role = "tenant"
	}
	token, err := h.Sessions.Create(r.Context(), session.User{DisplayName: req.DisplayName, Role: req.Role})
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Session Create Failed", "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *Handlers) destroySession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(r.Context(), r.Header.Get("X-Session-Token")); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Session Destroy Failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
