package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"credo-tcf/internal/restriction"
	id "credo-tcf/pkg/domain"
	"credo-tcf/pkg/platform/httputil"
	"credo-tcf/pkg/requestcontext"
)

// Service defines the restriction operations the handler needs.
type Service interface {
	Get(ctx context.Context, purposeID id.PurposeID) (*restriction.PublisherRestriction, error)
	List(ctx context.Context) []restriction.Entry
	Put(ctx context.Context, purposeID id.PurposeID, r *restriction.PublisherRestriction) (bool, error)
	Delete(ctx context.Context, purposeID id.PurposeID) (*restriction.PublisherRestriction, error)
}

// Handler wires restriction endpoints to the restriction service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a restriction handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts restriction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/restrictions", h.HandleList)
	r.Get("/restrictions/{purposeID}", h.HandleGet)
	r.Put("/restrictions/{purposeID}", h.HandlePut)
	r.Delete("/restrictions/{purposeID}", h.HandleDelete)
}

// HandleList handles GET /restrictions.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromEntries(h.service.List(r.Context())))
}

// HandleGet handles GET /restrictions/{purposeID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	purposeID, ok := h.purposeID(w, r)
	if !ok {
		return
	}
	res, err := h.service.Get(r.Context(), purposeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRestriction(purposeID, res))
}

// HandlePut handles PUT /restrictions/{purposeID}.
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	purposeID, ok := h.purposeID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PutRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := req.ToRestriction()
	replaced, err := h.service.Put(ctx, purposeID, res)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to store restriction",
			"request_id", requestID,
			"purpose_id", purposeID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	httputil.WriteJSON(w, status, PutResponse{
		RestrictionResponse: FromRestriction(purposeID, res),
		Replaced:            replaced,
	})
}

// HandleDelete handles DELETE /restrictions/{purposeID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	purposeID, ok := h.purposeID(w, r)
	if !ok {
		return
	}
	removed, err := h.service.Delete(r.Context(), purposeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRestriction(purposeID, removed))
}

func (h *Handler) purposeID(w http.ResponseWriter, r *http.Request) (id.PurposeID, bool) {
	purposeID, err := id.ParsePurposeID(chi.URLParam(r, "purposeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return purposeID, true
}
