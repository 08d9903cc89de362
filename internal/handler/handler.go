// Package handler exposes the engine over HTTP.
package handler

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"clientbook/internal/engine"
	"clientbook/internal/lib/sl"
	"clientbook/internal/metrics"
	"clientbook/internal/model"
)

type Handler struct {
	ctx     context.Context
	engine  *engine.Engine
	metrics fasthttp.RequestHandler
	log     *slog.Logger
}

// ClientsResponse is the body of GET /clients.
type ClientsResponse struct {
	Clients []string `json:"clients"`
	Total   int      `json:"total"`
}

// New wires the routes. ctx bounds every command run; cancel it on shutdown.
func New(ctx context.Context, e *engine.Engine, rec *metrics.Recorder, log *slog.Logger) *Handler {
	if log == nil {
		log = sl.Discard()
	}
	h := &Handler{ctx: ctx, engine: e, log: log}
	if rec != nil {
		h.metrics = fasthttpadaptor.NewFastHTTPHandler(rec.Handler())
	}
	return h
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/commands":
		h.handleCommands(ctx)
	case "/clients":
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		h.handleClients(ctx)
	case "/metrics":
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		if h.metrics == nil {
			writeError(ctx, fasthttp.StatusNotFound, "Metrics are disabled")
			return
		}
		h.metrics(ctx)
	case "/healthz":
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCommands(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodPost) {
		return
	}

	var req model.Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Commands) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one command is required")
		return
	}

	resp := h.engine.Run(h.ctx, &req)
	h.log.Debug("commands handled",
		slog.String("run_id", resp.Metadata.RunID),
		slog.String("remote", ctx.RemoteIP().String()))
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleClients(ctx *fasthttp.RequestCtx) {
	lines := h.engine.ClientLines()
	writeJSON(ctx, fasthttp.StatusOK, ClientsResponse{Clients: lines, Total: h.engine.ClientCount()})
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
