package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"minitwit/internal/core"
	"minitwit/internal/http/handler/middleware"
	"minitwit/internal/http/payload"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SimHandler struct {
	logs    *zap.SugaredLogger
	decoder RequestDecoder
	sim     SimulatorService
}

func NewSimHandler(logger *zap.SugaredLogger, decoder RequestDecoder, simulator SimulatorService) *SimHandler {
	return &SimHandler{
		logs:    logger,
		decoder: decoder,
		sim:     simulator,
	}
}

// Routes registers the simulator API on r.
func (h *SimHandler) Routes(r *mux.Router) {
	r.HandleFunc(PathRegister, h.HandleRegister).Methods(http.MethodPost)
	r.HandleFunc(PathLogin, h.HandleLogin).Methods(http.MethodPost)
	r.HandleFunc(PathFollows, h.HandleFollow).Methods(http.MethodPost)
	r.HandleFunc(PathFollows, h.HandleGetFollows).Methods(http.MethodGet)
	r.HandleFunc(PathMessages, h.HandleGetMessages).Methods(http.MethodGet)
	r.HandleFunc(PathUserMessages, h.HandleAddMessage).Methods(http.MethodPost)
	r.HandleFunc(PathUserMessages, h.HandleGetUserMessages).Methods(http.MethodGet)
	r.HandleFunc(PathLatest, h.HandleGetLatest).Methods(http.MethodGet)
}

func (h *SimHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	latest := latestFrom(r)

	var req payload.RegisterRequest
	if err := h.decoder.DecodeJSONPayload(r, &req); err != nil {
		h.sim.UpdateLatest(r.Context(), latest)
		h.badPayload(w, err, PathRegister, requestId)
		return
	}

	res := h.sim.RegisterUser(r.Context(), req.ToMessage(), latest)
	h.logResult(res, PathRegister, requestId, "username", req.Username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.LoginRequest
	if err := h.decoder.DecodeJSONPayload(r, &req); err != nil {
		h.badPayload(w, err, PathLogin, requestId)
		return
	}

	res := h.sim.Login(r.Context(), req.ToMessage())
	h.logResult(res, PathLogin, requestId, "username", req.Username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	latest := latestFrom(r)
	username := mux.Vars(r)[usernameVar]

	var req payload.FollowRequest
	if err := h.decoder.DecodeJSONPayload(r, &req); err != nil {
		h.sim.UpdateLatest(r.Context(), latest)
		h.badPayload(w, err, PathFollows, requestId)
		return
	}

	res := h.sim.AddFollower(r.Context(), username, req.ToMessage(), latest)
	h.logResult(res, PathFollows, requestId, "username", username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleGetFollows(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	h.sim.UpdateLatest(r.Context(), latestFrom(r))
	username := mux.Vars(r)[usernameVar]

	res := h.sim.GetFollows(r.Context(), username, noFrom(r))
	h.logResult(res, PathFollows, requestId, "username", username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleAddMessage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	latest := latestFrom(r)
	username := mux.Vars(r)[usernameVar]

	var req payload.MessageRequest
	if err := h.decoder.DecodeJSONPayload(r, &req); err != nil {
		h.sim.UpdateLatest(r.Context(), latest)
		h.badPayload(w, err, PathUserMessages, requestId)
		return
	}

	res := h.sim.AddMessage(r.Context(), username, req.ToMessage(), latest)
	h.logResult(res, PathUserMessages, requestId, "username", username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	h.sim.UpdateLatest(r.Context(), latestFrom(r))

	res := h.sim.GetMessages(r.Context(), noFrom(r))
	h.logResult(res, PathMessages, requestId)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleGetUserMessages(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	h.sim.UpdateLatest(r.Context(), latestFrom(r))
	username := mux.Vars(r)[usernameVar]

	res := h.sim.GetUserMessages(r.Context(), username, noFrom(r))
	h.logResult(res, PathUserMessages, requestId, "username", username)
	h.respond(w, res, requestId)
}

func (h *SimHandler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	res := h.sim.GetLatest(r.Context())
	h.respond(w, res, requestId)
}

func (h *SimHandler) badPayload(w http.ResponseWriter, err error, handler, requestId string) {
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
	h.respond(w, core.BadRequest(err.Error()), requestId)
}

func (h *SimHandler) logResult(res core.Result, handler, requestId string, keysAndValues ...any) {
	fields := append([]any{"handler", handler, "request_id", requestId, "status", res.StatusCode}, keysAndValues...)
	if res.Error != nil {
		h.logs.Errorw("request failed", append(fields, "error", res.Error.Message)...)
		return
	}
	h.logs.Infow("request succeeded", fields...)
}

// respond writes res as JSON. NoContent results are written without a body.
func (h *SimHandler) respond(w http.ResponseWriter, res core.Result, requestId string) {
	if res.Kind == core.KindNoContent {
		w.WriteHeader(res.StatusCode)
		return
	}

	var body any = res.Body
	if res.Error != nil {
		body = res.Error
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(encoded); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

// latestFrom parses ?latest=N; a missing or malformed value yields core.NoLatest.
func latestFrom(r *http.Request) int {
	latest, err := strconv.Atoi(r.URL.Query().Get(latestParam))
	if err != nil {
		return core.NoLatest
	}
	return latest
}

// noFrom parses ?no=N; zero lets the simulator apply its default limit.
func noFrom(r *http.Request) int {
	no, err := strconv.Atoi(r.URL.Query().Get(noParam))
	if err != nil || no < 0 {
		return 0
	}
	return no
}
