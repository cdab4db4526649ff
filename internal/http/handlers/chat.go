package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/middleware"
	"araucarias-admin-service/internal/reporting"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/pkg/response"
)

const chatHistoryLimit = 20

type chatRequest struct {
	SessionID *int64 `json:"sessionId"`
	Message   string `json:"message"`
	Days      int    `json:"days"`
}

// Chat runs one turn of the business assistant. The reply is grounded on
// a sales summary of the last N days, the session transcript is persisted
// server side, and report offers are detected from the exchange.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization required")
		return
	}

	if !h.Assistant.Enabled() {
		response.Error(w, http.StatusServiceUnavailable, "ASSISTANT_DISABLED", "Chat assistant is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}
	days := req.Days
	if days <= 0 || days > 365 {
		days = h.Config.ReportDefaultDays
	}

	session, err := h.resolveSession(r, req.SessionID, authCtx.UserID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			response.Error(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
			return
		}
		h.Logger.Error("chat session resolve failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat failed")
		return
	}

	history, err := h.Store.ChatMessages(ctx, session.ID, chatHistoryLimit)
	if err != nil {
		h.Logger.Error("chat history load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat failed")
		return
	}

	summary, err := h.businessSummary(r, days)
	if err != nil {
		h.Logger.Error("chat summary load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat failed")
		return
	}

	reply, err := h.Assistant.Reply(ctx, summary, history, req.Message)
	if err != nil {
		h.Logger.Error("assistant reply failed", zapError(err))
		response.Error(w, http.StatusBadGateway, "ASSISTANT_ERROR", "Chat assistant is unavailable")
		return
	}

	detection := chat.DetectReportRequest(req.Message, reply)
	var reportType *string
	if detection.HasReport {
		v := string(detection.ReportType)
		reportType = &v
	}

	if _, err := h.Store.AppendChatMessage(ctx, session.ID, "user", req.Message, false, nil); err != nil {
		h.Logger.Error("chat persist user turn failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat failed")
		return
	}
	if _, err := h.Store.AppendChatMessage(ctx, session.ID, "assistant", reply, detection.HasReport, reportType); err != nil {
		h.Logger.Error("chat persist assistant turn failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat failed")
		return
	}

	response.Success(w, map[string]any{
		"sessionId":  session.ID,
		"response":   reply,
		"hasReport":  detection.HasReport,
		"reportType": detection.ReportType,
		"segments":   chat.FormatMessage(reply),
	})
}

// ChatSessionMessages returns the persisted transcript of one session.
func (h *Handler) ChatSessionMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization required")
		return
	}

	sessionID, err := strconv.ParseInt(readPathString(r, "sessionId"), 10, 64)
	if err != nil || sessionID <= 0 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session id")
		return
	}

	session, err := h.Store.ChatSessionForUser(ctx, sessionID, authCtx.UserID)
	if errors.Is(err, store.ErrSessionNotFound) {
		response.Error(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		return
	}
	if err != nil {
		h.Logger.Error("chat session load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load chat session")
		return
	}

	messages, err := h.Store.ChatMessages(ctx, session.ID, 200)
	if err != nil {
		h.Logger.Error("chat messages load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load chat session")
		return
	}

	response.Success(w, map[string]any{
		"session":  session,
		"messages": messages,
	})
}

// ChatSessionClear wipes a session's transcript. The session row stays so
// the client can keep chatting under the same id.
func (h *Handler) ChatSessionClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization required")
		return
	}

	sessionID, err := strconv.ParseInt(readPathString(r, "sessionId"), 10, 64)
	if err != nil || sessionID <= 0 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session id")
		return
	}

	session, err := h.Store.ChatSessionForUser(ctx, sessionID, authCtx.UserID)
	if errors.Is(err, store.ErrSessionNotFound) {
		response.Error(w, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		return
	}
	if err != nil {
		h.Logger.Error("chat session load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not clear chat session")
		return
	}

	if err := h.Store.ClearChatSession(ctx, session.ID); err != nil {
		h.Logger.Error("chat session clear failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not clear chat session")
		return
	}

	response.Success(w, map[string]any{"sessionId": session.ID, "cleared": true})
}

func (h *Handler) resolveSession(r *http.Request, sessionID *int64, userID int64) (*store.ChatSession, error) {
	if sessionID == nil {
		return h.Store.CreateChatSession(r.Context(), userID)
	}
	return h.Store.ChatSessionForUser(r.Context(), *sessionID, userID)
}

// businessSummary loads both channels' delivered orders over the last N
// days and condenses them for the assistant and the report builders.
func (h *Handler) businessSummary(r *http.Request, days int) (reporting.BusinessSummary, error) {
	ctx := r.Context()
	window := reporting.DaysWindow(time.Now().In(h.Config.Location()), days)

	quiosco, err := h.Store.DeliveredInStoreOrders(ctx, window.Start, window.End)
	if err != nil {
		return reporting.BusinessSummary{}, err
	}
	delivery, err := h.Store.DeliveredDeliveryOrders(ctx, window.Start, window.End)
	if err != nil {
		return reporting.BusinessSummary{}, err
	}

	return reporting.BuildBusinessSummary(quiosco, delivery, days, 5, h.Config.Location()), nil
}
