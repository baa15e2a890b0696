package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/models"
	"github.com/chopexpress/chopexpress/utils"
)

// VerifyWebhook answers the WhatsApp subscription handshake: echo the
// challenge when the mode and token match, 403 otherwise.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.VerifyToken {
		logrus.Info("webhook verified")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, challenge)
		return
	}

	logrus.WithField("mode", mode).Error("webhook verification failed")
	utils.RespondError(w, http.StatusForbidden, "Forbidden")
}

// ReceiveWebhook accepts event payloads and fans out every "messages" change
// to the bot. Processing errors are logged and swallowed so the webhook is
// always acknowledged; only an unreadable body fails the request.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	var payload models.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logrus.WithError(err).Error("failed to decode webhook payload")
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Internal Server Error",
		})
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			if err := h.Bot.ProcessValue(change.Value); err != nil {
				logrus.WithError(err).Error("webhook message processing failed")
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
