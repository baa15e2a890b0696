package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chopexpress/chopexpress/bot"
	"github.com/chopexpress/chopexpress/database/dbhelper"
	"github.com/chopexpress/chopexpress/utils"
)

const serviceVersion = "1.0.0"

var validate = validator.New()

// Handler bundles the injected dependencies every endpoint needs: the store,
// the bot processor and the webhook verify token. Store is nil when no
// backing store is configured; data endpoints then answer 503.
type Handler struct {
	Store       *dbhelper.Store
	Bot         *bot.Processor
	VerifyToken string
	Environment string
}

func New(store *dbhelper.Store, processor *bot.Processor, verifyToken, environment string) *Handler {
	return &Handler{
		Store:       store,
		Bot:         processor,
		VerifyToken: verifyToken,
		Environment: environment,
	}
}

// requireStore guards data endpoints; reports false after writing a 503 when
// the backing store is not configured.
func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.Store == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "database not configured")
		return false
	}
	return true
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "ChopExpress API - commandes et livraisons via WhatsApp",
		"version":   serviceVersion,
		"status":    "active",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "unconfigured"
	if h.Store != nil {
		dbStatus = "ok"
		if err := h.Store.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"service":     "ChopExpress Backend",
		"version":     serviceVersion,
		"environment": h.Environment,
		"database":    dbStatus,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
