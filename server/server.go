package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/chopexpress/chopexpress/handlers"
	"github.com/chopexpress/chopexpress/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(h *handlers.Handler) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.RequestID, middlewares.RequestLogger)

	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/webhook", h.VerifyWebhook).Methods("GET")
	router.HandleFunc("/webhook", h.ReceiveWebhook).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/restaurants", h.ListRestaurants).Methods("GET")
	api.HandleFunc("/restaurants", h.CreateRestaurant).Methods("POST")
	api.HandleFunc("/restaurants/{id}", h.GetRestaurant).Methods("GET")
	api.HandleFunc("/restaurants/{id}", h.UpdateRestaurant).Methods("PUT")
	api.HandleFunc("/restaurants/{id}", h.DeleteRestaurant).Methods("DELETE")

	api.HandleFunc("/restaurants/{id}/menu-items", h.ListMenuItems).Methods("GET")
	api.HandleFunc("/restaurants/{id}/menu-items", h.CreateMenuItem).Methods("POST")
	api.HandleFunc("/menu-items/{id}", h.GetMenuItem).Methods("GET")
	api.HandleFunc("/menu-items/{id}", h.UpdateMenuItem).Methods("PUT")
	api.HandleFunc("/menu-items/{id}", h.DeleteMenuItem).Methods("DELETE")

	api.HandleFunc("/users", h.ListUsers).Methods("GET")
	api.HandleFunc("/users", h.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id}", h.GetUser).Methods("GET")

	api.HandleFunc("/orders", h.ListOrders).Methods("GET")
	api.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", h.UpdateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}", h.CancelOrder).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(addr string) error {
	svr.server = &http.Server{
		Addr:              addr,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
