package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/tastebook/config"
	"github.com/ray-remotestate/tastebook/handlers"
	"github.com/ray-remotestate/tastebook/middlewares"
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

func SetupRoutes() *Server {
	router := mux.NewRouter()
	admin := middlewares.AdminOnly

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods(http.MethodGet)

	router.HandleFunc("/", handlers.Home).Methods(http.MethodGet)
	router.HandleFunc("/", handlers.SetupAdmin).Methods(http.MethodPost)
	router.HandleFunc("/login", handlers.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", handlers.Logout).Methods(http.MethodGet)

	router.HandleFunc("/restaurants", handlers.ListRestaurants).Methods(http.MethodGet)
	router.HandleFunc("/restaurant/{id}", handlers.RestaurantInfo).Methods(http.MethodGet)

	// mutating routes sit behind the admin guard
	router.Handle("/restaurant/{id}", admin(http.HandlerFunc(handlers.AddNote))).Methods(http.MethodPost)
	router.Handle("/add", admin(http.HandlerFunc(handlers.AddRestaurant))).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/edit/{id}", admin(http.HandlerFunc(handlers.EditRestaurant))).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/confirm-delete/{id}", admin(http.HandlerFunc(handlers.ConfirmDeleteRestaurant))).Methods(http.MethodGet)
	router.Handle("/delete/{id}", admin(http.HandlerFunc(handlers.DeleteRestaurant))).Methods(http.MethodGet)
	router.Handle("/edit_notes/{restaurant_id}/{note_id}", admin(http.HandlerFunc(handlers.EditNote))).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/delete_note/{restaurant_id}/{note_id}", admin(http.HandlerFunc(handlers.DeleteNote))).Methods(http.MethodGet)

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	protect := csrf.Protect(config.SessionSecret,
		csrf.FieldName("csrf_token"),
		csrf.Secure(false),
	)
	svr.server = &http.Server{
		Addr:              port,
		Handler:           protect(svr.Router),
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
