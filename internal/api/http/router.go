package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterPublicRoutes(r)

	protected := r.NewRoute().Subrouter()
	protected.Use(AuthMiddleware)
	handler.RegisterProtectedRoutes(protected)

	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("BiteChoice API starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
