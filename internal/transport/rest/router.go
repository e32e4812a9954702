package rest

import "net/http"

// NewRouter wires all REST routes onto a ServeMux. The more specific
// /foodtrucks subtrees (name, items, location) are registered before the
// {id} pattern matches them.
func NewRouter(trucks *TruckHandler, auth *AuthHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", trucks.Meta)

	mux.HandleFunc("GET /foodtrucks", trucks.List)
	mux.HandleFunc("GET /foodtrucks/name/{needle}", trucks.SearchByName)
	mux.HandleFunc("GET /foodtrucks/items/{needle}", trucks.SearchByItems)
	mux.HandleFunc("GET /foodtrucks/location", trucks.SearchByLocation)
	mux.HandleFunc("GET /foodtrucks/{id}", trucks.Get)
	mux.HandleFunc("POST /foodtrucks", trucks.Create)
	mux.HandleFunc("PUT /foodtrucks/{id}", trucks.Upsert)
	mux.HandleFunc("DELETE /foodtrucks/{id}", trucks.Delete)

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
