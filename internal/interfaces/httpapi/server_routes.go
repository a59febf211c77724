package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, team TeamVerifier) {
	mux.Handle("POST /v1/bids/{playerID}", RequireTeamToken(team, http.HandlerFunc(handler.SubmitBid)))
}

func registerSharedRoutes(mux *http.ServeMux, handler *Handler, admin AdminVerifier, team TeamVerifier) {
	mux.Handle("GET /v1/deadline", RequireAuthenticated(admin, team, http.HandlerFunc(handler.GetDeadline)))
	mux.Handle("GET /v1/bids/latest", RequireAuthenticated(admin, team, http.HandlerFunc(handler.LatestBids)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, admin AdminVerifier) {
	mux.Handle("POST /v1/players", RequireAdmin(admin, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/players/batch", RequireAdmin(admin, http.HandlerFunc(handler.BatchUpsertPlayers)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAdmin(admin, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}/unlock", RequireAdmin(admin, http.HandlerFunc(handler.UnlockPlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAdmin(admin, http.HandlerFunc(handler.DeletePlayer)))
	mux.Handle("GET /v1/bids/{playerID}/history", RequireAdmin(admin, http.HandlerFunc(handler.ListBidHistory)))
	mux.Handle("PUT /v1/deadline", RequireAdmin(admin, http.HandlerFunc(handler.SetDeadline)))
	mux.Handle("GET /v1/export/csv", RequireAdmin(admin, http.HandlerFunc(handler.ExportCSV)))
	mux.Handle("POST /v1/team-tokens", RequireAdmin(admin, http.HandlerFunc(handler.IssueTeamToken)))
	mux.Handle("GET /v1/team-tokens", RequireAdmin(admin, http.HandlerFunc(handler.ListTeamTokens)))
	mux.Handle("PUT /v1/team-tokens/{tokenID}", RequireAdmin(admin, http.HandlerFunc(handler.SetTeamTokenActive)))
}
