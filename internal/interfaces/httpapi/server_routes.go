package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{team}/roster", handler.GetRoster)

	mux.HandleFunc("GET /v1/daily", handler.GetDaily)
	mux.HandleFunc("POST /v1/daily/complete", handler.CompleteDaily)
	mux.HandleFunc("GET /v1/stats", handler.GetStats)

	mux.HandleFunc("POST /v1/practice", handler.StartPractice)
	mux.HandleFunc("POST /v1/score", handler.ScoreBatch)
	mux.HandleFunc("POST /v1/lineups/score", handler.ScoreLineup)

	mux.HandleFunc("POST /v1/sessions", handler.StartSession)
	mux.HandleFunc("GET /v1/sessions/{session}", handler.GetSession)
	mux.HandleFunc("DELETE /v1/sessions/{session}", handler.StopSession)

	mux.HandleFunc("GET /v1/progression", handler.GetProgression)
	mux.HandleFunc("PUT /v1/progression/favorite", handler.SetFavorite)
	mux.HandleFunc("POST /v1/progression/{team}/phase", handler.StartPhase)
	mux.HandleFunc("POST /v1/progression/{team}/phase/result", handler.SubmitPhaseResult)
	mux.HandleFunc("POST /v1/progression/{team}/tandem", handler.PlaceGoalie)
}
