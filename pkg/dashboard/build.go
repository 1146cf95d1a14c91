package dashboard

import (
	"personalityPairing/pkg/help"
	"personalityPairing/pkg/msg"
)

func BuildRouter(rec Recommender, summaries Summarizer) *msg.Router {
	profilesHandler := &ProfilesHandler{}
	recommendHandler := NewRecommendHandler(rec)
	statsHandler := NewStatsHandler(summaries)

	helpHandler := &help.Handler{
		Providers: []help.Provider{
			profilesHandler,
			recommendHandler,
			statsHandler,
		},
	}

	return &msg.Router{
		Handlers: []msg.Handler{
			&StartHandler{},
			helpHandler,
			profilesHandler,
			statsHandler,
			recommendHandler,
		},
	}
}
