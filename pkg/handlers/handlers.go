// Package handlers serves the tide schedule and live estimate over HTTP for
// serve mode.
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/calladine/tidewatch/pkg/cache"
	"github.com/calladine/tidewatch/pkg/metrics"
	"github.com/calladine/tidewatch/pkg/tidal"
	"github.com/calladine/tidewatch/pkg/timetricks"
	"github.com/calladine/tidewatch/pkg/willyweather"

	"github.com/gorilla/mux"
)

const (
	// Extrema for a published day do not change, but keep the cached page
	// for only an hour in case upstream revises its predictions.
	docCacheTTL = 1 * time.Hour
)

func Register(r *mux.Router) {
	r.Handle("/api/v1/tides", makeServeTides(willyweather.MooneeBeach))
}

// tidesResponse is the JSON shape of the tides endpoint.
type tidesResponse struct {
	Location string                `json:"location"`
	Schedule willyweather.Schedule `json:"schedule"`
	Estimate tidal.Estimate        `json:"estimate"`
}

// makeServeTides builds the handler for the tides endpoint. The fetched page
// is cached per calendar day; the estimate is recomputed on every request
// since it depends on the current instant.
func makeServeTides(loc willyweather.Location) http.Handler {
	docCache := cache.NewTimed(docCacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().In(loc.TZ)

		doc, ok := docCache.Get(timetricks.UniqueDay(now))
		if ok {
			metrics.CountFetch("cached")
		} else {
			fetched, err := willyweather.Fetch(loc)
			if err != nil {
				metrics.CountFetch("error")
				serveError(w, err)
				return
			}
			metrics.CountFetch("ok")
			docCache.Set(timetricks.UniqueDay(now), fetched)
			doc = fetched
		}

		sched, err := willyweather.Parse(doc, now, loc.TZ)
		if err != nil {
			serveError(w, err)
			return
		}

		est, err := tidal.At(sched, now)
		if err != nil {
			serveError(w, err)
			return
		}

		if r.FormValue("o") == "json" {
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			err := json.NewEncoder(w).Encode(tidesResponse{
				Location: loc.Name,
				Schedule: sched,
				Estimate: est,
			})
			if err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
			}
			return
		}

		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		for _, ev := range sched {
			fmt.Fprintf(w, "%s %s %.2fm\n",
				ev.Time.Format("3:04 PM"), ev.Kind, ev.Height)
		}
		if est.HasHeight {
			fmt.Fprintf(w, "now %.2fm and %s\n", est.Height, est.Trend)
		}
		if est.Next != nil {
			fmt.Fprintf(w, "next %s at %s in %s\n",
				est.Next.Kind,
				est.Next.Time.Format("3:04 PM"),
				est.TimeToNext.Round(time.Minute))
		}
	})
}

func serveError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "Failed to get data: %+v", err)
	log.Printf("Failed to get data: %+v", err)
}
