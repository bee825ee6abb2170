package cmd

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/calladine/tidewatch/pkg/handlers"
	"github.com/calladine/tidewatch/pkg/metrics"
)

type serveConfig struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tide schedule and live estimate over HTTP",
	Long: `Runs a small HTTP server exposing the day's tide schedule and the
current estimate at /api/v1/tides (plain text, or JSON with ?o=json), with
request metrics at /metrics. Configured with TIDEWATCH_PORT and
TIDEWATCH_PREFIX.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var env serveConfig
		if err := envconfig.Process("tidewatch", &env); err != nil {
			return err
		}

		r := mux.NewRouter().StrictSlash(true)
		r.Use(metrics.LatencyHandler)
		s := r.PathPrefix(env.Prefix).Subrouter()
		handlers.Register(s)
		s.Handle("/metrics", promhttp.Handler())

		srv := &http.Server{
			Handler:      r,
			Addr:         "0.0.0.0:" + env.Port,
			WriteTimeout: 15 * time.Second,
			ReadTimeout:  15 * time.Second,
		}
		log.Printf("Listening and serving on %s", srv.Addr)
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
