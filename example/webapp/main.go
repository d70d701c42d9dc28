// A minimal web application reporting one measurement per request to
// InfluxDB through the metrics package.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mixmetrics/mixmetrics-go/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// withMetrics finishes one recorder per request, whatever the handler does.
func withMetrics(provider metrics.Provider, name string, next func(metrics.Recorder, http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := provider.NewRecorder(name, r.Method)
		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			recorder.Finish(sw.status)
		}()
		next(recorder, sw, r)
	}
}

func listUsers(rec metrics.Recorder, w http.ResponseWriter, r *http.Request) {
	defer rec.StartTimer("db", "select").Stop()
	rec.SetMetricTag("tenant", r.URL.Query().Get("tenant"))
	rec.IncreaseCounter("db", "rows")

	time.Sleep(10 * time.Millisecond) // pretend to query
	w.Write([]byte("[]\n"))
}

func main() {
	registry := metrics.NewRegistry()
	if _, err := metrics.InstallInfluxFromEnv(registry, "webapp"); err != nil {
		log.Fatal(err)
	}
	provider, _ := registry.Lookup(metrics.InfluxProviderName)

	http.Handle("/users", withMetrics(provider, "UserHandler", listUsers))

	server := &http.Server{Addr: ":8000"}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Shutdown(ctx)
	if err := registry.ShutdownAll(ctx); err != nil {
		log.Printf("metrics shutdown: %v", err)
	}
}
