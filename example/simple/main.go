package main

import (
	"log"
	"time"

	"github.com/mixmetrics/mixmetrics-go/statsd"
)

func main() {
	client, err := statsd.New("127.0.0.1:8125",
		statsd.WithNamespace("myservice"),
	)
	if err != nil {
		log.Fatal(err)
	}

	client.Incr(1, "signups")
	client.Timing(42*time.Millisecond, "db", "query")

	client.Close()
}
