package main

import (
	flood "github.com/mixmetrics/mixmetrics-go/flooder/cmd/flood"
)

func main() {
	flood.Execute()
}
