package flood

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mixmetrics/mixmetrics-go/flooder/pkg/flood"
)

// floodCmd represents the base command when called without any subcommands
var floodCmd = &cobra.Command{
	Use:   "flood",
	Short: "Sends a lot of metric points to statsd and influxdb.",
	RunE:  flood.Flood,
}

// Execute runs the root command. This is called by main.main() and only
// needs to happen once.
func Execute() {
	if err := floodCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	floodCmd.Flags().StringP("config", "c", "", "Path to a yaml config file")
	floodCmd.Flags().StringP("statsd-address", "", "127.0.0.1:8125", "Address of the statsd server")
	floodCmd.Flags().StringP("statsd-protocol", "", "udp", "Statsd transport protocol (udp or tcp)")
	floodCmd.Flags().StringP("influx-url", "", "http://127.0.0.1:8086/write", "InfluxDB write endpoint")
	floodCmd.Flags().IntP("points-per-second", "", 1000, "Points sent per second")
	floodCmd.Flags().DurationP("duration", "", 10*time.Second, "How long to flood")
}
