/*
Package mixmetrics hosts the metric transport packages used to report
request metrics from a web application to StatsD or InfluxDB.

The statsd package delivers one wire line per metric over UDP or TCP:

	client, err := statsd.New("127.0.0.1:8125",
	    statsd.WithNamespace("myservice"),
	)
	if err != nil {
	    log.Fatal(err)
	}
	client.Incr(1, "signups")
	client.Timing(42*time.Millisecond, "db", "query")
	client.Close()

The influxdb package batches line-protocol measurements and posts them to an
InfluxDB write endpoint on a timer:

	collector, err := influxdb.New(
	    influxdb.WithWriteURL("http://localhost:8086/write"),
	    influxdb.WithDatabase("myservice"),
	)

The metrics package is the surface application code records against: a
Recorder per unit of work, minted by a Provider bound to one of the two
transports. See the example directory for end-to-end usage.
*/
package mixmetrics
