package influxdb

import (
	"errors"
	"net/http"
	"time"

	"github.com/apex/log"
)

var (
	// DefaultWriteURL is the default value for the WriteURL option.
	DefaultWriteURL = "http://localhost:8086/write"
	// DefaultDatabase is the default value for the Database option.
	DefaultDatabase = "metrics"
	// DefaultSubmissionInterval is the default value for the SubmissionInterval option.
	DefaultSubmissionInterval = 5 * time.Second
	// DefaultMaxBatchSize is the default value for the MaxBatchSize option.
	DefaultMaxBatchSize = 1000
	// DefaultHighWaterMark is the default value for the HighWaterMark option.
	DefaultHighWaterMark = 25000
)

// Options contains the configuration options for a collector.
type Options struct {
	// WriteURL is the write endpoint, without the db query argument.
	WriteURL string
	// Database is the database every batch is written to.
	Database string
	// SubmissionInterval is the period of the background flush.
	SubmissionInterval time.Duration
	// MaxBatchSize is the largest number of lines sent in one POST; reaching
	// it also triggers an immediate flush.
	MaxBatchSize int
	// HighWaterMark is the buffer size above which a warning is logged.
	HighWaterMark int
	// AuthUsername and AuthPassword are attached as basic auth to every
	// outgoing request when AuthUsername is non-empty.
	AuthUsername string
	AuthPassword string
	// HTTPClient performs the batch requests.
	HTTPClient *http.Client
	// Logger receives backpressure warnings and dropped-batch errors.
	Logger *log.Entry
}

func resolveOptions(options []Option) (*Options, error) {
	o := &Options{
		WriteURL:           DefaultWriteURL,
		Database:           DefaultDatabase,
		SubmissionInterval: DefaultSubmissionInterval,
		MaxBatchSize:       DefaultMaxBatchSize,
		HighWaterMark:      DefaultHighWaterMark,
	}

	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}

	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.Logger == nil {
		o.Logger = log.WithField("context", "influxdb")
	}

	return o, nil
}

// Option is a collector option. Can return an error if validation fails.
type Option func(*Options) error

// WithWriteURL sets the WriteURL option.
func WithWriteURL(writeURL string) Option {
	return func(o *Options) error {
		if writeURL == "" {
			return errors.New("write URL cannot be empty")
		}
		o.WriteURL = writeURL
		return nil
	}
}

// WithDatabase sets the Database option.
func WithDatabase(database string) Option {
	return func(o *Options) error {
		o.Database = database
		return nil
	}
}

// WithSubmissionInterval sets the SubmissionInterval option.
func WithSubmissionInterval(interval time.Duration) Option {
	return func(o *Options) error {
		if interval <= 0 {
			return errors.New("submission interval must be positive")
		}
		o.SubmissionInterval = interval
		return nil
	}
}

// WithMaxBatchSize sets the MaxBatchSize option.
func WithMaxBatchSize(size int) Option {
	return func(o *Options) error {
		if size <= 0 {
			return errors.New("max batch size must be positive")
		}
		o.MaxBatchSize = size
		return nil
	}
}

// WithHighWaterMark sets the HighWaterMark option.
func WithHighWaterMark(mark int) Option {
	return func(o *Options) error {
		o.HighWaterMark = mark
		return nil
	}
}

// WithBasicAuth sets the AuthUsername and AuthPassword options.
func WithBasicAuth(username, password string) Option {
	return func(o *Options) error {
		o.AuthUsername = username
		o.AuthPassword = password
		return nil
	}
}

// WithHTTPClient sets the HTTPClient option.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) error {
		o.HTTPClient = client
		return nil
	}
}

// WithLogger sets the Logger option.
func WithLogger(logger *log.Entry) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}
