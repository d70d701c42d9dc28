//go:build !windows
// +build !windows

package statsd

import "errors"

func newPipeWriter(_ string) (writer, error) {
	return nil, errors.New("named pipes are only supported on Windows")
}
