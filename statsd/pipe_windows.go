//go:build windows
// +build windows

package statsd

import (
	"net"

	"github.com/Microsoft/go-winio"
)

// pipeWriter sends metric lines over a Windows named pipe.
type pipeWriter struct{ net.Conn }

func newPipeWriter(pipepath string) (writer, error) {
	conn, err := winio.DialPipe(pipepath, nil)
	if err != nil {
		return nil, err
	}
	return &pipeWriter{conn}, nil
}
