package statsd

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/apex/log"
)

// errNotConnected reports a line dropped because the stream is down. Dropping
// instead of queueing bounds memory during a sustained outage.
var errNotConnected = errors.New("statsd connection is down, line dropped")

type connState int

const (
	stateConnected connState = iota
	stateDisconnected
	stateClosed
)

// tcpWriter maintains a persistent stream to the statsd server. Lines are
// newline-terminated. When the stream drops unexpectedly the writer redials
// in the background after reconnectWait; writes in the meantime fail with
// errNotConnected. Close is terminal, no further redial happens.
type tcpWriter struct {
	addr          string
	reconnectWait time.Duration
	writeTimeout  time.Duration
	log           *log.Entry

	mu    sync.Mutex
	conn  net.Conn
	state connState
}

func newTCPWriter(addr string, reconnectWait, writeTimeout time.Duration, logger *log.Entry) *tcpWriter {
	w := &tcpWriter{
		addr:          addr,
		reconnectWait: reconnectWait,
		writeTimeout:  writeTimeout,
		log:           logger,
		state:         stateDisconnected,
	}
	if err := w.dial(); err != nil {
		w.log.WithError(err).Warn("statsd connection failed, will retry")
		go w.reconnectLoop()
	}
	return w
}

// dial attempts one connection and installs it unless the writer has been
// closed in the meantime.
func (w *tcpWriter) dial() error {
	conn, err := net.Dial("tcp", w.addr)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != stateDisconnected {
		// closed, or another redial won the race
		conn.Close()
		return nil
	}
	w.conn = conn
	w.state = stateConnected
	return nil
}

func (w *tcpWriter) reconnectLoop() {
	for {
		time.Sleep(w.reconnectWait)

		w.mu.Lock()
		state := w.state
		w.mu.Unlock()
		if state != stateDisconnected {
			return
		}

		if err := w.dial(); err != nil {
			w.log.WithError(err).Warn("statsd reconnect failed, will retry")
			continue
		}
		w.log.Info("statsd connection re-established")
		return
	}
}

func (w *tcpWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != stateConnected {
		return 0, errNotConnected
	}

	if w.writeTimeout > 0 {
		w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}
	n, err := w.conn.Write(append(data, '\n'))
	if err != nil {
		w.conn.Close()
		w.conn = nil
		w.state = stateDisconnected
		go w.reconnectLoop()
	}
	return n, err
}

func (w *tcpWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == stateClosed {
		return nil
	}
	state := w.state
	w.state = stateClosed
	if state == stateConnected {
		err := w.conn.Close()
		w.conn = nil
		return err
	}
	return nil
}
