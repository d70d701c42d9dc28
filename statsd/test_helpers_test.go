package statsd

import (
	"bufio"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/require"
)

func testLogger() (*log.Entry, *memory.Handler) {
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
	return logger.WithField("context", "test"), handler
}

// testUDPServer captures every datagram sent to it. This allows end-to-end
// testing of the collector against a real socket.
type testUDPServer struct {
	conn net.PacketConn

	mu   sync.Mutex
	data []string
}

func newTestUDPServer(t *testing.T) *testUDPServer {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &testUDPServer{conn: conn}
	go s.readLoop()
	t.Cleanup(func() { conn.Close() })
	return s
}

func (s *testUDPServer) addr() string {
	return s.conn.LocalAddr().String()
}

func (s *testUDPServer) readLoop() {
	buffer := make([]byte, 65536)
	for {
		n, _, err := s.conn.ReadFrom(buffer)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.data = append(s.data, string(buffer[:n]))
		s.mu.Unlock()
	}
}

func (s *testUDPServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data))
	copy(out, s.data)
	return out
}

func (s *testUDPServer) waitFor(t *testing.T, count int) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(s.received()) >= count
	}, 2*time.Second, 10*time.Millisecond)
	return s.received()
}

// testTCPServer accepts collector connections and captures the lines written
// on them. dropConnections force-closes every live connection so tests can
// exercise the reconnect path.
type testTCPServer struct {
	listener net.Listener

	mu    sync.Mutex
	conns []net.Conn
	data  []string
}

func newTestTCPServer(t *testing.T) *testTCPServer {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &testTCPServer{listener: listener}
	go s.acceptLoop()
	t.Cleanup(func() {
		listener.Close()
		s.dropConnections()
	})
	return s
}

func (s *testTCPServer) addr() string {
	return s.listener.Addr().String()
}

func (s *testTCPServer) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.mu.Unlock()
		go s.readLoop(conn)
	}
}

func (s *testTCPServer) readLoop(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		s.mu.Lock()
		s.data = append(s.data, scanner.Text())
		s.mu.Unlock()
	}
}

func (s *testTCPServer) dropConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		conn.Close()
	}
	s.conns = nil
}

func (s *testTCPServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.data))
	copy(out, s.data)
	return out
}

func (s *testTCPServer) waitFor(t *testing.T, count int) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(s.received()) >= count
	}, 2*time.Second, 10*time.Millisecond)
	return s.received()
}
