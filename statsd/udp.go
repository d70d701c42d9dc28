package statsd

import "net"

// udpWriter sends each metric line as one datagram. There is no connection
// state to manage and no delivery guarantee to wait for.
type udpWriter struct {
	conn net.PacketConn
	addr *net.UDPAddr
}

func newUDPWriter(addr string) (*udpWriter, error) {
	dst, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenPacket("udp", ":0")
	if err != nil {
		return nil, err
	}
	return &udpWriter{conn: conn, addr: dst}, nil
}

func (w *udpWriter) Write(data []byte) (int, error) {
	return w.conn.WriteTo(data, w.addr)
}

func (w *udpWriter) Close() error {
	return w.conn.Close()
}
