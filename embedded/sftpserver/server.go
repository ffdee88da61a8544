package sftpserver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

var (
	ErrUnauthorized  = fmt.Errorf("public key is not authorized")
	ErrWrongPassword = fmt.Errorf("password rejected")
	ErrNoAuth        = fmt.Errorf("a password or an authorized key is required")
)

type (
	// Server is an in-process SFTP server for tests.
	//
	// Server is constructed and started by 'Start' and serves until 'Stop' is called.
	Server struct {
		config   *ssh.ServerConfig
		listener net.Listener
		hostKey  ssh.Signer

		username       string
		password       string
		authorizedKeys []ssh.PublicKey

		address      string
		root         string
		ownsRoot     bool
		hostKeyAlg   KeyAlgorithm
		hostKeyBits  int
		hostKeyGiven ssh.Signer

		mu       sync.Mutex
		closed   bool
		conns    map[net.Conn]struct{}
		accepted int
		logins   int
		wg       sync.WaitGroup
	}

	// Option configures a Server before it starts.
	Option func(*Server)
)

// WithPassword accepts username with password.
func WithPassword(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

// WithAuthorizedKey accepts username presenting any of keys.
func WithAuthorizedKey(username string, keys ...ssh.PublicKey) Option {
	return func(s *Server) {
		s.username = username
		s.authorizedKeys = append(s.authorizedKeys, keys...)
	}
}

// WithHostKeyAlgorithm picks the generated host key. The default is a 2048 bit RSA key.
func WithHostKeyAlgorithm(alg KeyAlgorithm, bits int) Option {
	return func(s *Server) {
		s.hostKeyAlg = alg
		s.hostKeyBits = bits
	}
}

// WithHostKey uses signer as the host key instead of generating one.
func WithHostKey(signer ssh.Signer) Option {
	return func(s *Server) {
		s.hostKeyGiven = signer
	}
}

// WithRoot serves files from dir. Without it a temporary directory is created and removed on Stop.
func WithRoot(dir string) Option {
	return func(s *Server) {
		s.root = dir
	}
}

// WithAddress listens on address instead of 127.0.0.1:0.
func WithAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

// Start listens and begins serving in the background.
func Start(opts ...Option) (*Server, error) {
	s := &Server{
		address:    "127.0.0.1:0",
		hostKeyAlg: RSA,
		conns:      make(map[net.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.password == "" && len(s.authorizedKeys) == 0 {
		return nil, ErrNoAuth
	}

	s.hostKey = s.hostKeyGiven
	if s.hostKey == nil {
		key, err := GenerateKey(s.hostKeyAlg, s.hostKeyBits, "")
		if err != nil {
			return nil, err
		}
		s.hostKey = key.Signer
	}

	s.config = &ssh.ServerConfig{}
	if s.password != "" {
		s.config.PasswordCallback = s.checkPassword
	}
	if len(s.authorizedKeys) > 0 {
		s.config.PublicKeyCallback = s.checkPublicKey
	}
	s.config.AddHostKey(s.hostKey)

	if s.root == "" {
		dir, err := os.MkdirTemp("", "sftp-test")
		if err != nil {
			return nil, err
		}
		s.root = dir
		s.ownsRoot = true
	}

	l, err := net.Listen("tcp", s.address)
	if err != nil {
		if s.ownsRoot {
			_ = os.RemoveAll(s.root)
		}
		return nil, err
	}
	s.listener = l

	s.wg.Add(1)
	go s.serve()

	return s, nil
}

// Host returns the address the server listens on.
func (s *Server) Host() string {
	return s.listener.Addr().(*net.TCPAddr).IP.String()
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Root returns the directory files are served from.
func (s *Server) Root() string {
	return s.root
}

// HostKey returns the server's public host key.
func (s *Server) HostKey() ssh.PublicKey {
	return s.hostKey.PublicKey()
}

// KnownHostsLine returns a known_hosts line for this server.
func (s *Server) KnownHostsLine() string {
	return knownhosts.Line([]string{knownhosts.Normalize(s.listener.Addr().String())}, s.HostKey())
}

// Accepted returns the number of TCP connections accepted so far.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// Logins returns the number of completed ssh handshakes, ie: successful authentications, so far.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// Stop closes the listener and every open connection, and waits for them to wind down.
func (s *Server) Stop() error {
	err := s.listener.Close()

	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()

	if s.ownsRoot {
		if rmErr := os.RemoveAll(s.root); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (s *Server) checkPassword(conn ssh.ConnMetadata, password []byte) (*ssh.Permissions, error) {
	if conn.User() == s.username && string(password) == s.password {
		return nil, nil
	}
	return nil, ErrWrongPassword
}

func (s *Server) checkPublicKey(conn ssh.ConnMetadata, key ssh.PublicKey) (*ssh.Permissions, error) {
	if conn.User() != s.username {
		return nil, ErrUnauthorized
	}
	marshaled := key.Marshal()
	for _, allowed := range s.authorizedKeys {
		if bytes.Equal(allowed.Marshal(), marshaled) {
			return nil, nil
		}
	}
	return nil, ErrUnauthorized
}

func (s *Server) loggedIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins++
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			_ = conn.Close()
			return
		}
		s.conns[conn] = struct{}{}
		s.accepted++
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() {
				s.mu.Lock()
				delete(s.conns, conn)
				s.mu.Unlock()
				_ = conn.Close()
			}()
			s.handleConn(conn)
		}()
	}
}

// handleConn runs the ssh handshake and serves sftp on every session channel that asks for the subsystem.
func (s *Server) handleConn(conn net.Conn) {
	sshConn, chans, reqs, err := ssh.NewServerConn(conn, s.config)
	if err != nil {
		return
	}
	defer sshConn.Close()

	s.loggedIn()

	go ssh.DiscardRequests(reqs)

	var channels sync.WaitGroup
	for newChannel := range chans {
		if newChannel.ChannelType() != "session" {
			_ = newChannel.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		channel, requests, err := newChannel.Accept()
		if err != nil {
			continue
		}
		channels.Add(1)
		go func() {
			defer channels.Done()
			s.handleSession(channel, requests)
		}()
	}
	channels.Wait()
}

func (s *Server) handleSession(channel ssh.Channel, requests <-chan *ssh.Request) {
	defer channel.Close()

	subsystem := make(chan bool, 1)
	go func() {
		started := false
		for req := range requests {
			ok := !started && req.Type == "subsystem" && isSFTP(req.Payload)
			if ok {
				started = true
				subsystem <- true
			}
			_ = req.Reply(ok, nil)
		}
		close(subsystem)
	}()

	if !<-subsystem {
		return
	}

	server := sftp.NewRequestServer(channel, newHandlers(s.root))
	if err := server.Serve(); err == io.EOF {
		_ = server.Close()
	}
}

// isSFTP reports whether a subsystem request payload, an ssh string, names "sftp".
func isSFTP(payload []byte) bool {
	return len(payload) >= 4 && string(payload[4:]) == "sftp"
}
