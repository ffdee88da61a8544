package ftpserver

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	ftplib "github.com/fclairamb/ftpserverlib"
	"github.com/spf13/afero"
)

var (
	ErrWrongPassword = fmt.Errorf("password rejected")
	ErrNoUsers       = fmt.Errorf("at least one user is required")
	ErrStopped       = fmt.Errorf("server is stopped")
)

// TLSMode selects how, if at all, a Server negotiates TLS.
type TLSMode int

const (
	// NoTLS serves plain FTP.
	NoTLS TLSMode = iota
	// ExplicitTLS accepts AUTH TLS on a plain control connection.
	ExplicitTLS
	// ImplicitTLS expects a TLS handshake as soon as the connection is accepted.
	ImplicitTLS
)

type (
	// Server is an in-process FTP or FTPS server for tests.
	//
	// Server is constructed and started by 'Start' and serves until 'Stop' is called. Every user is jailed in its
	// own home directory below the server root.
	Server struct {
		ftp       *ftplib.FtpServer
		addr      string
		tlsMode   TLSMode
		tlsConfig *tls.Config

		users    map[string]string
		address  string
		root     string
		ownsRoot bool

		mu       sync.Mutex
		closed   bool
		accepted int
		logins   int
	}

	// Option configures a Server before it starts.
	Option func(*Server)
)

// WithUser accepts username with password. Its home directory is Home(username).
func WithUser(username, password string) Option {
	return func(s *Server) {
		s.users[username] = password
	}
}

// WithTLS sets the TLS negotiation mode. Unless WithTLSConfig is given, a self-signed certificate for 127.0.0.1
// and localhost is generated.
func WithTLS(mode TLSMode) Option {
	return func(s *Server) {
		s.tlsMode = mode
	}
}

// WithTLSConfig presents cfg's certificates instead of a generated one.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *Server) {
		s.tlsConfig = cfg
	}
}

// WithRoot keeps home directories under dir. Without it a temporary directory is created and removed on Stop.
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
		address: "127.0.0.1:0",
		users:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.users) == 0 {
		return nil, ErrNoUsers
	}

	if s.tlsMode != NoTLS && s.tlsConfig == nil {
		cfg, err := selfSignedConfig()
		if err != nil {
			return nil, err
		}
		s.tlsConfig = cfg
	}

	if s.root == "" {
		dir, err := os.MkdirTemp("", "ftp-test")
		if err != nil {
			return nil, err
		}
		s.root = dir
		s.ownsRoot = true
	}

	for user := range s.users {
		if err := os.MkdirAll(s.Home(user), 0o750); err != nil {
			s.removeRoot()
			return nil, err
		}
	}

	s.ftp = ftplib.NewFtpServer(&driver{server: s})
	if err := s.ftp.Listen(); err != nil {
		s.removeRoot()
		return nil, err
	}
	s.addr = s.ftp.Addr()

	go func() {
		_ = s.ftp.Serve()
	}()

	return s, nil
}

// Host returns the address the server listens on.
func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.addr)
	return host
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.addr)
	p, _ := strconv.Atoi(port)
	return p
}

// Root returns the directory holding the home directories.
func (s *Server) Root() string {
	return s.root
}

// Home returns the directory username is jailed in.
func (s *Server) Home(username string) string {
	return filepath.Join(s.root, username)
}

// Accepted returns the number of control connections accepted so far.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// Logins returns the number of successful logins so far.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// Stop closes the listener. Connections accepted afterwards are turned away.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	err := s.ftp.Stop()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}

	if s.ownsRoot {
		if rmErr := os.RemoveAll(s.root); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}

func (s *Server) removeRoot() {
	if s.ownsRoot {
		_ = os.RemoveAll(s.root)
	}
}

func (s *Server) settings() *ftplib.Settings {
	settings := &ftplib.Settings{
		ListenAddr:              s.address,
		ActiveTransferPortNon20: true,
		ConnectionTimeout:       30,
		IdleTimeout:             60,
	}
	switch s.tlsMode {
	case ImplicitTLS:
		settings.TLSRequired = ftplib.ImplicitEncryption
	default:
		settings.TLSRequired = ftplib.ClearOrEncrypted
	}
	return settings
}

// driver is the ftpserverlib main driver. It is kept apart from Server so the library callbacks aren't part of
// the exported API.
type driver struct {
	server *Server
}

func (d *driver) GetSettings() (*ftplib.Settings, error) {
	return d.server.settings(), nil
}

func (d *driver) ClientConnected(ftplib.ClientContext) (string, error) {
	s := d.server
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrStopped
	}
	s.accepted++
	return "xfer test server ready", nil
}

func (d *driver) ClientDisconnected(ftplib.ClientContext) {}

func (d *driver) AuthUser(_ ftplib.ClientContext, user, pass string) (ftplib.ClientDriver, error) {
	s := d.server
	password, ok := s.users[user]
	if !ok || password != pass {
		return nil, ErrWrongPassword
	}

	s.mu.Lock()
	s.logins++
	s.mu.Unlock()

	return afero.NewBasePathFs(afero.NewOsFs(), s.Home(user)), nil
}

func (d *driver) GetTLSConfig() (*tls.Config, error) {
	if d.server.tlsConfig == nil {
		return nil, errors.New("tls is not enabled")
	}
	return d.server.tlsConfig, nil
}
