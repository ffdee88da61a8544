package ftp

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"time"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/secsy/goftp"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
)

// Options holds FTP specific settings that don't belong on an xfer.ConnectionModel.
type Options struct {
	// DisableEPSV forces PASV instead of EPSV for data connections. Some servers behind NAT need it.
	DisableEPSV bool

	// DebugWriter, if set, receives a copy of the control connection traffic.
	DebugWriter io.Writer

	// TLSConfig is used for FTPS. When nil, see defaultTLSConfig. ServerName defaults to the model's host.
	TLSConfig *tls.Config

	// IncludeInsecureCiphers adds tls.InsecureCipherSuites to the cipher suites offered to the server.
	IncludeInsecureCiphers bool
}

const anonymousUser = "anonymous"

// defaultTLSConfig requires TLS 1.2 and keeps a session cache so data connections can resume the control
// connection's TLS session.
func defaultTLSConfig(host string) *tls.Config {
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true, //nolint:gosec
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         host,
	}
}

func (c *Client) tlsConfig(model xfer.ConnectionModel) *tls.Config {
	if c.options.TLSConfig == nil {
		cfg := defaultTLSConfig(model.Host)
		c.addInsecureCiphers(cfg)
		return cfg
	}

	cfg := c.options.TLSConfig.Clone()
	if cfg.ServerName == "" {
		cfg.ServerName = model.Host
	}
	if cfg.ClientSessionCache == nil {
		cfg.ClientSessionCache = tls.NewLRUClientSessionCache(0)
	}
	c.addInsecureCiphers(cfg)
	return cfg
}

func (c *Client) addInsecureCiphers(cfg *tls.Config) {
	if !c.options.IncludeInsecureCiphers {
		return
	}
	if len(cfg.CipherSuites) == 0 {
		for _, suite := range tls.CipherSuites() {
			cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
		}
	}
	for _, suite := range tls.InsecureCipherSuites() {
		cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
	}
}

func (c *Client) dialOptions(ctx context.Context, model xfer.ConnectionModel) []_ftp.DialOption {
	// always use context, disable EPSV if opt is true
	opts := []_ftp.DialOption{
		_ftp.DialWithContext(ctx),
		_ftp.DialWithDisabledEPSV(c.options.DisableEPSV),
	}

	if model.ConnectionTimeout > 0 {
		opts = append(opts, _ftp.DialWithTimeout(model.ConnectionTimeout))
	}

	if c.options.DebugWriter != nil {
		opts = append(opts, _ftp.DialWithDebugOutput(c.options.DebugWriter))
	}

	var tlsConfig *tls.Config
	if c.secure {
		tlsConfig = c.tlsConfig(model)
		switch c.variant {
		case xfer.Implicit:
			opts = append(opts, _ftp.DialWithTLS(tlsConfig))
		default:
			opts = append(opts, _ftp.DialWithExplicitTLS(tlsConfig))
		}
	}

	if c.dialer != nil {
		opts = append(opts, _ftp.DialWithDialFunc(c.proxyDialFunc(ctx, model.ConnectionTimeout, tlsConfig)))
	}

	return opts
}

// proxyDialFunc routes the control and data connections through the client's dialer. The ftp library leaves TLS
// to a custom dial func, so every connection is wrapped in TLS here except an explicit FTPS control connection,
// which the library upgrades itself with AUTH TLS. Only the control connection is bound to ctx.
func (c *Client) proxyDialFunc(ctx context.Context, timeout time.Duration, tlsConfig *tls.Config) func(network, address string) (net.Conn, error) {
	control := true
	return func(network, address string) (net.Conn, error) {
		dialCtx := ctx
		if !control {
			dialCtx = context.WithoutCancel(ctx)
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(dialCtx, timeout)
			defer cancel()
		}

		conn, err := dialContext(dialCtx, c.dialer, network, address)
		if err != nil {
			return nil, err
		}

		isControl := control
		control = false
		if tlsConfig == nil || (isControl && c.variant == xfer.Explicit) {
			return conn, nil
		}
		return tls.Client(conn, tlsConfig), nil
	}
}

func dialContext(ctx context.Context, d proxy.Dialer, network, address string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, network, address)
	}
	return d.Dial(network, address)
}

func username(model xfer.ConnectionModel) string {
	if model.Username == "" {
		return anonymousUser
	}
	return model.Username
}

// activeConfig maps model and Options onto a goftp.Config. Credentials are set by activeConn.Login.
func (c *Client) activeConfig(model xfer.ConnectionModel) goftp.Config {
	config := goftp.Config{
		Timeout:     model.ConnectionTimeout,
		DisableEPSV: c.options.DisableEPSV,
		Logger:      c.options.DebugWriter,
	}
	if c.secure {
		config.TLSConfig = c.tlsConfig(model)
		config.TLSMode = goftp.TLSExplicit
		if c.variant == xfer.Implicit {
			config.TLSMode = goftp.TLSImplicit
		}
	}
	return config
}
