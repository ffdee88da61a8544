package ftp

import (
	"crypto/tls"

	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend/ftp/types"
	"github.com/valensas/xfer/options"
)

const (
	optionNameServerConn = "serverConn"
	optionNameOptions    = "options"
	optionNameDialer     = "dialer"
	optionNameTLS        = "tls"
	optionNameTLSConfig  = "tlsConfig"
)

// WithServerConn returns serverConnOpt implementation of NewClientOption
//
// WithServerConn is used to explicitly specify an established, logged in connection for the client.
func WithServerConn(conn types.ServerConn) options.NewClientOption[Client] {
	return &serverConnOpt{
		conn: conn,
	}
}

type serverConnOpt struct {
	conn types.ServerConn
}

func (o *serverConnOpt) Apply(c *Client) {
	c.conn = o.conn
}

func (o *serverConnOpt) NewClientOptionName() string {
	return optionNameServerConn
}

// WithOptions returns optionsOpt implementation of NewClientOption
//
// WithOptions is used to specify options for the client.
func WithOptions(opts Options) options.NewClientOption[Client] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(c *Client) {
	c.options = o.options
}

func (o *optionsOpt) NewClientOptionName() string {
	return optionNameOptions
}

// WithDialer returns dialerOpt implementation of NewClientOption
//
// WithDialer routes the control and data connections through d, ie: a SOCKS5 dialer from proxy.SOCKS5.
func WithDialer(d proxy.Dialer) options.NewClientOption[Client] {
	return &dialerOpt{
		dialer: d,
	}
}

type dialerOpt struct {
	dialer proxy.Dialer
}

func (o *dialerOpt) Apply(c *Client) {
	c.dialer = o.dialer
}

func (o *dialerOpt) NewClientOptionName() string {
	return optionNameDialer
}

// WithTLS returns tlsOpt implementation of NewClientOption
//
// WithTLS turns the client into an FTPS client using the given variant.
func WithTLS(variant xfer.Variant) options.NewClientOption[Client] {
	return &tlsOpt{
		variant: variant,
	}
}

type tlsOpt struct {
	variant xfer.Variant
}

func (o *tlsOpt) Apply(c *Client) {
	c.secure = true
	c.variant = o.variant
}

func (o *tlsOpt) NewClientOptionName() string {
	return optionNameTLS
}

// WithTLSConfig returns tlsConfigOpt implementation of NewClientOption
//
// WithTLSConfig sets the tls.Config used by FTPS connections, leaving the rest of Options alone.
func WithTLSConfig(cfg *tls.Config) options.NewClientOption[Client] {
	return &tlsConfigOpt{
		config: cfg,
	}
}

type tlsConfigOpt struct {
	config *tls.Config
}

func (o *tlsConfigOpt) Apply(c *Client) {
	c.options.TLSConfig = o.config
}

func (o *tlsConfigOpt) NewClientOptionName() string {
	return optionNameTLSConfig
}
