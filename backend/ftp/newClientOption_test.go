package ftp

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend/ftp/mocks"
)

func TestWithServerConn(t *testing.T) {
	conn := mocks.NewServerConn(t)
	c := &Client{}

	opt := WithServerConn(conn)
	opt.Apply(c)

	assert.Equal(t, conn, c.conn, "ServerConn should be set correctly")
	assert.True(t, c.IsConnected())
	assert.Equal(t, optionNameServerConn, opt.NewClientOptionName())
}

func TestWithOptions(t *testing.T) {
	opts := Options{DisableEPSV: true}
	c := &Client{}

	opt := WithOptions(opts)
	opt.Apply(c)

	assert.Equal(t, opts, c.options, "Options should be set correctly")
	assert.Equal(t, optionNameOptions, opt.NewClientOptionName())
}

func TestWithDialer(t *testing.T) {
	c := &Client{}

	opt := WithDialer(proxy.Direct)
	opt.Apply(c)

	assert.Equal(t, proxy.Direct, c.dialer, "Dialer should be set correctly")
	assert.Equal(t, optionNameDialer, opt.NewClientOptionName())
}

func TestWithTLS(t *testing.T) {
	cfg := &tls.Config{ServerName: "ftps.acme.com"}
	c := NewClient(WithTLS(xfer.Implicit), WithTLSConfig(cfg))

	assert.True(t, c.secure)
	assert.Equal(t, xfer.Implicit, c.variant)
	assert.Same(t, cfg, c.options.TLSConfig)
	assert.Equal(t, optionNameTLS, WithTLS(xfer.Explicit).NewClientOptionName())
	assert.Equal(t, optionNameTLSConfig, WithTLSConfig(cfg).NewClientOptionName())
}
