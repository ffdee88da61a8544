package sftp

import (
	"golang.org/x/crypto/ssh"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer/backend/sftp/types"
	"github.com/valensas/xfer/options"
)

const (
	optionNameSFTPClient         = "sftpClient"
	optionNameOptions            = "options"
	optionNameDialer             = "dialer"
	optionNameKnownHostsCallback = "knownHostsCallback"
)

// WithSFTPClient returns sftpClientOpt implementation of NewClientOption
//
// WithSFTPClient is used to explicitly specify an established sftp session for the client.
func WithSFTPClient(conn types.SFTPClient) options.NewClientOption[Client] {
	return &sftpClientOpt{
		conn: conn,
	}
}

type sftpClientOpt struct {
	conn types.SFTPClient
}

func (o *sftpClientOpt) Apply(c *Client) {
	c.conn = o.conn
}

func (o *sftpClientOpt) NewClientOptionName() string {
	return optionNameSFTPClient
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
// WithDialer routes the ssh connection through d, ie: a SOCKS5 dialer from proxy.SOCKS5.
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

// WithKnownHostsCallback returns knownHostsCallbackOpt implementation of NewClientOption
//
// WithKnownHostsCallback sets Options.KnownHostsCallback, keeping any other Options already applied.
func WithKnownHostsCallback(cb ssh.HostKeyCallback) options.NewClientOption[Client] {
	return &knownHostsCallbackOpt{
		callback: cb,
	}
}

type knownHostsCallbackOpt struct {
	callback ssh.HostKeyCallback
}

func (o *knownHostsCallbackOpt) Apply(c *Client) {
	c.options.KnownHostsCallback = o.callback
}

func (o *knownHostsCallbackOpt) NewClientOptionName() string {
	return optionNameKnownHostsCallback
}
