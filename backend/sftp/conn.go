package sftp

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer/backend/sftp/types"
)

// sftpConn adapts *sftp.Client to types.SFTPClient and owns the ssh connection under it.
type sftpConn struct {
	*_sftp.Client
	ssh *ssh.Client
}

func (c *sftpConn) Open(p string) (io.ReadCloser, error) {
	f, err := c.Client.Open(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (c *sftpConn) Create(p string) (io.WriteCloser, error) {
	f, err := c.Client.Create(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (c *sftpConn) Close() error {
	err := c.Client.Close()
	if sshErr := c.ssh.Close(); sshErr != nil && !errors.Is(sshErr, net.ErrClosed) && err == nil {
		err = sshErr
	}
	return err
}

// dialSFTP dials addr, runs the ssh handshake and opens the sftp subsystem. The handshake is abandoned when ctx
// is done.
func dialSFTP(ctx context.Context, addr string, config *ssh.ClientConfig, dialer proxy.Dialer) (types.SFTPClient, error) {
	conn, err := dialContext(ctx, dialer, addr, config.Timeout)
	if err != nil {
		return nil, err
	}

	if config.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(config.Timeout))
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		stop()
		_ = conn.Close()
		return nil, err
	}
	sshClient := ssh.NewClient(sshConn, chans, reqs)

	client, err := _sftp.NewClient(sshClient)
	if err != nil {
		stop()
		_ = sshClient.Close()
		return nil, err
	}

	if !stop() {
		_ = client.Close()
		_ = sshClient.Close()
		return nil, ctx.Err()
	}
	_ = conn.SetDeadline(time.Time{})

	return &sftpConn{Client: client, ssh: sshClient}, nil
}
