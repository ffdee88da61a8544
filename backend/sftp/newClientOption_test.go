package sftp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ssh"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer/backend/sftp/mocks"
)

func TestNewClientOptions(t *testing.T) {
	conn := mocks.NewSFTPClient(t)
	opts := Options{KnownHostsFile: "/etc/ssh/ssh_known_hosts", Ciphers: []string{"aes256-ctr"}}
	callback := ssh.InsecureIgnoreHostKey()

	c := NewClient(
		WithSFTPClient(conn),
		WithOptions(opts),
		WithDialer(proxy.Direct),
		WithKnownHostsCallback(callback),
	)

	assert.Equal(t, conn, c.conn)
	assert.Equal(t, proxy.Direct, c.dialer)
	assert.Equal(t, "/etc/ssh/ssh_known_hosts", c.options.KnownHostsFile, "later options keep earlier ones")
	assert.Equal(t, []string{"aes256-ctr"}, c.options.Ciphers)
	assert.NotNil(t, c.options.KnownHostsCallback)
	assert.True(t, c.IsConnected())
}

func TestNewClientOptionNames(t *testing.T) {
	assert.Equal(t, "sftpClient", WithSFTPClient(nil).NewClientOptionName())
	assert.Equal(t, "options", WithOptions(Options{}).NewClientOptionName())
	assert.Equal(t, "dialer", WithDialer(nil).NewClientOptionName())
	assert.Equal(t, "knownHostsCallback", WithKnownHostsCallback(nil).NewClientOptionName())
}
