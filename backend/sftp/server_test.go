package sftp

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/ssh"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend/testsuite"
	"github.com/valensas/xfer/embedded/sftpserver"
)

type serverTestSuite struct {
	suite.Suite
	key       sftpserver.KeyPair
	encrypted sftpserver.KeyPair
	server    *sftpserver.Server
}

func TestServer(t *testing.T) {
	suite.Run(t, new(serverTestSuite))
}

func (ts *serverTestSuite) SetupSuite() {
	var err error
	ts.key, err = sftpserver.GenerateKey(sftpserver.ED25519, 0, "")
	ts.Require().NoError(err)
	ts.encrypted, err = sftpserver.GenerateKey(sftpserver.RSA, 2048, "open sesame")
	ts.Require().NoError(err)
}

func (ts *serverTestSuite) SetupTest() {
	var err error
	ts.server, err = sftpserver.Start(
		sftpserver.WithPassword("bob", "s3cr3t"),
		sftpserver.WithAuthorizedKey("bob", ts.key.PublicKey(), ts.encrypted.PublicKey()),
	)
	ts.Require().NoError(err)
}

func (ts *serverTestSuite) TearDownTest() {
	ts.NoError(ts.server.Stop())
}

func (ts *serverTestSuite) model() xfer.ConnectionModel {
	return xfer.ConnectionModel{
		ConnectionName:        "embedded",
		ConnectionType:        xfer.SFTP,
		Host:                  ts.server.Host(),
		Port:                  ts.server.Port(),
		Username:              "bob",
		Password:              "s3cr3t",
		ConnectionTimeout:     5 * time.Second,
		RetryBackoffDurations: []time.Duration{0, 0},
	}
}

func (ts *serverTestSuite) connect(client *Client, m xfer.ConnectionModel) {
	result, err := xfer.AuthAndConnect(context.Background(), client, m)
	ts.Require().NoError(err)
	ts.Zero(result.RetryCount)
	ts.Empty(result.Errors)
	ts.True(client.IsConnected())
	ts.T().Cleanup(func() {
		_ = client.Disconnect()
	})
}

func (ts *serverTestSuite) TestPassword() {
	ts.connect(NewClient(), ts.model())
	ts.Equal(1, ts.server.Logins())
}

func (ts *serverTestSuite) TestPrivateKey() {
	m := ts.model()
	m.Password = ""
	m.PrivateKey = string(ts.key.PEM)
	ts.connect(NewClient(), m)
}

func (ts *serverTestSuite) TestEncryptedPrivateKey() {
	m := ts.model()
	m.Password = ""
	m.PrivateKey = string(ts.encrypted.PEM)
	m.PrivateKeyPassphrase = "open sesame"
	ts.connect(NewClient(), m)
}

func (ts *serverTestSuite) TestWrongPasswordIsNotRetried() {
	m := ts.model()
	m.Password = "wrong"

	client := NewClient()
	result, err := xfer.AuthAndConnect(context.Background(), client, m)
	ts.Require().Error(err)
	ts.ErrorIs(err, xfer.ErrAuthentication)
	ts.Contains(err.Error(), "unable to authenticate")
	ts.Zero(result.RetryCount)
	ts.False(client.IsConnected())
	ts.Equal(1, ts.server.Accepted())
	ts.Zero(ts.server.Logins())
}

func (ts *serverTestSuite) TestStrictHostKeyChecking() {
	m := ts.model()
	m.StrictHostKeyChecking = xfer.StrictHostKeyCheckingYes

	known := string(ssh.MarshalAuthorizedKey(ts.server.HostKey()))
	ts.connect(NewClient(WithOptions(Options{KnownHostsString: known})), m)

	knownHostsFile := filepath.Join(ts.T().TempDir(), "known_hosts")
	ts.Require().NoError(os.WriteFile(knownHostsFile, []byte(ts.server.KnownHostsLine()+"\n"), 0o600))
	ts.connect(NewClient(WithOptions(Options{KnownHostsFile: knownHostsFile})), m)
}

func (ts *serverTestSuite) TestHostKeyMismatch() {
	other, err := sftpserver.GenerateKey(sftpserver.ED25519, 0, "")
	ts.Require().NoError(err)

	m := ts.model()
	m.StrictHostKeyChecking = xfer.StrictHostKeyCheckingYes

	client := NewClient(WithOptions(Options{KnownHostsString: other.AuthorizedKey()}))
	result, err := xfer.AuthAndConnect(context.Background(), client, m)
	ts.ErrorIs(err, xfer.ErrConfiguration)
	ts.Zero(result.RetryCount)
	ts.False(client.IsConnected())
	ts.Zero(ts.server.Logins())
}

func (ts *serverTestSuite) TestOperations() {
	client := NewClient()
	ts.connect(client, ts.model())

	ts.Require().NoError(client.MakeDirectory("/in/2024"))
	ok, err := client.StoreFile("/in/2024/report.csv", strings.NewReader("a,b\n1,2\n"))
	ts.Require().NoError(err)
	ts.True(ok)

	local, err := os.ReadFile(filepath.Join(ts.server.Root(), "in", "2024", "report.csv"))
	ts.Require().NoError(err)
	ts.Equal("a,b\n1,2\n", string(local))

	files, err := client.ListFilesInfo("/in/2024")
	ts.Require().NoError(err)
	ts.Equal(map[string]int64{"report.csv": 8}, files)

	r, err := client.RetrieveFileStream("/in/2024/report.csv")
	ts.Require().NoError(err)
	b, err := io.ReadAll(r)
	ts.Require().NoError(err)
	ts.NoError(r.Close())
	ts.Equal("a,b\n1,2\n", string(b))

	_, err = client.RetrieveFileStream("/in/2024/missing.csv")
	ts.ErrorIs(err, xfer.ErrNotFound)

	ts.ErrorIs(client.MakeDirectory("/in/2024/report.csv/x"), xfer.ErrConfiguration)

	ok, err = client.DeleteFile("/in/2024/report.csv")
	ts.Require().NoError(err)
	ts.True(ok)
	_, err = os.Stat(filepath.Join(ts.server.Root(), "in", "2024", "report.csv"))
	ts.ErrorIs(err, os.ErrNotExist)
}

func (ts *serverTestSuite) TestConformance() {
	client := NewClient()
	ts.connect(client, ts.model())
	testsuite.RunConformanceTests(ts.T(), client, "/", testsuite.ConformanceOptions{})
}

func (ts *serverTestSuite) TestDisconnectClosesSession() {
	client := NewClient()
	ts.connect(client, ts.model())

	ts.Require().NoError(client.Disconnect())
	ts.False(client.IsConnected())

	_, err := client.ListFilesInfo("/")
	ts.ErrorIs(err, xfer.ErrTransport)
}
