package ftps

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/stretchr/testify/suite"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend/testsuite"
	"github.com/valensas/xfer/embedded/ftpserver"
)

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, r := range h.records {
		if r.Level == level {
			out = append(out, r.Message)
		}
	}
	return out
}

type clientTestSuite struct {
	suite.Suite
	implicit *ftpserver.Server
	explicit *ftpserver.Server
}

func TestClient(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (ts *clientTestSuite) SetupSuite() {
	var err error
	ts.implicit, err = ftpserver.Start(ftpserver.WithUser("alice", "pa55"), ftpserver.WithTLS(ftpserver.ImplicitTLS))
	ts.Require().NoError(err)
	ts.explicit, err = ftpserver.Start(ftpserver.WithUser("alice", "pa55"), ftpserver.WithTLS(ftpserver.ExplicitTLS))
	ts.Require().NoError(err)
}

func (ts *clientTestSuite) TearDownSuite() {
	ts.NoError(ts.implicit.Stop())
	ts.NoError(ts.explicit.Stop())
}

func model(server *ftpserver.Server, variant xfer.Variant) xfer.ConnectionModel {
	return xfer.ConnectionModel{
		ConnectionType:    xfer.FTPS,
		Host:              server.Host(),
		Port:              server.Port(),
		Username:          "alice",
		Password:          "pa55",
		Variant:           variant,
		ConnectionTimeout: 5 * time.Second,
	}
}

func (ts *clientTestSuite) TestName() {
	client := NewClient(xfer.Implicit)
	ts.Equal("File Transfer Protocol over TLS", client.Name())
	ts.Equal(xfer.FTPS, client.ConnectionType())
	ts.Equal(xfer.Implicit, client.Variant())
}

func (ts *clientTestSuite) TestConnectImplicit() {
	client := NewClient(xfer.Implicit)
	result, err := xfer.AuthAndConnect(context.Background(), client, model(ts.implicit, xfer.Implicit))
	ts.Require().NoError(err)
	ts.True(result.Connected)
	ts.Zero(result.RetryCount)
	ts.True(client.IsConnected())
	ts.NoError(client.Disconnect())
	ts.False(client.IsConnected())
}

func (ts *clientTestSuite) TestConnectExplicit() {
	client := NewClient(xfer.Explicit)
	result, err := xfer.AuthAndConnect(context.Background(), client, model(ts.explicit, xfer.Explicit))
	ts.Require().NoError(err)
	ts.True(result.Connected)
	ts.NoError(client.Disconnect())
}

func (ts *clientTestSuite) TestWrongPasswordIsLoggedAndNotRetried() {
	handler := &recordingHandler{}
	ctx := clog.WithLogger(context.Background(), clog.New(handler))

	m := model(ts.implicit, xfer.Implicit)
	m.Password = "wrong"
	m.RetryBackoffDurations = []time.Duration{0, 0, 0}

	before := ts.implicit.Accepted()
	result, err := xfer.AuthAndConnect(ctx, NewClient(xfer.Implicit), m)
	ts.Require().ErrorIs(err, xfer.ErrAuthentication)
	ts.True(strings.HasPrefix(err.Error(), "530 "), err.Error())
	ts.Equal(xfer.ConnectionResult{}, result)
	ts.Equal(before+1, ts.implicit.Accepted(), "exactly one connection attempt")
	ts.Equal([]string{"an error occurred while connecting to ftps server"}, handler.messages(slog.LevelError))
}

func (ts *clientTestSuite) TestConnectionRefusedExhaustsSchedule() {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	ts.Require().NoError(err)
	port := l.Addr().(*net.TCPAddr).Port
	ts.Require().NoError(l.Close())

	m := xfer.ConnectionModel{
		ConnectionType:        xfer.FTPS,
		Host:                  "127.0.0.1",
		Port:                  port,
		Username:              "alice",
		Password:              "pa55",
		Variant:               xfer.Implicit,
		RetryBackoffDurations: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
	}

	var waits []time.Duration
	connector := xfer.NewConnector(xfer.WithWaitFunc(func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}))

	result, err := connector.AuthAndConnect(context.Background(), NewClient(xfer.Implicit), m)
	ts.Require().NoError(err)
	ts.False(result.Connected)
	ts.Equal(3, result.RetryCount)
	ts.Require().Len(result.Errors, 1)
	ts.Equal(4, result.Errors[0].Count)
	ts.Contains(result.Errors[0].Description, "connection refused")
	ts.Equal(m.RetryBackoffDurations, waits)
}

func (ts *clientTestSuite) TestVariantMismatchIsNotRetried() {
	m := model(ts.implicit, xfer.Implicit)
	m.RetryBackoffDurations = []time.Duration{0, 0}

	before := ts.implicit.Accepted()
	result, err := xfer.AuthAndConnect(context.Background(), NewClient(xfer.Explicit), m)
	ts.Require().ErrorIs(err, xfer.ErrConfiguration)
	ts.Equal(xfer.ConnectionResult{}, result)
	ts.Equal(before, ts.implicit.Accepted(), "nothing is dialed")
}

func (ts *clientTestSuite) connected(server *ftpserver.Server, variant xfer.Variant) *Client {
	client := NewClient(variant)
	ts.Require().NoError(client.ConnectToServer(context.Background(), model(server, variant)))
	ts.T().Cleanup(func() {
		_ = client.Disconnect()
	})
	return client
}

func (ts *clientTestSuite) TestImplicitConformance() {
	testsuite.RunConformanceTests(ts.T(), ts.connected(ts.implicit, xfer.Implicit), "/", testsuite.ConformanceOptions{
		SkipMissingDirectoryListing: true,
	})
}

func (ts *clientTestSuite) TestExplicitConformance() {
	testsuite.RunConformanceTests(ts.T(), ts.connected(ts.explicit, xfer.Explicit), "/", testsuite.ConformanceOptions{
		SkipMissingDirectoryListing: true,
	})
}

func (ts *clientTestSuite) TestDisconnectWhenNotConnected() {
	ts.NoError(NewClient(xfer.Explicit).Disconnect())
}
