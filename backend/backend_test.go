package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/mocks"
)

/**********************************
 ************TESTS*****************
 **********************************/

type testSuite struct {
	suite.Suite
	saved map[xfer.ConnectionType]Constructor
}

func (s *testSuite) SetupTest() {
	mmu.Lock()
	s.saved = m
	mmu.Unlock()
	UnregisterAll()
}

func (s *testSuite) TearDownTest() {
	mmu.Lock()
	m = s.saved
	mmu.Unlock()
}

func (s *testSuite) TestBackend() {
	m1 := mocks.NewClient(s.T())
	Register(xfer.FTP, func(xfer.Variant) xfer.Client { return m1 })

	// register a new backend
	Register(xfer.SFTP, func(xfer.Variant) xfer.Client { return mocks.NewClient(s.T()) })

	// register another backend
	Register(xfer.FTPS, func(xfer.Variant) xfer.Client { return mocks.NewClient(s.T()) })

	// get backend
	b := Backend(xfer.FTP)
	s.Require().NotNil(b)
	s.Same(m1, b(xfer.Explicit))

	// check all RegisteredBackends, in order
	s.Equal([]xfer.ConnectionType{xfer.FTP, xfer.FTPS, xfer.SFTP}, RegisteredBackends())

	// Unregister a backend
	Unregister(xfer.FTPS)
	s.Len(RegisteredBackends(), 2, "found 2 backends")
	s.Nil(Backend(xfer.FTPS))

	// Unregister all backends
	UnregisterAll()
	s.Empty(RegisteredBackends(), "found 0 backends")
}

func (s *testSuite) TestNewClientPassesVariant() {
	var got xfer.Variant
	Register(xfer.FTPS, func(v xfer.Variant) xfer.Client {
		got = v
		return mocks.NewClient(s.T())
	})

	client, err := NewClient(xfer.FTPS, xfer.Implicit)
	s.Require().NoError(err)
	s.NotNil(client)
	s.Equal(xfer.Implicit, got)
}

func (s *testSuite) TestNewClientUnknownType() {
	client, err := NewClient(xfer.ConnectionType(99), xfer.Explicit)
	s.ErrorIs(err, xfer.ErrConfiguration)
	s.Nil(client)

	_, err = NewClient(xfer.SFTP, xfer.Explicit)
	s.ErrorIs(err, xfer.ErrConfiguration, "nothing registered")
}

func (s *testSuite) TestConnect() {
	model := xfer.ConnectionModel{
		ConnectionType: xfer.SFTP,
		Host:           "localhost",
		Port:           22,
		Username:       "bob",
		Password:       "s3cr3t",
	}
	client := mocks.NewClient(s.T())
	client.EXPECT().ConnectToServer(mock.Anything, model).Return(nil).Once()
	Register(xfer.SFTP, func(xfer.Variant) xfer.Client { return client })

	got, result, err := Connect(context.Background(), model)
	s.Require().NoError(err)
	s.Same(client, got)
	s.True(result.Connected)
}

func (s *testSuite) TestConnectAuthenticationError() {
	model := xfer.ConnectionModel{
		ConnectionType: xfer.FTP,
		Host:           "localhost",
		Port:           21,
	}
	loginErr := errors.New("530 Login incorrect.")
	client := mocks.NewClient(s.T())
	client.EXPECT().ConnectToServer(mock.Anything, model).Return(xfer.NewAuthenticationError(loginErr)).Once()
	Register(xfer.FTP, func(xfer.Variant) xfer.Client { return client })

	got, result, err := Connect(context.Background(), model)
	s.ErrorIs(err, xfer.ErrAuthentication)
	s.Same(client, got)
	s.Equal(xfer.ConnectionResult{}, result)
}

func (s *testSuite) TestConnectUnregistered() {
	got, _, err := Connect(context.Background(), xfer.ConnectionModel{
		ConnectionType: xfer.FTP,
		Host:           "localhost",
		Port:           21,
	})
	s.ErrorIs(err, xfer.ErrConfiguration)
	s.Nil(got)
}

func (s *testSuite) TestUpload() {
	client := mocks.NewClient(s.T())
	r := strings.NewReader("data")
	client.EXPECT().MakeDirectory("/inbox/2024").Return(nil).Once()
	client.EXPECT().StoreFile("/inbox/2024/report.csv", r).Return(true, nil).Once()

	s.NoError(Upload(client, "/inbox/2024/report.csv", r))
}

func (s *testSuite) TestUploadToRoot() {
	client := mocks.NewClient(s.T())
	r := strings.NewReader("data")
	client.EXPECT().StoreFile("/report.csv", r).Return(true, nil).Once()

	s.NoError(Upload(client, "/report.csv", r))
}

func (s *testSuite) TestUploadErrors() {
	collision := xfer.NewConfigurationError(errors.New("/inbox exists and is not a directory"))

	client := mocks.NewClient(s.T())
	client.EXPECT().MakeDirectory("/inbox").Return(collision).Once()
	s.ErrorIs(Upload(client, "/inbox/a.txt", strings.NewReader("")), xfer.ErrConfiguration)

	client = mocks.NewClient(s.T())
	client.EXPECT().StoreFile("/a.txt", mock.Anything).Return(false, nil).Once()
	s.ErrorIs(Upload(client, "/a.txt", strings.NewReader("")), xfer.ErrTransfer)
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (t *trackingReader) Close() error {
	t.closed = true
	return nil
}

func (s *testSuite) TestDownload() {
	stream := &trackingReader{Reader: strings.NewReader("some text")}
	client := mocks.NewClient(s.T())
	client.EXPECT().RetrieveFileStream("/a.txt").Return(stream, nil).Once()

	var buf bytes.Buffer
	n, err := Download(client, "/a.txt", &buf)
	s.Require().NoError(err)
	s.Equal(int64(9), n)
	s.Equal("some text", buf.String())
	s.True(stream.closed)
}

func (s *testSuite) TestDownloadNotFound() {
	missing := xfer.NewNotFoundError(errors.New("550 No such file or directory."))
	client := mocks.NewClient(s.T())
	client.EXPECT().RetrieveFileStream("/a.txt").Return(nil, missing).Once()

	_, err := Download(client, "/a.txt", io.Discard)
	s.ErrorIs(err, xfer.ErrNotFound)
}

func TestBackend(t *testing.T) {
	suite.Run(t, new(testSuite))
}
