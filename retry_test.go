package xfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/mocks"
)

var (
	errRefused = errors.New("dial tcp 127.0.0.1:2121: connect: connection refused")
	errTimeout = errors.New("dial tcp 10.0.0.1:21: i/o timeout")
	errLogin   = errors.New("530 Login incorrect.")
)

type connectorTestSuite struct {
	suite.Suite
	client    *mocks.Client
	connector *xfer.Connector
	waits     []time.Duration
}

func TestConnector(t *testing.T) {
	suite.Run(t, new(connectorTestSuite))
}

func (ts *connectorTestSuite) SetupTest() {
	ts.client = mocks.NewClient(ts.T())
	ts.waits = nil
	ts.connector = xfer.NewConnector(xfer.WithWaitFunc(func(ctx context.Context, d time.Duration) error {
		ts.waits = append(ts.waits, d)
		return ctx.Err()
	}))
}

func model(backoff ...time.Duration) xfer.ConnectionModel {
	return xfer.ConnectionModel{
		ConnectionType:        xfer.FTPS,
		Host:                  "localhost",
		Port:                  2121,
		Username:              "username",
		Password:              "password",
		RetryBackoffDurations: backoff,
	}
}

func (ts *connectorTestSuite) TestSucceedsOnFirstAttempt() {
	m := model(time.Second, 2*time.Second, 3*time.Second)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(nil).Once()

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err)
	ts.True(result.Connected)
	ts.Zero(result.RetryCount)
	ts.Empty(result.Errors)
	ts.Empty(ts.waits, "no wait expected when the first attempt succeeds")
}

func (ts *connectorTestSuite) TestExhaustsSchedule() {
	m := model(time.Second, 2*time.Second, 3*time.Second)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(xfer.NewTransportError(errRefused)).Times(4)

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err, "exhausting the schedule is not an error")
	ts.False(result.Connected)
	ts.Equal(3, result.RetryCount)
	ts.Equal([]xfer.ErrorCount{{Description: errRefused.Error(), Count: 4}}, result.Errors)
	ts.Equal([]time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, ts.waits)
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 4)
}

func (ts *connectorTestSuite) TestDefaultScheduleRetriesOnce() {
	m := model()
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errTimeout).Twice()

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err)
	ts.False(result.Connected)
	ts.Equal(1, result.RetryCount)
	ts.Equal(2, result.ErrorCount(errTimeout.Error()))
	ts.Equal([]time.Duration{0}, ts.waits)
}

func (ts *connectorTestSuite) TestSucceedsAfterRetries() {
	m := model(time.Second, time.Second, time.Second, time.Second)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Once()
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errTimeout).Once()
	ts.client.On("ConnectToServer", mock.Anything, m).Return(nil).Once()

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err)
	ts.True(result.Connected)
	ts.Equal(2, result.RetryCount)
	ts.Len(ts.waits, 2, "no further waiting once connected")
	ts.Equal(1, result.ErrorCount(errRefused.Error()))
	ts.Equal(1, result.ErrorCount(errTimeout.Error()))
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 3)
}

func (ts *connectorTestSuite) TestSucceedsOnLastAttempt() {
	m := model(0, 0)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Twice()
	ts.client.On("ConnectToServer", mock.Anything, m).Return(nil).Once()

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err)
	ts.True(result.Connected)
	ts.Equal(2, result.RetryCount)
	ts.Equal([]xfer.ErrorCount{{Description: errRefused.Error(), Count: 2}}, result.Errors)
}

func (ts *connectorTestSuite) TestAuthenticationErrorIsNotRetried() {
	m := model(time.Second, 2*time.Second, 3*time.Second)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(xfer.NewAuthenticationError(errLogin)).Once()

	result, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().ErrorIs(err, xfer.ErrAuthentication)
	ts.ErrorIs(err, errLogin)
	ts.Equal(errLogin.Error(), err.Error(), "message should be preserved verbatim")
	ts.Equal(xfer.ConnectionResult{}, result, "no result should be produced")
	ts.Empty(ts.waits)
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 1)
}

func (ts *connectorTestSuite) TestAuthenticationErrorAfterTransportErrors() {
	m := model(0, 0, 0)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Once()
	ts.client.On("ConnectToServer", mock.Anything, m).Return(xfer.NewAuthenticationError(errLogin)).Once()

	_, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().ErrorIs(err, xfer.ErrAuthentication)
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 2)
}

func (ts *connectorTestSuite) TestConfigurationErrorFromClientIsNotRetried() {
	m := model(0, 0)
	m.ConnectionMode = xfer.Active
	ts.client.On("ConnectToServer", mock.Anything, m).
		Return(xfer.NewConfigurationError(errors.New("active mode unsupported"))).Once()

	_, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().ErrorIs(err, xfer.ErrConfiguration)
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 1)
}

func (ts *connectorTestSuite) TestInvalidModelMakesNoAttempt() {
	m := model()
	m.ConnectionType = xfer.SFTP
	m.Password = ""

	_, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().ErrorIs(err, xfer.ErrConfiguration)
	ts.client.AssertNotCalled(ts.T(), "ConnectToServer", mock.Anything, mock.Anything)
}

func (ts *connectorTestSuite) TestCancelledDuringWait() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := model(time.Minute, time.Minute)
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Once()

	connector := xfer.NewConnector(xfer.WithWaitFunc(func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}))

	result, err := connector.AuthAndConnect(ctx, ts.client, m)
	ts.Require().ErrorIs(err, xfer.ErrCancelled)
	ts.ErrorIs(err, context.Canceled)
	ts.Equal(xfer.ConnectionResult{}, result)
	ts.client.AssertNumberOfCalls(ts.T(), "ConnectToServer", 1)
}

func (ts *connectorTestSuite) TestCancelledBeforeFirstAttempt() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ts.connector.AuthAndConnect(ctx, ts.client, model())
	ts.Require().ErrorIs(err, xfer.ErrCancelled)
	ts.client.AssertNotCalled(ts.T(), "ConnectToServer", mock.Anything, mock.Anything)
}

func (ts *connectorTestSuite) TestDoesNotModifyModel() {
	backoff := []time.Duration{time.Second}
	m := model(backoff...)
	m.RetryBackoffDurations = backoff
	ts.client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Twice()

	_, err := ts.connector.AuthAndConnect(context.Background(), ts.client, m)
	ts.Require().NoError(err)
	ts.Equal([]time.Duration{time.Second}, backoff)
}

func TestDefaultWaitReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := mocks.NewClient(t)
	m := model(time.Hour)
	client.On("ConnectToServer", mock.Anything, m).Return(errRefused).Once()

	start := time.Now()
	_, err := xfer.AuthAndConnect(ctx, client, m)
	if !errors.Is(err, xfer.ErrCancelled) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if time.Since(start) > 10*time.Second {
		t.Fatalf("wait was not interrupted by the context")
	}
}
