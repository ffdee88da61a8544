//go:build xferintegration

// This file provides manual integration test runners for the core backends.
// It uses xfersimple which auto-registers all core backends via backend/all.

package testsuite

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/xfersimple"
)

type connection struct {
	client xfer.Client
	path   string
}

type xferTestSuite struct {
	suite.Suite
	connections map[string]connection
}

func (s *xferTestSuite) SetupSuite() {
	uris := os.Getenv("XFER_INTEGRATION_CONNECTIONS")
	s.connections = make(map[string]connection)
	for _, uri := range strings.Split(uris, ";") {
		if uri == "" {
			continue
		}
		client, p, result, err := xfersimple.Connect(context.Background(), uri)
		s.Require().NoError(err)
		s.Require().True(result.Connected)

		s.connections[client.ConnectionType().String()] = connection{client: client, path: p}
	}
}

func (s *xferTestSuite) TearDownSuite() {
	for _, c := range s.connections {
		_ = c.client.Disconnect()
	}
}

// TestScheme runs conformance tests for each configured connection
func (s *xferTestSuite) TestScheme() {
	for scheme, c := range s.connections {
		fmt.Printf("************** TESTING scheme: %s **************\n", scheme)

		opts := ConformanceOptions{
			SkipMissingDirectoryListing: scheme != xfer.SFTP.String(),
		}

		s.Run(scheme, func() {
			RunConformanceTests(s.T(), c.client, c.path, opts)
		})
	}
}

func TestXfer(t *testing.T) {
	suite.Run(t, new(xferTestSuite))
}
