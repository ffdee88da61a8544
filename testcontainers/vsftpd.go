package testcontainers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUsername = "admin"
	vsftpdPassword = "dummy"
)

// startVSFTPD runs a vsftpd container and returns an ftp uri, credentials included, for its home directory.
// Passive data ports are published one to one so the addresses vsftpd advertises are reachable.
func startVSFTPD(t *testing.T) string {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "xfer-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env: map[string]string{
				"FTP_USER": vsftpdUsername,
				"FTP_PASS": vsftpdPassword,
			},
			WaitingFor: wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)

	return fmt.Sprintf("ftp://%s:%s@%s:%s/?timeout=10s&backoff=1s,2s", vsftpdUsername, vsftpdPassword, host, port.Port())
}
