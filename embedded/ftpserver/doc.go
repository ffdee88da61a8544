/*
Package ftpserver runs an FTP or FTPS server inside the test process.

The server is built on github.com/fclairamb/ftpserverlib. Each user configured with WithUser is jailed in its own
home directory, an afero.BasePathFs below the server root. FTPS is served with implicit or explicit TLS and a
generated self-signed certificate. Passive and active data connections are both accepted.

	server, err := ftpserver.Start(
		ftpserver.WithUser("bob", "s3cr3t"),
		ftpserver.WithTLS(ftpserver.ImplicitTLS),
	)
	if err != nil {
		#handle error
	}
	defer server.Stop()

	model := xfer.ConnectionModel{
		ConnectionType: xfer.FTPS,
		Variant:        xfer.Implicit,
		Host:           server.Host(),
		Port:           server.Port(),
		Username:       "bob",
		Password:       "s3cr3t",
	}

It is meant for tests only.
*/
package ftpserver
