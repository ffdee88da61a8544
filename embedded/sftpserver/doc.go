/*
Package sftpserver runs an SFTP server inside the test process.

The server authenticates one user with a password, a set of public keys or both, presents an RSA (default) or
ED25519 host key and serves files from a directory. Client paths are resolved below that directory.

	key, _ := sftpserver.GenerateKey(sftpserver.ED25519, 0, "")
	server, err := sftpserver.Start(
		sftpserver.WithPassword("bob", "s3cr3t"),
		sftpserver.WithAuthorizedKey("bob", key.PublicKey()),
	)
	if err != nil {
		#handle error
	}
	defer server.Stop()

	model := xfer.ConnectionModel{
		ConnectionType: xfer.SFTP,
		Host:           server.Host(),
		Port:           server.Port(),
		Username:       "bob",
		PrivateKey:     string(key.PEM),
	}

It is meant for tests only.
*/
package sftpserver
