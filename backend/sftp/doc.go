/*
Package sftp SFTP implementation of xfer.Client.

Usage

	import (
		"github.com/valensas/xfer"
		"github.com/valensas/xfer/backend/sftp"
	)

	func DoSomething(ctx context.Context) error {
		client := sftp.NewClient()

		result, err := xfer.AuthAndConnect(ctx, client, xfer.ConnectionModel{
			ConnectionType: xfer.SFTP,
			Host:           "server.com",
			Port:           22,
			Username:       "someuser",
			PrivateKey:     string(pemBytes),
		})
		if err != nil {
			#handle error
		}
		if !result.Connected {
			#handle exhausted retries
		}
		defer client.Disconnect()
		...
	}

Authentication

sftp accepts a password, a PEM encoded private key (with or without a passphrase) or both. When both are set the
key is offered first.

Note that as of Go 1.12, OPENSSH private key format is not supported when encrypted (with passphrase).
See https://github.com/golang/go/issues/18692
To force creation of PEM format(instead of OPENSSH format), use `ssh-keygen -m PEM`

A server rejecting every offered method fails with an error matching xfer.ErrAuthentication, which the retry engine
never retries.

KNOWN HOSTS

Host keys are not checked unless ConnectionModel.StrictHostKeyChecking is "yes". When it is, the known host lookup
goes, in order:
1. Options.KnownHostsCallback (or WithKnownHostsCallback), any ssh.HostKeyCallback.
2. Options.KnownHostsString which accepts an authorized_keys style line, ie: "ssh-ed25519 AAAA...".
3. Options.KnownHostsFile or environmental variable XFER_SFTP_KNOWN_HOSTS_FILE which accepts a path to a known_hosts file.
4. Environmental variable XFER_SFTP_INSECURE_KNOWN_HOSTS sets the callback to ssh.InsecureIgnoreHostKey, which may be
   helpful for testing but should not be used in production.
5. Defaults to <homedir>/.ssh/known_hosts and, for unix, the system-wide /etc/ssh/ssh_known_hosts.

A host key that doesn't match fails with an error matching xfer.ErrConfiguration.

PROXY

WithDialer routes the ssh connection through any proxy.Dialer, ie: proxy.SOCKS5. ConnectionModel.ConnectionTimeout
bounds both the dial and the ssh handshake.
*/
package sftp
