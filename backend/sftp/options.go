package sftp

import (
	"context"
	"fmt"
	"net"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/utils"
)

const (
	systemWideKnownHosts = "/etc/ssh/ssh_known_hosts"

	envKnownHostsFile     = "XFER_SFTP_KNOWN_HOSTS_FILE"
	envInsecureKnownHosts = "XFER_SFTP_INSECURE_KNOWN_HOSTS"
)

// Options holds sftp-specific options. The known hosts fields only matter when a ConnectionModel asks for host key
// verification, ie: StrictHostKeyChecking is "yes". Empty algorithm lists leave the x/crypto/ssh defaults in place.
type Options struct {
	KnownHostsFile     string              `json:"knownHostsFile,omitempty"` // env var XFER_SFTP_KNOWN_HOSTS_FILE
	KnownHostsString   string              `json:"knownHostsString,omitempty"`
	KnownHostsCallback ssh.HostKeyCallback `json:"-"` // env var XFER_SFTP_INSECURE_KNOWN_HOSTS
	HostKeyAlgorithms  []string            `json:"hostKeyAlgorithms,omitempty"`
	Ciphers            []string            `json:"ciphers,omitempty"`
	MACs               []string            `json:"macs,omitempty"`
	KeyExchanges       []string            `json:"keyExchanges,omitempty"`
}

// Note that as of 1.12, OPENSSH private key format is not supported when encrypt (with passphrase).
// See https://github.com/golang/go/issues/18692
// To force creation of PEM format(instead of OPENSSH format), use ssh-keygen -m PEM

func (c *Client) clientConfig(model xfer.ConnectionModel) (*ssh.ClientConfig, error) {
	authMethods, err := getAuthMethods(model)
	if err != nil {
		return nil, xfer.NewConfigurationError(err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if model.StrictHostKeyChecking == xfer.StrictHostKeyCheckingYes {
		// get callback for handling known_hosts man-in-the-middle checks
		hostKeyCallback, err = getHostKeyCallback(c.options)
		if err != nil {
			return nil, xfer.NewConfigurationError(err)
		}
	}

	return &ssh.ClientConfig{
		User:              model.Username,
		Auth:              authMethods,
		HostKeyCallback:   hostKeyCallback,
		HostKeyAlgorithms: c.options.HostKeyAlgorithms,
		Timeout:           model.ConnectionTimeout,
		Config: ssh.Config{
			Ciphers:      c.options.Ciphers,
			MACs:         c.options.MACs,
			KeyExchanges: c.options.KeyExchanges,
		},
	}, nil
}

// getHostKeyCallback gets host key callback for all known_hosts files
func getHostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	switch {

	// use explicit callback in Options
	case opts.KnownHostsCallback != nil:
		return opts.KnownHostsCallback, nil

	case opts.KnownHostsString != "":
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(opts.KnownHostsString))
		if err != nil {
			return nil, err
		}
		return ssh.FixedHostKey(hostKey), nil
	}

	// use explicit or env var known_hosts file path, ie, /home/bob/.ssh/known_hosts
	for _, file := range []string{opts.KnownHostsFile, os.Getenv(envKnownHostsFile)} {
		if file == "" {
			continue
		}
		// check first to prevent auto-vivification of file
		found, err := foundFile(file)
		if err != nil {
			return nil, err
		}
		if found {
			return knownhosts.New(file)
		}
	}

	if os.Getenv(envInsecureKnownHosts) != "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}

	// use user/system-wide known_hosts paths (as defined by OpenSSH https://man.openbsd.org/ssh)
	knownHostsFiles, err := findHomeSystemKnownHosts(nil)
	if err != nil {
		return nil, err
	}
	if len(knownHostsFiles) == 0 {
		return nil, errNoKnownHosts
	}

	// get host key callback for all known_hosts files
	return knownhosts.New(knownHostsFiles...)
}

func findHomeSystemKnownHosts(knownHostsFiles []string) ([]string, error) {
	// add ~/.ssh/known_hosts
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	homeKnownHostsPath := utils.EnsureLeadingSlash(path.Join(home, ".ssh/known_hosts"))

	found, err := foundFile(homeKnownHostsPath)
	if err != nil {
		return nil, err
	}
	if found {
		knownHostsFiles = append(knownHostsFiles, homeKnownHostsPath)
	}

	// add /etc/ssh/ssh_known_hosts for unix-like systems. SSH doesn't exist natively on Windows and each
	// implementation has a different location for known_hosts. Better to specify in KnownHostsFile for Windows
	if runtime.GOOS != "windows" {
		found, err := foundFile(systemWideKnownHosts)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, systemWideKnownHosts)
		}
	}
	return knownHostsFiles, nil
}

func foundFile(file string) (bool, error) {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// getAuthMethods offers the private key first, when set, then the password.
func getAuthMethods(model xfer.ConnectionModel) ([]ssh.AuthMethod, error) {
	auth := make([]ssh.AuthMethod, 0, 2)

	if model.PrivateKey != "" {
		signer, err := parsePrivateKey([]byte(model.PrivateKey), []byte(model.PrivateKeyPassphrase))
		if err != nil {
			return nil, err
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}

	if model.Password != "" {
		auth = append(auth, ssh.Password(model.Password))
	}

	return auth, nil
}

// parsePrivateKey parses a PEM encoded private key. When a passphrase is given but the key turns out not to be
// encrypted, the key is parsed as plain text.
func parsePrivateKey(key, passphrase []byte) (ssh.Signer, error) {
	if len(passphrase) > 0 {
		signer, err := ssh.ParsePrivateKeyWithPassphrase(key, passphrase)
		if err == nil {
			return signer, nil
		}
		if signer, plainErr := ssh.ParsePrivateKey(key); plainErr == nil {
			return signer, nil
		}
		return nil, fmt.Errorf("%w: %w", errParsePrivateKey, err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errParsePrivateKey, err)
	}
	return signer, nil
}

// dialContext opens the tcp connection the ssh handshake runs over, through dialer when it isn't nil.
func dialContext(ctx context.Context, dialer proxy.Dialer, addr string, timeout time.Duration) (net.Conn, error) {
	if dialer == nil {
		d := &net.Dialer{Timeout: timeout}
		return d.DialContext(ctx, "tcp", addr)
	}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, "tcp", addr)
	}
	return dialer.Dial("tcp", addr)
}
