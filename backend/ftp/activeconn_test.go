package ftp

import (
	"bytes"
	"os"
	"testing"
	"time"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/secsy/goftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	mtime time.Time
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() os.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return fi.mtime }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

func TestEntry(t *testing.T) {
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		info     fileInfo
		expected _ftp.EntryType
	}{
		{info: fileInfo{name: "report.csv", size: 42, mtime: mtime}, expected: _ftp.EntryTypeFile},
		{info: fileInfo{name: "inbound", size: 4096, mode: os.ModeDir, mtime: mtime}, expected: _ftp.EntryTypeFolder},
		{info: fileInfo{name: "latest", mode: os.ModeSymlink, mtime: mtime}, expected: _ftp.EntryTypeLink},
	}

	for _, tt := range tests {
		t.Run(tt.info.name, func(t *testing.T) {
			e := entry(tt.info)
			assert.Equal(t, tt.info.name, e.Name)
			assert.Equal(t, uint64(tt.info.size), e.Size) //nolint:gosec
			assert.Equal(t, mtime, e.Time)
			assert.Equal(t, tt.expected, e.Type)
		})
	}
}

func TestNewActiveConn(t *testing.T) {
	conn, err := newActiveConn("ftp.acme.com:21", goftp.Config{Timeout: time.Second})
	require.NoError(t, err)

	active, ok := conn.(*activeConn)
	require.True(t, ok)
	assert.True(t, active.config.ActiveTransfers)
	assert.Equal(t, time.Second, active.config.Timeout)
	assert.Equal(t, "ftp.acme.com:21", active.addr)

	assert.NoError(t, conn.Type(_ftp.TransferTypeBinary))
	assert.NoError(t, conn.Quit(), "quit before login is a no-op")
}

func TestStartWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &startWriter{w: buf, started: make(chan struct{})}

	select {
	case <-w.started:
		t.Fatal("started before the first write")
	default:
	}

	_, err := w.Write([]byte("he"))
	require.NoError(t, err)
	_, err = w.Write([]byte("llo"))
	require.NoError(t, err)

	<-w.started
	assert.Equal(t, "hello", buf.String())
}
