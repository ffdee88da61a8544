package utils_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/valensas/xfer/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

type slashTest struct {
	path     string
	expected string
	message  string
}

func (s *utilsSuite) TestEnsureLeadingSlash() {
	tests := []slashTest{
		{
			path:     "some/path/",
			expected: "/some/path/",
			message:  "no slash - adding one",
		},
		{
			path:     "/some/path/",
			expected: "/some/path/",
			message:  "slash found - don't add one",
		},
		{
			path:     "",
			expected: "/",
			message:  "empty string - add slash",
		},
	}

	for _, slashtest := range tests {
		s.Run(slashtest.message, func() {
			s.Equal(slashtest.expected, utils.EnsureLeadingSlash(slashtest.path), slashtest.message)
		})
	}
}

func (s *utilsSuite) TestRemoveLeadingSlash() {
	s.Equal("some/path/", utils.RemoveLeadingSlash("//some/path/"))
	s.Equal("", utils.RemoveLeadingSlash(""))
}

func (s *utilsSuite) TestIsDotEntry() {
	s.True(utils.IsDotEntry("."))
	s.True(utils.IsDotEntry(".."))
	s.False(utils.IsDotEntry(".hidden"))
	s.False(utils.IsDotEntry("..."))
}

func (s *utilsSuite) TestPathSegments() {
	tests := []struct {
		path     string
		expected []string
		message  string
	}{
		{path: "/a/b/c", expected: []string{"/a", "/a/b", "/a/b/c"}, message: "absolute path"},
		{path: "a/b/", expected: []string{"a", "a/b"}, message: "relative path with trailing slash"},
		{path: "/a//b/./c/../d", expected: []string{"/a", "/a/b", "/a/b/d"}, message: "path is cleaned first"},
		{path: "single", expected: []string{"single"}, message: "single segment"},
		{path: "/", expected: nil, message: "root"},
		{path: ".", expected: nil, message: "current directory"},
		{path: "", expected: nil, message: "empty"},
	}

	for _, tt := range tests {
		s.Run(tt.message, func() {
			s.Equal(tt.expected, utils.PathSegments(tt.path))
		})
	}
}

type writeRecorder struct {
	bytes.Buffer
	writes int
}

func (w *writeRecorder) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func (s *utilsSuite) TestTouchCopyBuffered() {
	w := &writeRecorder{}
	n, err := utils.TouchCopyBuffered(w, strings.NewReader("hello world"), 0)
	s.Require().NoError(err)
	s.Equal(int64(11), n)
	s.Equal("hello world", w.String())

	empty := &writeRecorder{}
	n, err = utils.TouchCopyBuffered(empty, strings.NewReader(""), utils.TouchCopyMinBufferSize*2)
	s.Require().NoError(err)
	s.Zero(n)
	s.Equal(1, empty.writes, "an empty source still produces a write")

	_, err = utils.TouchCopyBuffered(failingWriter{}, strings.NewReader("data"), 0)
	s.EqualError(err, "disk full")

	_, err = utils.TouchCopyBuffered(io.Discard, iotestErrReader{}, 0)
	s.EqualError(err, "read failed")
}

type iotestErrReader struct{}

func (iotestErrReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
