/*
Package testcontainers runs the backend conformance suite against real servers. It uses the local Docker daemon to
run vsftpd for FTP and atmoz/sftp for SFTP, then connects to them through xfersimple URIs.

It lives in its own module so the testcontainers dependency tree stays out of the library's go.mod.
*/
package testcontainers
