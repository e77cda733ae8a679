// Package iohelper provides helper functions for I/O operations,
// particularly for safely reading HTTP response bodies with limits.
package iohelper

import (
	"io"
	"log/slog"
)

// ReadBody reads from an io.Reader with a size limit.
// If r is nil, returns an empty slice and no error.
// This prevents memory exhaustion from maliciously large responses.
//
// Usage:
//
//	body, err := iohelper.ReadBody(resp.Body, defaults.MaxBodySize+1)
//	defer resp.Body.Close()
//
// Callers that need to detect oversize (rather than silently cap) pass
// limit+1 and compare len(body) against the limit.
func ReadBody(r io.Reader, maxSize int64) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	return io.ReadAll(io.LimitReader(r, maxSize))
}

// ReadBodyOrLog reads the body using ReadBody and logs any read error.
// It returns the body bytes, which may be nil on error.
func ReadBodyOrLog(r io.Reader, maxSize int64, logger *slog.Logger) []byte {
	data, err := ReadBody(r, maxSize)
	if err != nil && logger != nil {
		logger.Warn("body read failed", slog.String("error", err.Error()))
	}
	return data
}
