package iohelper

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadBody_NilReader(t *testing.T) {
	body, err := ReadBody(nil, 1024)
	if err != nil {
		t.Errorf("Expected no error for nil reader, got %v", err)
	}
	if len(body) != 0 {
		t.Errorf("Expected empty body for nil reader, got %d bytes", len(body))
	}
}

func TestReadBody_UnderLimit(t *testing.T) {
	body, err := ReadBody(strings.NewReader("hello"), 1024)
	if err != nil {
		t.Fatalf("ReadBody failed: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("Expected %q, got %q", "hello", string(body))
	}
}

func TestReadBody_TruncatesAtLimit(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 100)
	body, err := ReadBody(bytes.NewReader(data), 10)
	if err != nil {
		t.Fatalf("ReadBody failed: %v", err)
	}
	if len(body) != 10 {
		t.Errorf("Expected 10 bytes, got %d", len(body))
	}
}

func TestReadBody_LimitPlusOneDetectsOversize(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 100)
	body, err := ReadBody(bytes.NewReader(data), 51)
	if err != nil {
		t.Fatalf("ReadBody failed: %v", err)
	}
	if int64(len(body)) <= 50 {
		t.Errorf("Expected more than 50 bytes to signal oversize, got %d", len(body))
	}
}
