package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="profilePicture"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["profilePicture"][0]
}

func TestLocalStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save(uploadHeader(t, "me.png", "image/png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if filepath.Ext(name) != ".png" {
		t.Fatalf("expected stored name to keep the extension, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, got %v", err)
	}

	// Removing an already-removed or empty name is not an error.
	if err := store.Remove(name); err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Fatalf("empty remove failed: %v", err)
	}
}

func TestLocalStore_RejectsUnsupportedType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save(uploadHeader(t, "evil.sh", "application/x-sh", []byte("#!/bin/sh"))); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestLocalStore_RejectsOversizedFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 8)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save(uploadHeader(t, "big.jpg", "image/jpeg", []byte("way more than eight bytes"))); err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestLocalStore_UniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	a, err := store.Save(uploadHeader(t, "same.jpg", "image/jpeg", []byte("one")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	b, err := store.Save(uploadHeader(t, "same.jpg", "image/jpeg", []byte("two")))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct stored names for identical uploads")
	}
}
