// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input reads and decodes the text files handed to the engine.
package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestReadFile_PlainUTF8(t *testing.T) {
	path := writeTemp(t, "plain.txt", []byte("hello\nworld\n"))

	text, enc, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if enc != "utf-8" {
		t.Errorf("Expected encoding utf-8, got %s", enc)
	}
	if text != "hello\nworld\n" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestReadFile_UTF8BOM(t *testing.T) {
	path := writeTemp(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...))

	text, enc, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if enc != "utf-8-bom" {
		t.Errorf("Expected encoding utf-8-bom, got %s", enc)
	}
	if text != "hi" {
		t.Errorf("BOM not stripped, got %q", text)
	}
}

func TestReadFile_UTF16LE(t *testing.T) {
	// "ab" in UTF-16 LE with BOM.
	data := []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00}
	path := writeTemp(t, "utf16le.txt", data)

	text, enc, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if enc != "utf-16le" {
		t.Errorf("Expected encoding utf-16le, got %s", enc)
	}
	if text != "ab" {
		t.Errorf("Expected %q, got %q", "ab", text)
	}
}

func TestReadFile_UTF16BE(t *testing.T) {
	data := []byte{0xFE, 0xFF, 0x00, 'a', 0x00, 'b'}
	path := writeTemp(t, "utf16be.txt", data)

	text, enc, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if enc != "utf-16be" {
		t.Errorf("Expected encoding utf-16be, got %s", enc)
	}
	if text != "ab" {
		t.Errorf("Expected %q, got %q", "ab", text)
	}
}

func TestReadFile_Latin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in Latin-1 and invalid as a standalone UTF-8 byte.
	path := writeTemp(t, "latin1.txt", []byte{'c', 'a', 'f', 0xE9})

	text, enc, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if enc != "latin-1" {
		t.Errorf("Expected encoding latin-1, got %s", enc)
	}
	if text != "café" {
		t.Errorf("Expected %q, got %q", "café", text)
	}
}

func TestReadFile_SizeCap(t *testing.T) {
	path := writeTemp(t, "big.txt", []byte("0123456789"))

	_, _, err := ReadFile(path, 5)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Expected ErrInputTooLarge, got %v", err)
	}

	// The cap is inclusive of exactly-sized files.
	if _, _, err := ReadFile(path, 10); err != nil {
		t.Errorf("File at the cap should read fine, got %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), 0)
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadFile_Directory(t *testing.T) {
	if _, _, err := ReadFile(t.TempDir(), 0); err == nil {
		t.Fatal("Expected error reading a directory, got nil")
	}
}

func TestDecode_Empty(t *testing.T) {
	text, enc, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "" || enc != "utf-8" {
		t.Errorf("Decode(nil) = (%q, %s), want (\"\", utf-8)", text, enc)
	}
}
