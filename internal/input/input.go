// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// input.go - File reading, size capping, and encoding detection.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrInputTooLarge is returned when a file exceeds the configured size cap.
var ErrInputTooLarge = errors.New("input file too large")

// BOM prefixes checked during encoding detection.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadFile reads path, enforcing maxBytes (0 disables the cap), and
// returns the decoded UTF-8 text along with the detected encoding name.
func ReadFile(path string, maxBytes int64) (text string, encoding string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return "", "", fmt.Errorf("reading %s: is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", "", fmt.Errorf("%w: %s is %d bytes (cap %d)", ErrInputTooLarge, path, info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	text, encoding, err = Decode(data)
	if err != nil {
		return "", "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return text, encoding, nil
}

// Decode detects the encoding of data, strips any BOM, and returns the
// content as UTF-8 together with the detected encoding name.
//
// Detection order: UTF-8 BOM, UTF-16 LE/BE BOM, bare valid UTF-8, then
// Latin-1 as the fallback. Latin-1 maps every byte to a code point, so
// decoding never fails outright; genuinely binary input still comes out
// as text, which is acceptable for a tool scoped to text files.
func Decode(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "utf-8", nil
	}

	if bytes.HasPrefix(data, bomUTF8) {
		return string(data[len(bomUTF8):]), "utf-8-bom", nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data[len(bomUTF16LE):])
		if err != nil {
			return "", "", fmt.Errorf("UTF-16 LE decode failed: %w", err)
		}
		return string(decoded), "utf-16le", nil
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data[len(bomUTF16BE):])
		if err != nil {
			return "", "", fmt.Errorf("UTF-16 BE decode failed: %w", err)
		}
		return string(decoded), "utf-16be", nil
	}

	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("Latin-1 decode failed: %w", err)
	}
	return string(decoded), "latin-1", nil
}
