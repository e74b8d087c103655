// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestProcess_PNGPassThrough(t *testing.T) {
	p := NewProcessor(0, 0)

	up, err := p.Process(bytes.NewReader(pngBytes(t, 40, 30)), "photo.png")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if up.MimeType != MimeTypePNG {
		t.Errorf("MimeType = %q", up.MimeType)
	}
	if up.Width != 40 || up.Height != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", up.Width, up.Height)
	}
	if up.Filename != "photo.png" {
		t.Errorf("Filename = %q", up.Filename)
	}

	// Output must itself decode as PNG.
	if _, err := png.Decode(bytes.NewReader(up.Data)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestProcess_BoundsLargeImages(t *testing.T) {
	p := NewProcessor(16, 90)

	up, err := p.Process(bytes.NewReader(pngBytes(t, 64, 32)), "big.png")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if up.Width != 16 || up.Height != 8 {
		t.Errorf("dimensions = %dx%d, want 16x8 (aspect preserved)", up.Width, up.Height)
	}
}

func TestProcess_JPEGQuality(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}

	up, err := NewProcessor(0, 0).Process(&buf, "pic.JPEG")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if up.MimeType != MimeTypeJPEG {
		t.Errorf("MimeType = %q", up.MimeType)
	}
	if up.Filename != "pic.jpeg" {
		t.Errorf("Filename = %q", up.Filename)
	}
}

func TestProcess_RejectsNonImage(t *testing.T) {
	_, err := NewProcessor(0, 0).Process(strings.NewReader("definitely not an image"), "note.txt")
	if err == nil {
		t.Fatal("expected error for non-image data")
	}
}

func TestProcess_StripsPathComponents(t *testing.T) {
	up, err := NewProcessor(0, 0).Process(bytes.NewReader(pngBytes(t, 4, 4)), "../../etc/passwd.png")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if up.Filename != "passwd.png" {
		t.Errorf("Filename = %q, want passwd.png", up.Filename)
	}
}

func TestIsSupported(t *testing.T) {
	for _, mt := range []string{MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP} {
		if !IsSupported(mt) {
			t.Errorf("IsSupported(%q) = false", mt)
		}
	}
	if IsSupported("image/tiff") {
		t.Error("TIFF must not be supported")
	}
	if IsSupported("application/pdf") {
		t.Error("PDF must not be supported")
	}
}

func TestDetectMimeType(t *testing.T) {
	if got := DetectMimeType(pngBytes(t, 2, 2)); got != MimeTypePNG {
		t.Errorf("DetectMimeType = %q, want %q", got, MimeTypePNG)
	}
}
