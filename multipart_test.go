/************************************************************************************
 *
 * corde, A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marlow Dev
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corde

import (
	"strings"
	"testing"
)

func TestFilenameIsValid(t *testing.T) {
	valid := []string{"image.png", "my_file-1.jpg", "archive.tar.gz", "a", "A-Z_0-9.ext"}
	for _, name := range valid {
		if !FilenameIsValid(name) {
			t.Errorf("FilenameIsValid(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"",
		".",
		"..",
		"café.png",
		"a/b.png",
		"a\\b.png",
		"file\x00.png",
		"file name.png",
		"file\n.png",
		"日本語.png",
	}
	for _, name := range invalid {
		if FilenameIsValid(name) {
			t.Errorf("FilenameIsValid(%q) = true, want false", name)
		}
	}
}

func TestMultipartBuilder_PayloadAndFile(t *testing.T) {
	b := NewMultipartBuilder("boundary123")
	b.WritePayloadJSON([]byte(`{"content":"hi"}`))
	b.WriteFile(0, "image.png", "image/png", []byte{0xff, 0xd8})
	body, contentType := b.Close()

	if contentType != "multipart/form-data; boundary=boundary123" {
		t.Errorf("contentType = %q, want boundary123 content type", contentType)
	}

	s := string(body)
	if !strings.Contains(s, `name="payload_json"`) {
		t.Error("body missing payload_json part")
	}
	if !strings.Contains(s, `name="files[0]"; filename="image.png"`) {
		t.Error("body missing files[0] part")
	}
	if !strings.HasSuffix(s, "--boundary123--\r\n") {
		t.Error("body missing closing boundary")
	}
}

func TestMultipartBuilder_DefaultsContentType(t *testing.T) {
	b := NewMultipartBuilder("b")
	b.WriteFile(0, "data.bin", "", []byte("x"))
	body, _ := b.Close()

	if !strings.Contains(string(body), "Content-Type: application/octet-stream") {
		t.Error("expected default content type application/octet-stream")
	}
}
