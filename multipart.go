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
	"fmt"
	"strconv"
)

// FilenameIsValid reports whether name is acceptable as an upload
// filename. It is an allow-list, not a deny-list: name must be
// non-empty, must not be "." or "..", and every byte must be an ASCII
// letter, digit, underscore, dot, or hyphen. This rejects path
// separators and control bytes as a side effect of the allow-list,
// along with non-ASCII filenames that would need percent-encoding in
// a Content-Disposition header.
func FilenameIsValid(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}

// multipartFile is a single file part to attach to a request.
type multipartFile struct {
	fieldName   string
	filename    string
	contentType string
	data        []byte
}

// MultipartBuilder hand-assembles an RFC 2046 multipart/form-data body
// for attachment upload endpoints. It is built directly on
// GrowableBuffer rather than mime/multipart so the exact part order
// (payload_json first, then files[n] in index order) and the
// terminator sequence are deterministic and test-inspectable.
type MultipartBuilder struct {
	boundary string
	buf      *GrowableBuffer
	started  bool
	closed   bool
}

// NewMultipartBuilder creates a builder using boundary as the MIME
// boundary token. The caller is responsible for boundary uniqueness;
// a Snowflake or random hex string is the usual choice.
func NewMultipartBuilder(boundary string) *MultipartBuilder {
	return &MultipartBuilder{boundary: boundary, buf: NewGrowableBuffer(512)}
}

func (m *MultipartBuilder) writePartHeader(name string) {
	if m.started {
		m.buf.Append([]byte("\r\n"))
	}
	m.started = true
	m.buf.Append([]byte("--" + m.boundary + "\r\n"))
	m.buf.Append([]byte(`Content-Disposition: form-data; name="` + name + `"` + "\r\n\r\n"))
}

// WritePayloadJSON writes the payload_json field: the JSON body of the
// request, carried as a form field rather than the request body proper
// so it can ride alongside binary file parts.
func (m *MultipartBuilder) WritePayloadJSON(body []byte) *MultipartBuilder {
	if m.closed {
		return m
	}
	m.writePartHeader("payload_json")
	m.buf.Append(body)
	return m
}

// WriteFile appends a files[index] part. filename must satisfy
// FilenameIsValid; callers validate before calling.
func (m *MultipartBuilder) WriteFile(index int, filename, contentType string, data []byte) *MultipartBuilder {
	if m.closed {
		return m
	}
	name := "files[" + strconv.Itoa(index) + "]"
	if m.started {
		m.buf.Append([]byte("\r\n"))
	}
	m.started = true
	m.buf.Append([]byte("--" + m.boundary + "\r\n"))
	m.buf.Append([]byte(fmt.Sprintf(
		`Content-Disposition: form-data; name="%s"; filename="%s"`+"\r\n", name, filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	m.buf.Append([]byte("Content-Type: " + contentType + "\r\n\r\n"))
	m.buf.Append(data)
	return m
}

// Close writes the closing boundary and returns the finished body
// along with its Content-Type header value. The builder must not be
// used after Close.
func (m *MultipartBuilder) Close() (body []byte, contentType string) {
	if !m.closed {
		m.buf.Append([]byte("\r\n--" + m.boundary + "--\r\n"))
		m.closed = true
	}
	return m.buf.Bytes(), "multipart/form-data; boundary=" + m.boundary
}
