// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// File is an image attachment for a multipart request.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Form accumulates the fields and files of a multipart request in
// insertion order, mirroring how the backend's form binder reads them.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	name string
	file File
}

// Set adds a text field.
func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// SetInt adds an integer field.
func (f *Form) SetInt(name string, value int64) {
	f.Set(name, strconv.FormatInt(value, 10))
}

// SetFloat adds a decimal field.
func (f *Form) SetFloat(name string, value float64) {
	f.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
}

// SetBool adds a boolean field.
func (f *Form) SetBool(name string, value bool) {
	f.Set(name, strconv.FormatBool(value))
}

// SetFile adds a file part.
func (f *Form) SetFile(name string, file File) {
	f.files = append(f.files, formFile{name: name, file: file})
}

// encode writes the form out as a multipart/form-data body.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", field.name, err)
		}
	}
	for _, part := range f.files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(part.name), escapeQuotes(part.file.Name)))
		contentType := part.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		pw, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %s: %w", part.name, err)
		}
		if _, err := pw.Write(part.file.Data); err != nil {
			return nil, "", fmt.Errorf("writing file part %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
