package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is implemented by each Crypt's private encoder settings
type EncoderOptions interface{}

// EncoderOption configures an encoder; options meant for another Crypt are ignored
type EncoderOption func(opts EncoderOptions)

// DecoderOptions is implemented by each Crypt's private decoder settings
type DecoderOptions interface{}

// DecoderOption configures a decoder; options meant for another Crypt are ignored
type DecoderOption func(opts DecoderOptions)
