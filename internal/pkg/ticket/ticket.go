// Package ticket models the login ticket request message: a request for
// temporary access credentials to a web-service node, issued by a client
// entity. The package provides the typed message, a shape validator over
// XML documents, the canonical encoder, and a builder for fresh requests.
package ticket

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// DefaultVersion is the protocol version assumed when the version
// attribute is absent from the root element.
const DefaultVersion = "1.0"

// Header carries the addressing and lifetime fields of a request.
// Source and Destination are opaque text; an empty string means the
// field is absent from the document.
type Header struct {
	Source         string
	Destination    string
	UniqueID       uint64
	GenerationTime time.Time
	ExpirationTime time.Time
}

// LoginTicketRequest is a fully validated request message. Values are
// produced by a Validator or a Builder and are not mutated afterwards.
//
// Version holds the source text of the version attribute so that a
// value like "1.10" survives re-encoding unchanged.
type LoginTicketRequest struct {
	Version string
	Header  Header
	Service Service
}

// xmlRequest mirrors the canonical serialized form. Element order is
// fixed: header then service, and inside header source, destination,
// uniqueId, generationTime, expirationTime.
type xmlRequest struct {
	XMLName xml.Name  `xml:"loginTicketRequest"`
	Version string    `xml:"version,attr"`
	Header  xmlHeader `xml:"header"`
	Service string    `xml:"service"`
}

type xmlHeader struct {
	Source         string `xml:"source,omitempty"`
	Destination    string `xml:"destination,omitempty"`
	UniqueID       uint64 `xml:"uniqueId"`
	GenerationTime string `xml:"generationTime"`
	ExpirationTime string `xml:"expirationTime"`
}

// Encode writes the canonical XML form of the request: fixed element
// order, two-space indent, trailing newline. Timestamps are rendered in
// RFC 3339 / xsd:dateTime form.
func (r *LoginTicketRequest) Encode(w io.Writer) error {
	version := r.Version
	if version == "" {
		version = DefaultVersion
	}
	doc := xmlRequest{
		Version: version,
		Header: xmlHeader{
			Source:         r.Header.Source,
			Destination:    r.Header.Destination,
			UniqueID:       r.Header.UniqueID,
			GenerationTime: r.Header.GenerationTime.Format(time.RFC3339),
			ExpirationTime: r.Header.ExpirationTime.Format(time.RFC3339),
		},
		Service: string(r.Service),
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode login ticket request: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to encode login ticket request: %w", err)
	}
	return nil
}

// Marshal returns the canonical XML form as a byte slice.
func (r *LoginTicketRequest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
