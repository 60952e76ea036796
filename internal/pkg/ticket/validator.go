package ticket

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"
)

const rootName = "loginTicketRequest"

// Canonical element order, per the serialized contract.
var (
	rootOrder   = []string{"header", "service"}
	headerOrder = []string{"source", "destination", "uniqueId", "generationTime", "expirationTime"}
)

// Validator checks a candidate XML document against the login ticket
// request shape. The zero value is a usable lenient validator: unknown
// elements and attributes are ignored and element order is not
// enforced. Validation is pure; a Validator may be shared across
// goroutines.
type Validator struct {
	// Strict rejects undeclared elements and attributes and enforces
	// the canonical element order.
	Strict bool

	// CheckExpiry additionally requires expirationTime to be later than
	// generationTime. This is a semantic check, not part of the
	// structural shape.
	CheckExpiry bool

	// FailFast stops at the first violation instead of collecting all.
	FailFast bool
}

// Validate reads one XML document from r and returns the typed request
// on success. On shape violations the returned error is a
// ValidationErrors value; syntax-level parse failures are returned as
// plain wrapped errors.
func (v *Validator) Validate(r io.Reader) (*LoginTicketRequest, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	return v.validateTree(root)
}

// ValidateBytes is Validate over an in-memory document.
func (v *Validator) ValidateBytes(doc []byte) (*LoginTicketRequest, error) {
	return v.Validate(bytes.NewReader(doc))
}

func (v *Validator) validateTree(root *element) (*LoginTicketRequest, error) {
	var errs ValidationErrors
	add := func(kind Kind, path, msg string) {
		errs = append(errs, &ValidationError{Kind: kind, Path: path, Msg: msg})
	}
	failed := func() bool { return v.FailFast && len(errs) > 0 }

	if root.name != rootName {
		add(UnexpectedField, root.name, fmt.Sprintf("expected root element %q", rootName))
		return nil, errs
	}

	version := DefaultVersion
	if raw, ok := root.attr("version"); ok {
		if isDecimal(raw) {
			version = raw
		} else {
			add(TypeMismatch, "version", fmt.Sprintf("must be a decimal, got %q", raw))
		}
	}
	if v.Strict {
		for _, a := range root.attrs {
			if a.Name.Local != "version" {
				add(UnexpectedField, a.Name.Local, "undeclared attribute on "+rootName)
			}
		}
	}
	if failed() {
		return nil, errs[:1]
	}

	children := v.groupChildren(root, "", rootOrder, add)
	if failed() {
		return nil, errs[:1]
	}

	var header Header
	switch heads := children["header"]; len(heads) {
	case 0:
		add(MissingField, "header", "required element is absent")
	default:
		if len(heads) > 1 {
			add(MultipleOccurrence, "header", fmt.Sprintf("declared once, appears %d times", len(heads)))
		}
		header = v.validateHeader(heads[0], add)
	}
	if failed() {
		return nil, errs[:1]
	}

	var service Service
	switch svcs := children["service"]; len(svcs) {
	case 0:
		add(MissingField, "service", "required element is absent")
	default:
		if len(svcs) > 1 {
			add(MultipleOccurrence, "service", fmt.Sprintf("declared once, appears %d times", len(svcs)))
		}
		if err := checkService("service", svcs[0].text); err != nil {
			errs = append(errs, err)
		} else {
			service = Service(svcs[0].text)
		}
	}

	if v.CheckExpiry && !header.GenerationTime.IsZero() && !header.ExpirationTime.IsZero() {
		if !header.ExpirationTime.After(header.GenerationTime) {
			add(ConstraintViolation, "header.expirationTime", "must be later than generationTime")
		}
	}

	if len(errs) > 0 {
		if v.FailFast {
			return nil, errs[:1]
		}
		return nil, errs
	}

	return &LoginTicketRequest{
		Version: version,
		Header:  header,
		Service: service,
	}, nil
}

// validateHeader checks the five header fields: source and destination
// at most once each, the rest exactly once with well-formed values.
func (v *Validator) validateHeader(head *element, add func(Kind, string, string)) Header {
	children := v.groupChildren(head, "header", headerOrder, add)

	var header Header
	text := func(name string, required bool) (string, bool) {
		path := "header." + name
		els := children[name]
		switch len(els) {
		case 0:
			if required {
				add(MissingField, path, "required element is absent")
			}
			return "", false
		case 1:
		default:
			add(MultipleOccurrence, path, fmt.Sprintf("declared once, appears %d times", len(els)))
		}
		return els[0].text, true
	}

	// source and destination are opaque text, no further constraint.
	header.Source, _ = text("source", false)
	header.Destination, _ = text("destination", false)

	if raw, ok := text("uniqueId", true); ok {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			add(TypeMismatch, "header.uniqueId", fmt.Sprintf("must be an unsigned integer, got %q", raw))
		} else {
			header.UniqueID = id
		}
	}
	if raw, ok := text("generationTime", true); ok {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			add(TypeMismatch, "header.generationTime", fmt.Sprintf("must be an RFC 3339 timestamp, got %q", raw))
		} else {
			header.GenerationTime = t
		}
	}
	if raw, ok := text("expirationTime", true); ok {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			add(TypeMismatch, "header.expirationTime", fmt.Sprintf("must be an RFC 3339 timestamp, got %q", raw))
		} else {
			header.ExpirationTime = t
		}
	}
	return header
}

// groupChildren buckets the child elements of parent by name. Unknown
// names are ignored in lenient mode and reported in strict mode, where
// the canonical sequence order is also enforced.
func (v *Validator) groupChildren(parent *element, prefix string, order []string, add func(Kind, string, string)) map[string][]*element {
	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	path := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	children := make(map[string][]*element)
	last := -1
	for _, child := range parent.children {
		idx, known := pos[child.name]
		if !known {
			if v.Strict {
				add(UnexpectedField, path(child.name), "undeclared element")
			}
			continue
		}
		children[child.name] = append(children[child.name], child)
		if v.Strict {
			if idx < last {
				add(UnexpectedField, path(child.name), "element out of canonical order")
			}
			last = idx
			if len(child.attrs) > 0 {
				add(UnexpectedField, path(child.name), "undeclared attribute on "+child.name)
			}
		}
	}
	return children
}

// isDecimal reports whether s looks like an unsigned decimal number:
// one or more digits with at most one fractional part.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot && digits > 0 && i < len(s)-1:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
