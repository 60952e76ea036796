package ticket

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parsing limits. A login ticket request is a handful of short fields;
// anything near these bounds is not a plausible document.
const (
	maxDocumentSize = 64 * 1024
	maxElementDepth = 8
	maxChildren     = 64
)

// ErrDocumentTooLarge is returned when the input exceeds maxDocumentSize.
var ErrDocumentTooLarge = errors.New("document exceeds size limit")

// element is one node of a parsed document: its local name, attributes,
// child elements in document order, and accumulated character data.
type element struct {
	name     string
	attrs    []xml.Attr
	children []*element
	text     string
}

// attr returns the value of the named attribute and whether it is present.
func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// parseDocument reads one XML document from r into an element tree.
// Namespaces are ignored; only local names are kept. Syntax-level
// failures (unbalanced tags, bad entities, trailing content) are
// reported as wrapped decode errors, not shape violations.
func parseDocument(r io.Reader) (*element, error) {
	lr := &io.LimitedReader{R: r, N: maxDocumentSize + 1}
	dec := xml.NewDecoder(lr)

	var root *element
	var stack []*element
	var texts []*strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if lr.N <= 0 {
				return nil, ErrDocumentTooLarge
			}
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("failed to parse document: content after root element")
			}
			if len(stack) >= maxElementDepth {
				return nil, fmt.Errorf("failed to parse document: element depth exceeds %d", maxElementDepth)
			}
			el := &element{name: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				if len(parent.children) >= maxChildren {
					return nil, fmt.Errorf("failed to parse document: more than %d children under %q", maxChildren, parent.name)
				}
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})
		case xml.EndElement:
			top := stack[len(stack)-1]
			top.text = strings.TrimSpace(texts[len(texts)-1].String())
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		case xml.CharData:
			if len(stack) > 0 {
				texts[len(texts)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("failed to parse document: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("failed to parse document: unterminated element %q", stack[len(stack)-1].name)
	}
	return root, nil
}
