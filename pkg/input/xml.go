package input

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Persisted binding file format:
//
//	<input>
//	  <action_set>
//	    <action name="horizontal">
//	      <axis device="Joystick" value="LeftStickX" invert="false"/>
//	      <button device="Keyboard" positive="D" negative="A" invert="false"/>
//	    </action>
//	  </action_set>
//	</input>
//
// Element and attribute names are case-insensitive on read and canonical on
// write. Identifiers are written in their canonical symbolic spelling so
// files round-trip regardless of how bindings were entered.

const (
	xmlRootElem   = "input"
	xmlSetElem    = "action_set"
	xmlActionElem = "action"
	xmlButtonElem = "button"
	xmlAxisElem   = "axis"
)

// WriteXML writes the set in its canonical textual form: actions in
// insertion order, bindings in priority order.
func (s *ActionSet) WriteXML(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("<" + xmlRootElem + ">\n")
	buf.WriteString("  <" + xmlSetElem + ">\n")
	for _, key := range s.order {
		a := s.actions[key]
		if a.Len() == 0 {
			fmt.Fprintf(&buf, "    <%s name=\"%s\"/>\n", xmlActionElem, escapeXML(a.Name()))
			continue
		}
		fmt.Fprintf(&buf, "    <%s name=\"%s\">\n", xmlActionElem, escapeXML(a.Name()))
		for _, b := range a.bindings {
			writeBindingXML(&buf, b)
		}
		fmt.Fprintf(&buf, "    </%s>\n", xmlActionElem)
	}
	buf.WriteString("  </" + xmlSetElem + ">\n")
	buf.WriteString("</" + xmlRootElem + ">\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func writeBindingXML(buf *bytes.Buffer, b Binding) {
	switch b.Kind {
	case KindAxis:
		fmt.Fprintf(buf, "      <%s device=\"%s\" value=\"%s\"",
			xmlAxisElem, b.Device, escapeXML(canonicalName(b.Device, b.Kind, b.Positive)))
		if b.Negative != "" {
			fmt.Fprintf(buf, " negative=\"%s\"", escapeXML(canonicalName(b.Device, b.Kind, b.Negative)))
		}
	default:
		fmt.Fprintf(buf, "      <%s device=\"%s\"", xmlButtonElem, b.Device)
		if b.Positive != "" {
			fmt.Fprintf(buf, " positive=\"%s\"", escapeXML(canonicalName(b.Device, b.Kind, b.Positive)))
		}
		if b.Negative != "" {
			fmt.Fprintf(buf, " negative=\"%s\"", escapeXML(canonicalName(b.Device, b.Kind, b.Negative)))
		}
	}
	fmt.Fprintf(buf, " invert=\"%t\"/>\n", b.Invert)
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// String returns the canonical serialized form.
func (s *ActionSet) String() string {
	var buf bytes.Buffer
	_ = s.WriteXML(&buf)
	return buf.String()
}

// ReadXML parses a persisted binding file and replaces the set's contents.
// The load is all-or-nothing: any malformed element, unknown device or
// unknown identifier fails the whole read and leaves the set untouched.
func (s *ActionSet) ReadXML(r io.Reader) error {
	tmp := NewActionSet(s.log)
	dec := xml.NewDecoder(r)
	rootSeen := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("input: parse bindings: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case !rootSeen:
			if !strings.EqualFold(se.Name.Local, xmlRootElem) {
				return fmt.Errorf("input: parse bindings: unexpected root element <%s>", se.Name.Local)
			}
			rootSeen = true
		case strings.EqualFold(se.Name.Local, xmlSetElem):
			// contents handled element by element
		case strings.EqualFold(se.Name.Local, xmlActionElem):
			if err := readAction(dec, se, tmp); err != nil {
				return err
			}
		default:
			return fmt.Errorf("input: parse bindings: unexpected element <%s>", se.Name.Local)
		}
	}
	if !rootSeen {
		return fmt.Errorf("input: parse bindings: missing <%s> root element", xmlRootElem)
	}
	s.replaceContents(tmp)
	return nil
}

func readAction(dec *xml.Decoder, start xml.StartElement, dst *ActionSet) error {
	name, ok := findAttr(start, "name")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("input: parse bindings: <%s> missing name attribute", xmlActionElem)
	}
	a := NewAction(name)
	if !ValidActionName(a.Name()) {
		return fmt.Errorf("input: parse bindings: invalid action name %q", name)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("input: parse bindings: action %q: %w", a.Name(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			b, err := readBinding(t)
			if err != nil {
				return fmt.Errorf("input: parse bindings: action %q: %w", a.Name(), err)
			}
			if !a.Add(b) {
				return fmt.Errorf("input: parse bindings: action %q: binding %s/%s conflicts with an earlier binding",
					a.Name(), b.Positive, b.Negative)
			}
			if err := dec.Skip(); err != nil {
				return fmt.Errorf("input: parse bindings: action %q: %w", a.Name(), err)
			}
		case xml.EndElement:
			if !dst.Add(a, false) {
				return fmt.Errorf("input: parse bindings: duplicate action %q", a.Name())
			}
			return nil
		}
	}
}

func readBinding(start xml.StartElement) (Binding, error) {
	var b Binding
	switch {
	case strings.EqualFold(start.Name.Local, xmlButtonElem):
		b.Kind = KindButton
	case strings.EqualFold(start.Name.Local, xmlAxisElem):
		b.Kind = KindAxis
	default:
		return b, fmt.Errorf("unexpected element <%s>", start.Name.Local)
	}

	devStr, ok := findAttr(start, "device")
	if !ok {
		return b, fmt.Errorf("<%s> missing device attribute", start.Name.Local)
	}
	dev, err := ParseDevice(devStr)
	if err != nil {
		return b, err
	}
	b.Device = dev

	if b.Kind == KindAxis {
		value, ok := findAttr(start, "value")
		if !ok || value == "" {
			return b, fmt.Errorf("<%s> missing value attribute", xmlAxisElem)
		}
		b.Positive = value
		b.Negative, _ = findAttr(start, "negative")
	} else {
		b.Positive, _ = findAttr(start, "positive")
		b.Negative, _ = findAttr(start, "negative")
		if b.Positive == "" && b.Negative == "" {
			return b, fmt.Errorf("<%s> requires a positive and/or negative attribute", xmlButtonElem)
		}
	}

	if inv, ok := findAttr(start, "invert"); ok {
		val, err := strconv.ParseBool(strings.TrimSpace(inv))
		if err != nil {
			return b, fmt.Errorf("bad invert attribute %q", inv)
		}
		b.Invert = val
	}

	if b.Positive != "" && !ValidName(b.Device, b.Kind, b.Positive) {
		return b, fmt.Errorf("%w: %q is not a %s %s", ErrUnknownName, b.Positive, b.Device, strings.ToLower(b.Kind.String()))
	}
	if b.Negative != "" && !ValidName(b.Device, b.Kind, b.Negative) {
		return b, fmt.Errorf("%w: %q is not a %s %s", ErrUnknownName, b.Negative, b.Device, strings.ToLower(b.Kind.String()))
	}
	if !b.IsValid() {
		return b, fmt.Errorf("%w: %s %s binding %q/%q", ErrInvalidBinding, b.Device, strings.ToLower(b.Kind.String()), b.Positive, b.Negative)
	}
	return b, nil
}

// findAttr looks an attribute up by case-insensitive name.
func findAttr(se xml.StartElement, name string) (string, bool) {
	for _, attr := range se.Attr {
		if strings.EqualFold(attr.Name.Local, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// LoadFile reads a persisted binding file. A failed load leaves the set
// untouched.
func (s *ActionSet) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("input: load bindings from %s: %w", path, err)
	}
	if err := s.ReadXML(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("input: load bindings from %s: %w", path, err)
	}
	return nil
}

// SaveFile writes the set's canonical form to path.
func (s *ActionSet) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := s.WriteXML(&buf); err != nil {
		return fmt.Errorf("input: save bindings to %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("input: save bindings to %s: %w", path, err)
	}
	return nil
}
