package types

import (
	"fmt"
	"strings"
)

// Parse converts a type string into a descriptor. The grammar matches
// String() output: primitive names, "array<T>", "map<K,V>" and
// "row<name:T,...>" (field names optional). Whitespace is ignored.
func Parse(s string) (*Type, error) {
	p := &parser{input: strings.Join(strings.Fields(s), "")}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("types: trailing input %q in %q", p.input[p.pos:], s)
	}
	return t, nil
}

// MustParse is Parse that panics on error, for static schemas.
func MustParse(s string) *Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseType() (*Type, error) {
	name := p.ident()
	switch name {
	case "array":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return MapOf(key, value), nil
	case "row":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		var names []string
		var fields []*Type
		named := false
		for {
			name, field, isNamed, err := p.parseField()
			if err != nil {
				return nil, err
			}
			named = named || isNamed
			names = append(names, name)
			fields = append(fields, field)
			if !p.accept(',') {
				break
			}
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		if named {
			return NamedRow(names, fields), nil
		}
		return RowOf(fields...), nil
	default:
		for k := Bool; k <= Bytes; k++ {
			if kindNames[k] == name {
				return Primitive(k), nil
			}
		}
		return nil, fmt.Errorf("types: unknown type name %q", name)
	}
}

func (p *parser) parseField() (string, *Type, bool, error) {
	mark := p.pos
	name := p.ident()
	if p.accept(':') {
		t, err := p.parseType()
		return name, t, true, err
	}
	p.pos = mark
	t, err := p.parseType()
	return "", t, false, err
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '<' || c == '>' || c == ',' || c == ':' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if !p.accept(c) {
		return fmt.Errorf("types: expected %q at offset %d in %q", string(c), p.pos, p.input)
	}
	return nil
}
