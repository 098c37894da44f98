package types

import (
	"fmt"
	"strings"
)

// ParseType interns the type spelled by s, using the syntax TypeName renders.
func ParseType(b *TypeBuffer, s string) (TypeToken, error) {
	p := typeParser{buf: b, src: s}
	tok, err := p.parseType()
	if err != nil {
		return TypeToken{}, err
	}
	if p.pos != len(p.src) {
		return TypeToken{}, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return tok, nil
}

type typeParser struct {
	buf *TypeBuffer
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("type %q at %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) rest() string { return p.src[p.pos:] }

func (p *typeParser) accept(lit string) bool {
	if strings.HasPrefix(p.rest(), lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *typeParser) expect(lit string) error {
	if !p.accept(lit) {
		return p.errorf("expected %q", lit)
	}
	return nil
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *typeParser) parseType() (TypeToken, error) {
	switch {
	case p.accept("<ERROR>"):
		return p.buf.ErrorType(), nil
	case p.accept("ptr."):
		to, err := p.parseType()
		if err != nil {
			return TypeToken{}, err
		}
		return p.buf.AddPtr(to), nil
	case p.accept("mutptr."):
		to, err := p.parseType()
		if err != nil {
			return TypeToken{}, err
		}
		return p.buf.AddMutPtr(to), nil
	case p.accept("fn("):
		return p.parseFn()
	}
	name := p.ident()
	switch name {
	case "":
		return TypeToken{}, p.errorf("expected a type")
	case "void":
		return p.buf.VoidType(), nil
	case "opaque_ptr":
		return p.buf.AddOpaquePtr(), nil
	case "mut_opaque_ptr":
		return p.buf.AddMutOpaquePtr(), nil
	}
	if id, ok := ParseBuiltin(name); ok {
		return p.buf.AddBuiltin(id), nil
	}
	p.pos -= len(name)
	return TypeToken{}, p.errorf("unknown type %q", name)
}

// parseFn continues after "fn(".
func (p *typeParser) parseFn() (TypeToken, error) {
	var (
		args     []FnTypeArgument
		variadic bool
	)
	for !p.accept(")") {
		if len(args) > 0 || variadic {
			if variadic {
				return TypeToken{}, p.errorf("\"...\" must be the last parameter")
			}
			if err := p.expect(", "); err != nil {
				return TypeToken{}, err
			}
		}
		if p.accept("...") {
			variadic = true
			continue
		}
		spec, ok := ParseArgSpecifier(p.ident())
		if !ok {
			return TypeToken{}, p.errorf("expected in, out, inout or move")
		}
		if err := p.expect(" "); err != nil {
			return TypeToken{}, err
		}
		ty, err := p.parseType()
		if err != nil {
			return TypeToken{}, err
		}
		args = append(args, FnTypeArgument{Type: ty, Specifier: spec})
	}
	if err := p.expect(" -> "); err != nil {
		return TypeToken{}, err
	}
	ret, err := p.parseType()
	if err != nil {
		return TypeToken{}, err
	}
	return p.buf.AddFn(ret, args, variadic), nil
}
