// Package directive parses the //builder field directives.
//
// The only accepted directive renames the per-item setter of a repeated
// field:
//
//	//builder:each="Tag"
//	Tags field.Repeated[string]
//
// Every other spelling of a comment starting with //builder is an error, so
// typos are reported instead of silently ignored.
package directive

import (
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

const (
	// Family is the directive family name.
	Family = "builder"
	// KeyEach is the only recognized key.
	KeyEach = "each"
)

// Each is a parsed each directive.
type Each struct {
	Name   string    // per-item setter name
	Pos    token.Pos // position of the string literal
	End    token.Pos
	Source analyze.Annotation
}

// Parse parses every annotation of a field and returns its each directive,
// or nil if there is none. All annotations are parsed before the
// at-most-one rule is checked, so a malformed annotation is reported even
// when it is the second one.
func Parse(annotations []analyze.Annotation) (*Each, error) {
	var found []*Each
	for _, a := range annotations {
		each, err := ParseOne(a)
		if err != nil {
			return nil, err
		}
		found = append(found, each)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		second := found[1].Source
		return nil, diagnostic.Errorf(diagnostic.KindDuplicateAnnotation, second,
			"duplicate //%s directive; a field takes at most one", Family)
	}
}

// ParseOne parses a single annotation.
func ParseOne(a analyze.Annotation) (*Each, error) {
	text := strings.TrimPrefix(a.Text, "//")
	if len(text) == len(a.Text) {
		return nil, diagnostic.Errorf(diagnostic.KindMalformedAnnotation, a,
			"expected a // line comment directive")
	}

	family := leadingWord(text)
	rest := text[len(family):]

	if !strings.HasPrefix(rest, ":") {
		return nil, diagnostic.Errorf(diagnostic.KindMalformedAnnotation, a,
			"expected a name-value list, as in //%s:%s=\"name\"", Family, KeyEach)
	}

	if family != Family {
		return nil, diagnostic.Errorf(diagnostic.KindMalformedAnnotation, a,
			"unknown directive family %q, expected %q", family, Family)
	}

	// Offset of the list inside the comment, counting the leading "//".
	offset := 2 + len(family) + 1
	list := text[len(family)+1:]

	pairs, err := scanPairs(a, offset, list)
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, diagnostic.Errorf(diagnostic.KindMalformedAnnotation, a,
			"empty //%s directive, expected %s=\"name\"", Family, KeyEach)
	}

	if len(pairs) > 1 {
		extra := pairs[1]
		return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, extra.key.pos, extra.key.end,
			"expected a single name-value pair, found %d", len(pairs))
	}

	p := pairs[0]
	if p.key.lit != KeyEach {
		return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, p.key.pos, p.key.end,
			"unknown key %q, expected %s=\"name\"", p.key.lit, KeyEach)
	}

	if len(p.value) != 1 || p.value[0].tok != token.STRING {
		first, last := p.value[0], p.value[len(p.value)-1]
		return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, first.pos, last.end,
			"value of %s must be a string literal", KeyEach)
	}

	v := p.value[0]
	name, err := strconv.Unquote(v.lit)
	if err != nil {
		return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, v.pos, v.end,
			"invalid string literal %s", v.lit)
	}

	if !token.IsIdentifier(name) {
		return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, v.pos, v.end,
			"%q is not a valid Go identifier", name)
	}

	return &Each{Name: name, Pos: v.pos, End: v.end, Source: a}, nil
}

// leadingWord returns the run of letters, digits and underscores at the
// start of s.
func leadingWord(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			break
		}
		i++
	}

	return s[:i]
}

// item is one scanned token with its position in the user's file.
type item struct {
	tok token.Token
	lit string
	pos token.Pos
	end token.Pos
}

// pair is one name=value entry.
type pair struct {
	key   item
	value []item
}

// scanPairs tokenizes list with go/scanner and splits it into name=value
// pairs separated by commas. offset is the byte offset of list inside the
// annotation's comment text.
func scanPairs(a analyze.Annotation, offset int, list string) ([]pair, error) {
	items, err := scan(a, offset, list)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	var pairs []pair
	for len(items) > 0 {
		if len(items) < 3 || items[0].tok != token.IDENT || items[1].tok != token.ASSIGN || items[2].tok == token.COMMA {
			return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, items[0].pos, a.End(),
				"expected a name-value list, as in //%s:%s=\"name\"", Family, KeyEach)
		}

		p := pair{key: items[0]}
		items = items[2:]

		for len(items) > 0 && items[0].tok != token.COMMA {
			p.value = append(p.value, items[0])
			items = items[1:]
		}
		pairs = append(pairs, p)

		if len(items) > 0 {
			// Skip the comma; a trailing comma leaves nothing to parse.
			items = items[1:]
			if len(items) == 0 {
				return nil, diagnostic.At(diagnostic.KindMalformedAnnotation, p.key.pos, a.End(),
					"trailing comma in //%s directive", Family)
			}
		}
	}

	return pairs, nil
}

// scan runs go/scanner over list and maps token offsets back to positions
// in the user's file.
func scan(a analyze.Annotation, offset int, list string) ([]item, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(list))

	var firstErr *diagnostic.Error
	handler := func(pos token.Position, msg string) {
		if firstErr != nil {
			return
		}
		p := a.Slash + token.Pos(offset+pos.Offset)
		firstErr = diagnostic.At(diagnostic.KindMalformedAnnotation, p, a.End(), "malformed //%s directive: %s", Family, msg)
	}

	var s scanner.Scanner
	s.Init(file, []byte(list), handler, 0)

	var items []item
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		// Automatic semicolons are not part of the directive.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		if lit == "" {
			lit = tok.String()
		}

		start := a.Slash + token.Pos(offset+file.Offset(pos))
		items = append(items, item{
			tok: tok,
			lit: lit,
			pos: start,
			end: start + token.Pos(len(lit)),
		})
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return items, nil
}
