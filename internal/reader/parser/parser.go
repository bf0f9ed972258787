// Released under an MIT license. See LICENSE.

// Package parser assembles minimalisp tokens into cells.
//
// Parsing happens in two steps. Tokens are first arranged into a tree of
// nested lists by tracking opening and closing parentheses. The tree is
// then converted, bottom up, into NIL-terminated pair chains. A nested
// list of exactly three elements whose middle element is '.' becomes a
// single dotted pair.
package parser

import (
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/struct/token"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/pair"
	"github.com/joe-jordan/minimalisp/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	item func() (*token.T, error) // Function to call to get another token.
}

// New creates a new parser. It consumes tokens produced by item.
func New(item func() (*token.T, error)) *T {
	return &T{item: item}
}

// Parse consumes tokens until there are no more and returns the program:
// a list of top-level statements in source order.
func (p *T) Parse() (cell.I, error) {
	root, err := p.tree()
	if err != nil {
		return nil, err
	}

	statements, err := root.cells()
	if err != nil {
		return nil, err
	}

	return chain(statements, false)
}

// Parse parses source text and returns the program.
func Parse(source string) (cell.I, error) {
	l := lexer.New("source")
	l.Scan(source)

	return New(l.Token).Parse()
}

// ParseLine parses a single line of input. If the line contains no
// statements NIL is returned. If it contains exactly one statement, that
// statement is returned. Otherwise the list of statements is returned.
func ParseLine(line string) (cell.I, error) {
	program, err := Parse(line)
	if err != nil {
		return nil, err
	}

	if null.Is(program) || !null.Is(pair.Cdr(program)) {
		return program, nil
	}

	return pair.Car(program), nil
}

// A node in the tree of nested lists. Leaves have text and no children.
type sexpr struct {
	children []*sexpr
	leaf     bool
	parent   *sexpr
	quoted   bool
	text     string
}

func (s *sexpr) add(text string) {
	s.children = append(s.children, &sexpr{leaf: true, parent: s, text: text})
}

func (s *sexpr) open(quoted bool) *sexpr {
	child := &sexpr{parent: s, quoted: quoted}
	s.children = append(s.children, child)

	return child
}

func (s *sexpr) cells() ([]cell.I, error) {
	cells := make([]cell.I, 0, len(s.children))

	for _, child := range s.children {
		c, err := child.cell()
		if err != nil {
			return nil, err
		}

		cells = append(cells, c)
	}

	return cells, nil
}

func (s *sexpr) cell() (cell.I, error) {
	if s.leaf {
		return lexer.Classify(s.text)
	}

	cells, err := s.cells()
	if err != nil {
		return nil, err
	}

	if dotted(cells) {
		c := pair.Cons(cells[0], cells[2])
		if s.quoted {
			pair.Quote(c)
		}

		return c, nil
	}

	return chain(cells, s.quoted)
}

func (p *T) tree() (*sexpr, error) {
	root := &sexpr{}
	current := root

	for {
		t, err := p.item()
		if err != nil {
			return nil, err
		}

		if t == nil {
			break
		}

		if t.Is(token.String) {
			current.add(t.Value())

			continue
		}

		text := t.Value()

		for {
			quoted := strings.HasPrefix(text, "'(")
			if !quoted && !strings.HasPrefix(text, "(") {
				break
			}

			current = current.open(quoted)

			if quoted {
				text = text[2:]
			} else {
				text = text[1:]
			}
		}

		trimmed := strings.TrimRight(text, ")")
		closing := len(text) - len(trimmed)

		if trimmed != "" {
			current.add(trimmed)
		}

		for ; closing > 0; closing-- {
			if current.parent == nil {
				return nil, failure.Syntaxf("parentheses not matched")
			}

			current = current.parent
		}
	}

	if current != root {
		return nil, failure.Incompletef("parentheses not matched")
	}

	return root, nil
}

func chain(cells []cell.I, quoted bool) (cell.I, error) {
	for _, c := range cells {
		if c == lexer.Separator {
			return nil, failure.Syntaxf("'.' can only appear between the two elements of a pair")
		}
	}

	c := list.New(cells...)
	if quoted && pair.Is(c) {
		pair.Quote(c)
	}

	return c, nil
}

func dotted(cells []cell.I) bool {
	return len(cells) == 3 &&
		cells[0] != lexer.Separator &&
		cells[1] == lexer.Separator &&
		cells[2] != lexer.Separator
}
