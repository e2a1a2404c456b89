// Package reqparse parses the requirement expression grammar into a
// req.Requirement: a scanner-based recursive descent parser, since the
// grammar needs whole-string backtracking rather than the streaming,
// incremental style aretext's syntax/parser combinators are built for.
package reqparse

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/pocamind/deep-go/req"
	"github.com/pocamind/deep-go/stat"
)

// ParseError reports a failure to parse a requirement expression, with the
// byte offset into the input and a short context snippet around it.
type ParseError struct {
	Pos     int
	Context string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d: %q", e.Message, e.Pos, e.Context)
}

// Logger receives non-fatal warnings raised while parsing, such as a
// strict sum atom whose semantics are not well defined.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// StdLogger logs warnings with the standard library's log package, the
// same way the rest of this module's ambient logging works.
type StdLogger struct{}

func (StdLogger) Warnf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Parse parses a single requirement expression. A nil logger defaults to
// StdLogger.
func Parse(input string, logger Logger) (req.Requirement, error) {
	if logger == nil {
		logger = StdLogger{}
	}
	p := &parser{input: strings.TrimSpace(input), logger: logger}

	r, err := p.requirement()
	if err != nil {
		return req.Requirement{}, err
	}

	p.skipSpace()
	if !p.atEnd() {
		return req.Requirement{}, p.errorf("unexpected trailing input")
	}
	return r, nil
}

type parser struct {
	input  string
	pos    int
	logger Logger
}

func (p *parser) atEnd() bool { return p.pos >= len(p.input) }

func (p *parser) rest() string { return p.input[p.pos:] }

func (p *parser) peek() (byte, bool) {
	if p.atEnd() {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) skipSpace() {
	for !p.atEnd() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) consumeByte(b byte) bool {
	c, ok := p.peek()
	if !ok || c != b {
		return false
	}
	p.pos++
	return true
}

func (p *parser) consumeString(s string) bool {
	if strings.HasPrefix(p.rest(), s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	start := p.pos - 10
	if start < 0 {
		start = 0
	}
	end := p.pos + 10
	if end > len(p.input) {
		end = len(p.input)
	}
	return &ParseError{
		Pos:     p.pos,
		Context: p.input[start:end],
		Message: fmt.Sprintf(format, args...),
	}
}

// identifier = (alpha | digit | '_')+
func (p *parser) identifier() (string, bool) {
	start := p.pos
	for !p.atEnd() {
		c := p.input[p.pos]
		if isAlpha(c) || isDigit(c) || c == '_' {
			p.pos++
		} else {
			break
		}
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}

// number = digit+
func (p *parser) number() (int, bool) {
	start := p.pos
	for !p.atEnd() && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, false
	}
	return n, true
}

// stat = alpha+, verified against the short-name or long-name table
func (p *parser) stat() (stat.Stat, bool) {
	start := p.pos
	for !p.atEnd() && isAlpha(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	name := p.input[start:p.pos]
	s, ok := stat.FromAnyName(name)
	if !ok {
		p.pos = start
		return 0, false
	}
	return s, true
}

func (p *parser) reducabilityMarker() (req.Reducability, bool) {
	c, ok := p.peek()
	if !ok {
		return 0, false
	}
	switch c {
	case 'S', 's':
		p.pos++
		return req.Strict, true
	case 'R', 'r':
		p.pos++
		return req.Reducible, true
	default:
		return 0, false
	}
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
