package reqfile

import (
	"strconv"
	"strings"

	"github.com/pocamind/deep-go/req"
	"github.com/pocamind/deep-go/reqparse"
)

// baseLine is either an inline requirement definition or a statement that
// links prereqs to an already-named requirement elsewhere in the file.
type baseLine struct {
	isDependency bool

	// valid when !isDependency
	req req.Requirement

	// valid when isDependency
	prereqs   []string
	dependent string
}

type lineKind int

const (
	unspecified lineKind = iota
	forceRequired
	optional
)

type parsedLine struct {
	base    baseLine
	kind    lineKind
	weight  int
	lineNum int
	timing  req.Timing
}

func (l parsedLine) isExplicitOptional() bool {
	return l.kind == optional
}

// reqfile_line = optional_line | force_required_line | base_reqfile_line
func parseReqfileLine(input string, logger reqparse.Logger) (lineKind, int, baseLine, error) {
	s := &lineScanner{input: strings.TrimSpace(input)}
	s.skipSpace()

	save := s.pos
	if n, ok := s.number(); ok {
		mark := s.pos
		s.skipSpace()
		if s.consumeByte(';') {
			if n < 1 || n > 20 {
				return 0, 0, baseLine{}, &CompileError{Message: "optional weight must be between 1 and 20"}
			}
			s.skipSpace()
			base, err := parseBaseReqfileLine(s.rest(), logger)
			if err != nil {
				return 0, 0, baseLine{}, err
			}
			return optional, n, base, nil
		}
		s.pos = mark
	}
	s.pos = save

	if s.consumeByte('+') {
		s.skipSpace()
		base, err := parseBaseReqfileLine(s.rest(), logger)
		if err != nil {
			return 0, 0, baseLine{}, err
		}
		return forceRequired, 0, base, nil
	}

	base, err := parseBaseReqfileLine(s.rest(), logger)
	if err != nil {
		return 0, 0, baseLine{}, err
	}
	return unspecified, 0, base, nil
}

// base_reqfile_line = dependency_with_identifier | requirement
func parseBaseReqfileLine(input string, logger reqparse.Logger) (baseLine, error) {
	if base, ok := tryDependencyWithIdentifier(input); ok {
		return base, nil
	}

	r, err := reqparse.Parse(input, logger)
	if err != nil {
		return baseLine{}, err
	}
	return baseLine{req: r}, nil
}

// dependency_with_identifier = identifier (',' identifier)* '=>' identifier eof
func tryDependencyWithIdentifier(input string) (baseLine, bool) {
	s := &lineScanner{input: strings.TrimSpace(input)}

	first, ok := s.identifier()
	if !ok {
		return baseLine{}, false
	}
	prereqs := []string{first}

	for {
		mark := s.pos
		s.skipSpace()
		if !s.consumeByte(',') {
			s.pos = mark
			break
		}
		s.skipSpace()
		id, ok := s.identifier()
		if !ok {
			s.pos = mark
			break
		}
		prereqs = append(prereqs, id)
	}

	s.skipSpace()
	if !s.consumeString("=>") {
		return baseLine{}, false
	}
	s.skipSpace()

	dependent, ok := s.identifier()
	if !ok {
		return baseLine{}, false
	}

	s.skipSpace()
	if !s.atEnd() {
		return baseLine{}, false
	}

	return baseLine{isDependency: true, prereqs: prereqs, dependent: dependent}, true
}

// lineScanner is a minimal byte scanner for the reqfile line grammar
// (identifiers, numbers, literal tokens); atom/clause grammar is handled
// entirely by reqparse.
type lineScanner struct {
	input string
	pos   int
}

func (s *lineScanner) atEnd() bool   { return s.pos >= len(s.input) }
func (s *lineScanner) rest() string  { return s.input[s.pos:] }

func (s *lineScanner) skipSpace() {
	for !s.atEnd() {
		switch s.input[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *lineScanner) consumeByte(b byte) bool {
	if s.atEnd() || s.input[s.pos] != b {
		return false
	}
	s.pos++
	return true
}

func (s *lineScanner) consumeString(str string) bool {
	if strings.HasPrefix(s.rest(), str) {
		s.pos += len(str)
		return true
	}
	return false
}

func (s *lineScanner) identifier() (string, bool) {
	start := s.pos
	for !s.atEnd() {
		c := s.input[s.pos]
		if isAlphaNumUnderscore(c) {
			s.pos++
		} else {
			break
		}
	}
	if s.pos == start {
		return "", false
	}
	return s.input[start:s.pos], true
}

func (s *lineScanner) number() (int, bool) {
	start := s.pos
	for !s.atEnd() && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(s.input[start:s.pos])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isAlphaNumUnderscore(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
