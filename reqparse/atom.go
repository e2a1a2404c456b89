package reqparse

import (
	"github.com/pocamind/deep-go/req"
	"github.com/pocamind/deep-go/stat"
)

// parsedAtom is the intermediate form produced by the atom grammar rules,
// before defaulted reducability turns it into a req.Atom.
type parsedAtom struct {
	stats        []stat.Stat
	value        int
	reducability *req.Reducability
}

// intoAtom applies the reducability defaulting rules:
//   - unspecified atoms in OR clauses default to reducible
//   - unspecified atoms in AND clauses default to reducible if they sum
//     more than one stat, strict otherwise
//
// A strict sum atom is accepted but logs a warning, since its semantics
// are not well defined.
func (pa parsedAtom) intoAtom(isOr bool, logger Logger) req.Atom {
	reducability := req.Reducible
	if pa.reducability != nil {
		reducability = *pa.reducability
	} else if !isOr && len(pa.stats) <= 1 {
		reducability = req.Strict
	}

	if reducability == req.Strict && len(pa.stats) > 1 && logger != nil {
		logger.Warnf("strict SUM requirements' semantics are not well defined, you probably don't need it")
	}

	atom := req.NewAtom(reducability).WithValue(pa.value)
	for _, s := range pa.stats {
		atom = atom.WithStat(s)
	}
	return atom
}

// atom = sum_expr_parens | sum_expr_no_parens | single_expr_eq | single_expr_prefix
func (p *parser) atom() (parsedAtom, error) {
	p.skipSpace()

	if a, ok := p.trySumExprParens(); ok {
		p.skipSpace()
		return a, nil
	}
	if a, ok := p.trySumExprNoParens(); ok {
		p.skipSpace()
		return a, nil
	}
	if a, ok := p.trySingleExprEq(); ok {
		p.skipSpace()
		return a, nil
	}
	if a, ok := p.trySingleExprPrefix(); ok {
		p.skipSpace()
		return a, nil
	}
	return parsedAtom{}, p.errorf("expected an atom")
}

// sum_expr_parens = '(' stat ('+' stat)* '=' value reducability? ')'
func (p *parser) trySumExprParens() (parsedAtom, bool) {
	save := p.pos
	if !p.consumeByte('(') {
		return parsedAtom{}, false
	}
	p.skipSpace()

	stats, ok := p.statSum()
	if !ok || len(stats) < 1 {
		p.pos = save
		return parsedAtom{}, false
	}

	p.skipSpace()
	if !p.consumeByte('=') {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()

	value, ok := p.number()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	reducability := p.tryReducability()

	p.skipSpace()
	if !p.consumeByte(')') {
		p.pos = save
		return parsedAtom{}, false
	}

	return parsedAtom{stats: stats, value: value, reducability: reducability}, true
}

// sum_expr_no_parens = stat '+' stat ('+' stat)* '=' value reducability?
func (p *parser) trySumExprNoParens() (parsedAtom, bool) {
	save := p.pos

	first, ok := p.stat()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()
	if !p.consumeByte('+') {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()

	rest, ok := p.statSum()
	if !ok || len(rest) < 1 {
		p.pos = save
		return parsedAtom{}, false
	}

	p.skipSpace()
	if !p.consumeByte('=') {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()

	value, ok := p.number()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	reducability := p.tryReducability()

	stats := append([]stat.Stat{first}, rest...)
	return parsedAtom{stats: stats, value: value, reducability: reducability}, true
}

// single_expr_eq = stat '=' value reducability?
func (p *parser) trySingleExprEq() (parsedAtom, bool) {
	save := p.pos

	s, ok := p.stat()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()
	if !p.consumeByte('=') {
		p.pos = save
		return parsedAtom{}, false
	}
	p.skipSpace()

	value, ok := p.number()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	reducability := p.tryReducability()

	return parsedAtom{stats: []stat.Stat{s}, value: value, reducability: reducability}, true
}

// single_expr_prefix = value reducability? stat
func (p *parser) trySingleExprPrefix() (parsedAtom, bool) {
	save := p.pos

	value, ok := p.number()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}
	reducability := p.tryReducability()
	p.skipSpace()

	s, ok := p.stat()
	if !ok {
		p.pos = save
		return parsedAtom{}, false
	}

	return parsedAtom{stats: []stat.Stat{s}, value: value, reducability: reducability}, true
}

// statSum = stat ('+' stat)*
func (p *parser) statSum() ([]stat.Stat, bool) {
	first, ok := p.stat()
	if !ok {
		return nil, false
	}
	stats := []stat.Stat{first}

	for {
		mark := p.pos
		p.skipSpace()
		if !p.consumeByte('+') {
			p.pos = mark
			break
		}
		p.skipSpace()
		s, ok := p.stat()
		if !ok {
			p.pos = mark
			break
		}
		stats = append(stats, s)
	}
	return stats, true
}

func (p *parser) tryReducability() *req.Reducability {
	r, ok := p.reducabilityMarker()
	if !ok {
		return nil
	}
	return &r
}
