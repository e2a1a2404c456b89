package reqparse

import "github.com/pocamind/deep-go/req"

// requirement = prefix? bare_requirement
// prefix = prereq_prefix | name_prefix
func (p *parser) requirement() (req.Requirement, error) {
	p.skipSpace()

	prereqs, name, hasPrefix := p.tryPrefix()

	r, err := p.bareRequirement()
	if err != nil {
		return req.Requirement{}, err
	}

	if hasPrefix {
		r.Prereqs = prereqs
		if name != nil {
			r = r.WithName(*name)
		}
	}
	return r, nil
}

func (p *parser) tryPrefix() (prereqs []string, name *string, ok bool) {
	if prereqs, name, ok := p.prereqPrefix(); ok {
		return prereqs, name, true
	}
	if name, ok := p.namePrefix(); ok {
		return nil, name, true
	}
	return nil, nil, false
}

// prereq_prefix = identifier (',' identifier)* '=>' (identifier ':=')?
func (p *parser) prereqPrefix() (prereqs []string, name *string, ok bool) {
	save := p.pos

	first, found := p.identifier()
	if !found {
		p.pos = save
		return nil, nil, false
	}
	prereqs = append(prereqs, first)

	for {
		mark := p.pos
		p.skipSpace()
		if !p.consumeByte(',') {
			p.pos = mark
			break
		}
		p.skipSpace()
		id, found := p.identifier()
		if !found {
			p.pos = mark
			break
		}
		prereqs = append(prereqs, id)
	}

	p.skipSpace()
	if !p.consumeString("=>") {
		p.pos = save
		return nil, nil, false
	}
	p.skipSpace()

	mark := p.pos
	if id, found := p.identifier(); found {
		p.skipSpace()
		if p.consumeString(":=") {
			p.skipSpace()
			return prereqs, &id, true
		}
	}
	p.pos = mark
	return prereqs, nil, true
}

// name_prefix = identifier ':='
func (p *parser) namePrefix() (name *string, ok bool) {
	save := p.pos

	id, found := p.identifier()
	if !found {
		p.pos = save
		return nil, false
	}
	p.skipSpace()
	if !p.consumeString(":=") {
		p.pos = save
		return nil, false
	}
	p.skipSpace()
	return &id, true
}

// bare_requirement = '(' ')' | clause (',' clause)*
func (p *parser) bareRequirement() (req.Requirement, error) {
	save := p.pos
	if p.consumeByte('(') {
		p.skipSpace()
		if p.consumeByte(')') {
			return req.NewRequirement(), nil
		}
		p.pos = save
	}

	r := req.NewRequirement()

	c, err := p.clause()
	if err != nil {
		return req.Requirement{}, err
	}
	r = r.WithClause(c)

	for {
		mark := p.pos
		p.skipSpace()
		if !p.consumeByte(',') {
			p.pos = mark
			break
		}
		p.skipSpace()
		c, err := p.clause()
		if err != nil {
			return req.Requirement{}, err
		}
		r = r.WithClause(c)
	}

	return r, nil
}

// clause = '(' clause_inner ')' | clause_inner
func (p *parser) clause() (req.Clause, error) {
	p.skipSpace()

	save := p.pos
	if p.consumeByte('(') {
		p.skipSpace()
		c, err := p.clauseInner()
		if err == nil {
			p.skipSpace()
			if p.consumeByte(')') {
				p.skipSpace()
				return c, nil
			}
		}
		p.pos = save
	}

	c, err := p.clauseInner()
	if err != nil {
		return req.Clause{}, err
	}
	p.skipSpace()
	return c, nil
}

// clause_inner = atom ('OR' atom)*
func (p *parser) clauseInner() (req.Clause, error) {
	first, err := p.atom()
	if err != nil {
		return req.Clause{}, err
	}

	var rest []parsedAtom
	for {
		mark := p.pos
		p.skipSpace()
		if !p.consumeCaseless("OR") {
			p.pos = mark
			break
		}
		p.skipSpace()
		a, err := p.atom()
		if err != nil {
			p.pos = mark
			break
		}
		rest = append(rest, a)
	}

	if len(rest) == 0 {
		atom := first.intoAtom(false, p.logger)
		return req.NewClause(req.And).WithAtom(atom), nil
	}

	clause := req.NewClause(req.Or).WithAtom(first.intoAtom(true, p.logger))
	for _, a := range rest {
		clause = clause.WithAtom(a.intoAtom(true, p.logger))
	}
	return clause, nil
}

func (p *parser) consumeCaseless(s string) bool {
	if len(p.rest()) < len(s) {
		return false
	}
	candidate := p.input[p.pos : p.pos+len(s)]
	if !equalFoldASCII(candidate, s) {
		return false
	}
	p.pos += len(s)
	return true
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
