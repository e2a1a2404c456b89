package reqfile

import (
	"strconv"
	"strings"

	"github.com/pocamind/deep-go/req"
	"github.com/pocamind/deep-go/reqparse"
	"github.com/pocamind/deep-go/reqtree"
)

// Compile parses and validates a full reqfile document. A nil logger
// defaults to reqparse.StdLogger.
func Compile(content string, logger reqparse.Logger) (Reqfile, error) {
	lines, err := scanLines(content, logger)
	if err != nil {
		return Reqfile{}, err
	}
	return validateAndTransform(lines)
}

// scanLines splits content into non-blank, non-comment lines, tracking the
// current Free/Post section and parsing each statement line.
func scanLines(content string, logger reqparse.Logger) ([]parsedLine, error) {
	var lines []parsedLine
	timing := req.Free

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		lineNum := i + 1

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "FREE") {
			timing = req.Free
			continue
		}
		if strings.HasPrefix(upper, "POST") {
			timing = req.Post
			continue
		}

		kind, weight, base, err := parseReqfileLine(line, logger)
		if err != nil {
			return nil, &CompileError{Line: lineNum, Message: err.Error()}
		}

		lines = append(lines, parsedLine{
			base:    base,
			kind:    kind,
			weight:  weight,
			lineNum: lineNum,
			timing:  timing,
		})
	}

	return lines, nil
}

type reqfileIndex struct {
	// explicit name -> line index
	named map[string]int
	// name_or_default (explicit or derived) -> line index, for every
	// requirement line
	strToIdx map[string]int

	dependencyStatements []dependencyStatement
}

type dependencyStatement struct {
	prereqs   []string
	dependent string
	lineNum   int
}

func buildIndex(lines []parsedLine) (reqfileIndex, error) {
	idx := reqfileIndex{
		named:    make(map[string]int),
		strToIdx: make(map[string]int),
	}

	for i, line := range lines {
		if !line.base.isDependency {
			idx.strToIdx[line.base.req.IdentityString()] = i
		}
	}

	for i, line := range lines {
		if line.base.isDependency {
			if line.kind != unspecified {
				return idx, &CompileError{
					Line: line.lineNum,
					Message: "optional annotations '+' or ';' must be used at the requirement " +
						"definition, not in a dependency statement, unless the definition is in the " +
						"dependency statement itself",
				}
			}

			idx.dependencyStatements = append(idx.dependencyStatements, dependencyStatement{
				prereqs:   line.base.prereqs,
				dependent: line.base.dependent,
				lineNum:   line.lineNum,
			})
			continue
		}

		if line.base.req.Name != nil {
			name := *line.base.req.Name
			if _, dup := idx.named[name]; dup {
				return idx, &CompileError{Line: line.lineNum, Message: "duplicate identifier: " + name}
			}
			idx.named[name] = i
		}
	}

	return idx, nil
}

func validateNoAmbiguousAnonymous(lines []parsedLine) error {
	for _, line := range lines {
		if line.base.isDependency || line.base.req.Name != nil {
			continue
		}
		r := line.base.req

		for _, other := range lines {
			if other.base.isDependency || other.base.req.Name != nil {
				continue
			}
			o := other.base.req

			if o.IdentityString() == r.IdentityString() &&
				(len(o.Prereqs) > 0 || len(r.Prereqs) > 0) &&
				!o.Equal(r) {
				return &CompileError{
					Line: line.lineNum,
					Message: "you may not have duplicate anonymous requirements if either of them " +
						"have prerequisites: " + r.IdentityString(),
				}
			}
		}
	}
	return nil
}

func resolveDependencies(lines []parsedLine, idx reqfileIndex) error {
	for _, dep := range idx.dependencyStatements {
		lineIdx, ok := idx.named[dep.dependent]
		if !ok {
			return &CompileError{Line: dep.lineNum, Message: "dependent: no variable named '" + dep.dependent + "'"}
		}

		for _, prereq := range dep.prereqs {
			if _, ok := idx.named[prereq]; !ok {
				return &CompileError{Line: dep.lineNum, Message: "prerequisite: no variable named '" + prereq + "'"}
			}
		}

		target := &lines[lineIdx]
		if target.base.isDependency {
			continue
		}
		if len(target.base.req.Prereqs) > 0 {
			return &CompileError{
				Line:    dep.lineNum,
				Message: "'" + dep.dependent + "' has multiple prerequisite assignments",
			}
		}
		target.base.req.Prereqs = dep.prereqs
	}
	return nil
}

func buildReqTree(lines []parsedLine) *reqtree.ReqTree {
	tree := reqtree.New()
	for _, line := range lines {
		if !line.base.isDependency {
			tree.Insert(line.base.req)
		}
	}
	return tree
}

func validateTree(lines []parsedLine, tree *reqtree.ReqTree, strToIdx map[string]int) error {
	if cycle := tree.FindCycle(); cycle != nil {
		return &CompileError{
			Line:    lines[strToIdx[cycle[0]]].lineNum,
			Message: "prereqs cannot be dependent on each other, found cycle: " + reqtree.CycleString(cycle),
		}
	}

	for _, line := range lines {
		if line.kind != optional || line.base.isDependency || line.base.req.Name == nil {
			continue
		}
		name := *line.base.req.Name

		for dependent := range tree.AllDependents(name) {
			depLine := lines[strToIdx[dependent]]
			if !depLine.isExplicitOptional() {
				return &CompileError{
					Line: line.lineNum,
					Message: "'" + name + "' was declared as optional, however one of its dependents is " +
						"required: '" + dependent + "' at line " + strconv.Itoa(depLine.lineNum) +
						". Try marking '" + dependent + "' as optional instead",
				}
			}
		}
	}
	return nil
}

func buildOptionalGroups(lines []parsedLine, tree *reqtree.ReqTree, strToIdx map[string]int) ([]OptionalGroup, map[string]struct{}) {
	var groups []OptionalGroup
	markedOpt := make(map[string]struct{})

	for _, line := range lines {
		if line.kind != optional || line.base.isDependency {
			continue
		}
		r := line.base.req

		group := OptionalGroup{Weight: line.weight}

		names := tree.AllPrereqs(r.IdentityString())
		names[r.IdentityString()] = struct{}{}

		for name := range names {
			lineIdx := strToIdx[name]
			reqLine := lines[lineIdx]
			if reqLine.base.isDependency {
				continue
			}

			switch reqLine.timing {
			case req.Free:
				group.General = append(group.General, reqLine.base.req)
			case req.Post:
				group.Post = append(group.Post, reqLine.base.req)
			}
			markedOpt[name] = struct{}{}
		}

		groups = append(groups, group)
	}

	return groups, markedOpt
}

func applyForceRequired(lines []parsedLine, tree *reqtree.ReqTree, strToIdx map[string]int, groups []OptionalGroup, markedOpt map[string]struct{}) {
	for _, line := range lines {
		if line.kind != forceRequired || line.base.isDependency {
			continue
		}
		r := line.base.req

		names := tree.AllPrereqs(r.IdentityString())
		names[r.IdentityString()] = struct{}{}

		for name := range names {
			lineIdx := strToIdx[name]
			reqLine := lines[lineIdx]
			if reqLine.base.isDependency {
				continue
			}

			for i := range groups {
				groups[i].General = removeByIdentity(groups[i].General, name)
				groups[i].Post = removeByIdentity(groups[i].Post, name)
			}
			delete(markedOpt, name)
		}
	}
}

func removeByIdentity(reqs []req.Requirement, name string) []req.Requirement {
	out := reqs[:0:0]
	for _, r := range reqs {
		if r.IdentityString() != name {
			out = append(out, r)
		}
	}
	return out
}

func collectRequiredReqs(lines []parsedLine, markedOpt map[string]struct{}) ([]req.Requirement, []req.Requirement) {
	var general, post []req.Requirement

	for _, line := range lines {
		if line.base.isDependency {
			continue
		}
		r := line.base.req
		if _, marked := markedOpt[r.IdentityString()]; marked {
			continue
		}

		switch line.timing {
		case req.Free:
			general = append(general, r)
		case req.Post:
			post = append(post, r)
		}
	}

	return general, post
}

func validateAndTransform(lines []parsedLine) (Reqfile, error) {
	idx, err := buildIndex(lines)
	if err != nil {
		return Reqfile{}, err
	}
	if err := validateNoAmbiguousAnonymous(lines); err != nil {
		return Reqfile{}, err
	}
	if err := resolveDependencies(lines, idx); err != nil {
		return Reqfile{}, err
	}

	tree := buildReqTree(lines)
	if err := validateTree(lines, tree, idx.strToIdx); err != nil {
		return Reqfile{}, err
	}

	groups, markedOpt := buildOptionalGroups(lines, tree, idx.strToIdx)
	applyForceRequired(lines, tree, idx.strToIdx, groups, markedOpt)

	general, post := collectRequiredReqs(lines, markedOpt)

	return Reqfile{General: general, Post: post, Optional: groups}, nil
}
