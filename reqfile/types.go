// Package reqfile compiles a line-oriented reqfile document -- named and
// anonymous requirement statements, dependency links, optional-group and
// force-required annotations -- into a Reqfile ready for use.
package reqfile

import (
	"fmt"

	"github.com/pocamind/deep-go/req"
)

// OptionalGroup is a set of requirements that are acquired together or not
// at all: a req marked optional plus every prereq transitively pulled in
// by it, partitioned by each member's own declared timing.
type OptionalGroup struct {
	General []req.Requirement
	Post    []req.Requirement
	Weight  int
}

// Reqfile is the compiled result: the required requirements (split by
// timing) plus the optional groups layered on top of them.
type Reqfile struct {
	General  []req.Requirement
	Post     []req.Requirement
	Optional []OptionalGroup
}

// ReqIter returns every required requirement, general followed by post.
// Optional requirements are not included.
func (rf Reqfile) ReqIter() []req.Requirement {
	all := make([]req.Requirement, 0, len(rf.General)+len(rf.Post))
	all = append(all, rf.General...)
	all = append(all, rf.Post...)
	return all
}

// Merge concatenates rf with other, general-with-general, post-with-post,
// optional-with-optional.
func (rf Reqfile) Merge(other Reqfile) Reqfile {
	return Reqfile{
		General:  append(append([]req.Requirement(nil), rf.General...), other.General...),
		Post:     append(append([]req.Requirement(nil), rf.Post...), other.Post...),
		Optional: append(append([]OptionalGroup(nil), rf.Optional...), other.Optional...),
	}
}

// CompileError reports a problem found while compiling a reqfile, with the
// 1-based source line it occurred on; a dependency cycle is reported at the
// line defining the first requirement of the reported cycle. Error omits
// the line prefix when Line is 0.
type CompileError struct {
	Line    int
	Message string
}

func (e *CompileError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
