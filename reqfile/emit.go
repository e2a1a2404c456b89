package reqfile

import (
	"fmt"
	"strings"

	"github.com/pocamind/deep-go/req"
)

// MapRequirementNames rewrites every requirement's name and prereq names
// in place using f. Requirements that are still anonymous are left
// unnamed.
func MapRequirementNames(reqs []req.Requirement, f func(string) string) {
	for i, r := range reqs {
		if r.Name != nil {
			mapped := f(*r.Name)
			r = r.WithName(mapped)
		}

		prereqs := make([]string, len(r.Prereqs))
		for j, p := range r.Prereqs {
			prereqs[j] = f(p)
		}
		r.Prereqs = prereqs

		reqs[i] = r
	}
}

var nameCleaner = strings.NewReplacer(
	" ", "_",
	"[", "",
	"]", "",
	"'", "",
	":", "",
	"(", "",
	")", "",
)

func cleanName(name string) string {
	return nameCleaner.Replace(name)
}

// Emit renders a Reqfile back into reqfile source text. This is a
// best-effort round trip: optional groups and force-required annotations
// are dropped, since the compiled Reqfile no longer distinguishes which
// required requirements were pulled in that way.
func Emit(rf Reqfile) string {
	var out strings.Builder
	out.WriteString("# Auto-generated reqfile\n\n")
	out.WriteString("Free:\n")

	i := 0
	nameAnonymousWithPrereqs := func(r req.Requirement) req.Requirement {
		i++
		if r.Name == nil && len(r.Prereqs) > 0 {
			r = r.WithName(fmt.Sprintf("id_%d", i))
		}
		return r
	}

	general := make([]req.Requirement, len(rf.General))
	for idx, r := range rf.General {
		general[idx] = nameAnonymousWithPrereqs(r)
	}
	post := make([]req.Requirement, len(rf.Post))
	for idx, r := range rf.Post {
		post[idx] = nameAnonymousWithPrereqs(r)
	}

	MapRequirementNames(general, cleanName)
	MapRequirementNames(post, cleanName)

	for _, r := range general {
		out.WriteString(r.String())
		out.WriteString("\n")
	}

	if len(post) > 0 {
		out.WriteString("\nPost:\n")
		for _, r := range post {
			out.WriteString(r.String())
			out.WriteString("\n")
		}
	}

	return out.String()
}
