package catalog

import "github.com/pocamind/deep-go/req"

// Entry is the minimal surface a catalog record (talent, mantra, weapon,
// outfit, aspect, ...) must expose for the core to consume. The core never
// inspects the record's own fields; it only pulls the parsed requirement
// out of Reqs.
type Entry interface {
	Reqs() req.Requirement
}
