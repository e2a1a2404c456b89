package req

// Timing marks whether a requirement is acquired freely (Free) or after the
// shrine (Post), as set by the reqfile section its line appears in.
type Timing int

const (
	Free Timing = iota
	Post
)

// String renders the lowercase name of the timing ("free"/"post").
func (t Timing) String() string {
	if t == Post {
		return "post"
	}
	return "free"
}
