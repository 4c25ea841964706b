package urlmode

import "strings"

// InputState is the modal "which URL am I typing the hint for" state: the
// prefix typed so far against the set of candidate URLs.
type InputState struct {
	urls []URL
	keys string
}

// NewInputState starts an input loop over the given (already hinted)
// URLs.
func NewInputState(urls []URL) *InputState {
	return &InputState{urls: urls}
}

// Keys returns the prefix typed so far.
func (in *InputState) Keys() string { return in.keys }

// Feed consumes one input codepoint. If it completes a unique hint, the
// matching URL is returned with done=true and the caller should exit URL
// mode. If it extends a still-ambiguous prefix, done is false and
// activated is nil. If wc matches no candidate at all, Feed is a no-op.
func (in *InputState) Feed(wc rune) (activated *URL, done bool) {
	next := in.keys + string(wc)

	var match *URL
	isValid := false
	for i := range in.urls {
		u := &in.urls[i]
		if len(u.Key) < len(next) || !strings.HasPrefix(u.Key, next) {
			continue
		}
		isValid = true
		if len(u.Key) == len(next) {
			match = u
			break
		}
	}

	if match != nil {
		return match, true
	}
	if isValid {
		in.keys = next
	}
	return nil, false
}

// Backspace pops the last typed codepoint, if any.
func (in *InputState) Backspace() {
	if in.keys == "" {
		return
	}
	r := []rune(in.keys)
	in.keys = string(r[:len(r)-1])
}
