package groupwalk

import "fmt"

// MissingPolicy controls behavior when a referenced group is not found.
type MissingPolicy uint8

const (
	MissingIgnore MissingPolicy = iota
	MissingError
)

// DuplicatePolicy controls behavior when a group is referenced more than once.
type DuplicatePolicy uint8

const (
	DuplicateSkip DuplicatePolicy = iota
	DuplicateVisit
)

// Kind names the group table being walked, for error reporting.
type Kind string

const (
	KindAttribute Kind = "attribute group"
	KindContent   Kind = "content group"
)

// MissingGroupError reports a reference to a group that is not defined.
type MissingGroupError struct {
	Kind Kind
	Name string
}

// Error returns the formatted error message.
func (e MissingGroupError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Options configures group traversal behavior.
type Options struct {
	Kind       Kind
	Missing    MissingPolicy
	Duplicates DuplicatePolicy
}

// Walk visits referenced groups in reference order. With DuplicateSkip a group
// is visited at most once per call, at its first reference.
func Walk[T any](groups map[string]T, refs []string, opts Options, visit func(name string, group T) error) error {
	if len(refs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if seen[ref] && opts.Duplicates == DuplicateSkip {
			continue
		}
		seen[ref] = true

		group, ok := groups[ref]
		if !ok {
			if opts.Missing == MissingError {
				return MissingGroupError{Kind: opts.Kind, Name: ref}
			}
			continue
		}
		if visit == nil {
			continue
		}
		if err := visit(ref, group); err != nil {
			return err
		}
	}
	return nil
}
