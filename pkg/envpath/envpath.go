// Package envpath implements idempotent registration of directories in
// delimiter-joined path-list variables such as PATH and LD_LIBRARY_PATH.
//
// Matching is an exact string compare on segments. No slash trimming,
// cleaning, or symlink resolution happens here, so "/opt/x" and "/opt/x/"
// are distinct entries. The generated shell fragments use the same literal
// match, keeping both sides of the check in agreement.
package envpath

import "strings"

// EnsureRegistered returns value with dir guaranteed to be present as a
// segment. When dir is absent it is prepended so it wins resolution over
// existing entries; when present the value is returned unchanged. An empty
// value (unset variable) yields dir alone, with no dangling delimiter.
//
// The operation is idempotent: applying it twice yields the same result as
// applying it once.
func EnsureRegistered(value, dir, delimiter string) string {
	if Contains(value, dir, delimiter) {
		return value
	}
	if value == "" {
		return dir
	}
	return dir + delimiter + value
}

// Contains reports whether dir appears as an exact segment of value.
func Contains(value, dir, delimiter string) bool {
	if value == "" {
		return false
	}
	for _, seg := range strings.Split(value, delimiter) {
		if seg == dir {
			return true
		}
	}
	return false
}

// Remove drops every segment exactly equal to dir, preserving the relative
// order of the remaining segments. Removing a dir that is not present
// returns the value unchanged.
func Remove(value, dir, delimiter string) string {
	if value == "" {
		return ""
	}
	segments := strings.Split(value, delimiter)
	kept := segments[:0]
	for _, seg := range segments {
		if seg != dir {
			kept = append(kept, seg)
		}
	}
	return strings.Join(kept, delimiter)
}
