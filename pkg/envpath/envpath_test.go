// pkg/envpath/envpath_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test idempotent path-list registration and removal

package envpath_test

import (
	"testing"

	"github.com/Arshdeep54/wasmedgeup/pkg/envpath"
	"github.com/stretchr/testify/assert"
)

func TestEnsureRegistered(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		dir       string
		delimiter string
		expected  string
	}{
		{
			name:      "empty_value_returns_dir_alone",
			value:     "",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/opt/wasmedge/bin",
		},
		{
			name:      "prepends_when_absent",
			value:     "/usr/bin",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/opt/wasmedge/bin:/usr/bin",
		},
		{
			name:      "unchanged_when_present_first",
			value:     "/opt/wasmedge/bin:/usr/bin",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/opt/wasmedge/bin:/usr/bin",
		},
		{
			name:      "unchanged_when_present_in_middle",
			value:     "/usr/local/bin:/opt/wasmedge/bin:/usr/bin",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/usr/local/bin:/opt/wasmedge/bin:/usr/bin",
		},
		{
			name:      "order_of_existing_entries_preserved",
			value:     "/a:/b",
			dir:       "/d",
			delimiter: ":",
			expected:  "/d:/a:/b",
		},
		{
			name:      "substring_segment_does_not_match",
			value:     "/opt/wasmedge/bin2:/usr/bin",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/opt/wasmedge/bin:/opt/wasmedge/bin2:/usr/bin",
		},
		{
			name:      "trailing_slash_is_a_distinct_entry",
			value:     "/opt/wasmedge/bin/",
			dir:       "/opt/wasmedge/bin",
			delimiter: ":",
			expected:  "/opt/wasmedge/bin:/opt/wasmedge/bin/",
		},
		{
			name:      "semicolon_delimiter",
			value:     `C:\tools`,
			dir:       `C:\wasmedge\bin`,
			delimiter: ";",
			expected:  `C:\wasmedge\bin;C:\tools`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := envpath.EnsureRegistered(tt.value, tt.dir, tt.delimiter)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnsureRegistered_Idempotent(t *testing.T) {
	values := []string{
		"",
		"/usr/bin",
		"/opt/wasmedge/bin:/usr/bin",
		"/usr/local/bin:/usr/bin:/bin",
	}

	for _, value := range values {
		once := envpath.EnsureRegistered(value, "/opt/wasmedge/bin", ":")
		twice := envpath.EnsureRegistered(once, "/opt/wasmedge/bin", ":")
		assert.Equal(t, once, twice, "value %q", value)
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		dir      string
		expected bool
	}{
		{name: "empty_value", value: "", dir: "/a", expected: false},
		{name: "single_match", value: "/a", dir: "/a", expected: true},
		{name: "match_in_list", value: "/a:/b:/c", dir: "/b", expected: true},
		{name: "no_match", value: "/a:/b", dir: "/c", expected: false},
		{name: "substring_is_not_a_match", value: "/abc", dir: "/a", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, envpath.Contains(tt.value, tt.dir, ":"))
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		dir      string
		expected string
	}{
		{
			name:     "removes_single_entry",
			value:    "/opt/wasmedge/bin:/usr/bin",
			dir:      "/opt/wasmedge/bin",
			expected: "/usr/bin",
		},
		{
			name:     "removes_duplicate_entries",
			value:    "/opt/wasmedge/bin:/usr/bin:/opt/wasmedge/bin",
			dir:      "/opt/wasmedge/bin",
			expected: "/usr/bin",
		},
		{
			name:     "absent_dir_leaves_value_unchanged",
			value:    "/usr/local/bin:/usr/bin",
			dir:      "/opt/wasmedge/bin",
			expected: "/usr/local/bin:/usr/bin",
		},
		{
			name:     "order_preserved",
			value:    "/a:/x:/b",
			dir:      "/x",
			expected: "/a:/b",
		},
		{
			name:     "empty_value",
			value:    "",
			dir:      "/a",
			expected: "",
		},
		{
			name:     "removing_only_entry_yields_empty",
			value:    "/a",
			dir:      "/a",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, envpath.Remove(tt.value, tt.dir, ":"))
		})
	}
}

func TestRemoveInvertsEnsureRegistered(t *testing.T) {
	value := "/usr/local/bin:/usr/bin"
	registered := envpath.EnsureRegistered(value, "/opt/wasmedge/bin", ":")
	assert.Equal(t, value, envpath.Remove(registered, "/opt/wasmedge/bin", ":"))
}
