package document

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SchemaVersion is the newest document schema this package reads.
const SchemaVersion = "v1.0.0"

// checkVersion validates a declared schema version and returns its canonical
// form. Documents from the same major version and not newer than
// SchemaVersion are accepted.
func checkVersion(declared string) (string, error) {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return "", fmt.Errorf("version: missing")
	}
	v := declared
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("version: %q is not a semantic version", declared)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return "", fmt.Errorf("version: major version %s is not supported, want %s", semver.Major(v), semver.Major(SchemaVersion))
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		return "", fmt.Errorf("version: %s is newer than the supported %s", semver.Canonical(v), SchemaVersion)
	}
	return semver.Canonical(v), nil
}
