// Package series implements the naming scheme for patch-series tags.
// A series published from branch "feature" is stored as the tags
// feature-v1, feature-v2, ... with the cover letter as the tag annotation.
package series

import (
	"fmt"
	"regexp"
	"strconv"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

// tagPattern matches <branch>-v<N>. Branch names may themselves contain
// "-v<digits>", so the version is anchored to the end of the tag name.
var tagPattern = regexp.MustCompile(`^(.+)-v(\d+)$`)

// Series identifies one published version of a branch's patch series.
type Series struct {
	Branch  string
	Version int
}

// TagName returns the tag under which this series version is stored.
func (s Series) TagName() string {
	return fmt.Sprintf("%s-v%d", s.Branch, s.Version)
}

// Glob returns the `git tag -l` pattern matching every series tag of a branch.
func Glob(branch string) string {
	return branch + "-v*"
}

// Parse interprets a tag name as a series tag.
// Returns errors.ErrNotASeriesTag for names outside the scheme.
func Parse(tag string) (Series, error) {
	m := tagPattern.FindStringSubmatch(tag)
	if m == nil {
		return Series{}, patchseterrors.ErrNotASeriesTag
	}
	version, err := strconv.Atoi(m[2])
	if err != nil || version < 1 {
		return Series{}, patchseterrors.ErrNotASeriesTag
	}
	return Series{Branch: m[1], Version: version}, nil
}

// Latest returns the highest published series version of branch among the
// given tag names, ignoring tags outside the naming scheme. The second
// return value is false when the branch has no published series.
func Latest(tags []string, branch string) (Series, bool) {
	latest := Series{Branch: branch}
	for _, tag := range tags {
		s, err := Parse(tag)
		if err != nil || s.Branch != branch {
			continue
		}
		if s.Version > latest.Version {
			latest = s
		}
	}
	return latest, latest.Version > 0
}

// Next returns the series that the next publication of branch should use:
// one past the highest existing version, or v1 for a first publication.
func Next(tags []string, branch string) Series {
	latest, ok := Latest(tags, branch)
	if !ok {
		return Series{Branch: branch, Version: 1}
	}
	return Series{Branch: branch, Version: latest.Version + 1}
}
