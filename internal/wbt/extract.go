package wbt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// ExtractOptions selects which entries ExtractAll writes.
type ExtractOptions struct {
	// Include and Exclude are glob patterns over archive paths. With no
	// Include patterns every entry is included; Exclude always wins.
	Include []string
	Exclude []string

	// DryRun extracts in memory and writes nothing.
	DryRun bool
}

// ExtractResult summarizes an ExtractAll run.
type ExtractResult struct {
	Extracted int
	Skipped   int
	Bytes     int64
}

func newEntryMatcher(include, exclude []string) (*pathrules.Matcher, error) {
	rules := make([]pathrules.Rule, 0, len(include)+len(exclude))
	for _, p := range include {
		if p = normalizeArchivePath(strings.TrimSpace(p)); p != "" {
			rules = append(rules, pathrules.Rule{Action: pathrules.ActionInclude, Pattern: p})
		}
	}
	hasInclude := len(rules) > 0
	for _, p := range exclude {
		if p = normalizeArchivePath(strings.TrimSpace(p)); p != "" {
			rules = append(rules, pathrules.Rule{Action: pathrules.ActionExclude, Pattern: p})
		}
	}
	if len(rules) == 0 {
		return nil, nil
	}

	def := pathrules.ActionInclude
	if hasInclude {
		def = pathrules.ActionExclude
	}

	m, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   def,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid path pattern: %w", errs.ErrFormat, err)
	}
	return m, nil
}

// ExtractAll writes the selected entries of c to outDir/<path>. It stops
// at the first failure; files already written are left in place.
func ExtractAll(c *Container, outDir string, opts ExtractOptions) (ExtractResult, error) {
	var res ExtractResult

	matcher, err := newEntryMatcher(opts.Include, opts.Exclude)
	if err != nil {
		return res, err
	}

	for i, e := range c.entries {
		if matcher != nil && !matcher.Included(normalizeArchivePath(e.Path), false) {
			res.Skipped++
			continue
		}

		dst, err := localPath(outDir, e.Path)
		if err != nil {
			return res, fmt.Errorf("entry %d: %w", i, err)
		}

		_, data, err := c.Extract(i)
		if err != nil {
			return res, err
		}

		if !opts.DryRun {
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return res, fmt.Errorf("failed to create directory for %s: %w", e.Path, err)
			}
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return res, fmt.Errorf("failed to write %s: %w", e.Path, err)
			}
		}

		res.Extracted++
		res.Bytes += int64(len(data))
	}

	c.logger.Info("extracted container",
		"extracted", res.Extracted,
		"skipped", res.Skipped,
		"bytes", res.Bytes,
		"dry_run", opts.DryRun,
	)
	return res, nil
}
