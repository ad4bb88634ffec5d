package configloader

import "github.com/yaklabco/codestat/pkg/config"

// merge combines two configurations, with override taking precedence.
//   - Scalars: override wins when non-zero.
//   - Slices: override replaces base entirely when non-nil.
//   - Booleans: only a true override is observable (config files cannot
//     unset a flag set lower in the chain).
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Sort != "" {
		result.Sort = override.Sort
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.PerFile {
		result.PerFile = true
	}
	if override.Compact {
		result.Compact = true
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}
