package grammar

import (
	"sort"
	"strings"
)

// Shared grammar records. The table below maps extensions onto these; several
// extensions share one record so per-language aggregation groups them.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	cFamily = &Grammar{
		Name:        "C/C++",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	java = &Grammar{
		Name:        "Java",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	csharp = &Grammar{
		Name:        "C#",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	javascript = &Grammar{
		Name:        "JavaScript",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	typescript = &Grammar{
		Name:        "TypeScript",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	php = &Grammar{
		Name:        "PHP",
		LineMarkers: []string{"//", "#"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	css = &Grammar{
		Name:       "CSS",
		BlockPairs: []BlockPair{{Start: "/*", End: "*/"}},
	}

	python = &Grammar{
		Name:        "Python",
		LineMarkers: []string{"#"},
	}

	fortran = &Grammar{
		Name:        "Fortran",
		LineMarkers: []string{"!"},
		// Compiler and OpenMP directives start with the comment marker but
		// are executable input for the compiler.
		Directives: []string{"!DIR$", "!$OMP", "!$ACC"},
	}

	sql = &Grammar{
		Name:        "SQL",
		LineMarkers: []string{"--"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	pascal = &Grammar{
		Name:        "Pascal",
		LineMarkers: []string{"//"},
		BlockPairs: []BlockPair{
			{Start: "(*", End: "*)"},
			{Start: "{", End: "}"},
		},
		// {$MODE ...} and friends.
		Directives: []string{"{$"},
	}

	cuda = &Grammar{
		Name:        "CUDA",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
	}

	// Kotlin is the one supported language whose block comments nest.
	kotlin = &Grammar{
		Name:        "Kotlin",
		LineMarkers: []string{"//"},
		BlockPairs:  []BlockPair{{Start: "/*", End: "*/"}},
		Nested:      true,
	}
)

// byExtension maps lowercase file extensions (with leading dot) to grammars.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byExtension = map[string]*Grammar{
	".java": java,

	".c":   cFamily,
	".cc":  cFamily,
	".cpp": cFamily,
	".cxx": cFamily,
	".h":   cFamily,
	".hh":  cFamily,
	".hpp": cFamily,
	".hxx": cFamily,

	".cs": csharp,

	".js":  javascript,
	".jsx": javascript,
	".mjs": javascript,

	".ts":  typescript,
	".tsx": typescript,

	".php": php,

	".css": css,

	".py": python,

	".f90": fortran,
	".f95": fortran,
	".f03": fortran,

	".sql": sql,

	".pas": pascal,
	".pp":  pascal,

	".cu":  cuda,
	".cuh": cuda,

	".kt":  kotlin,
	".kts": kotlin,
}

// Lookup returns the grammar for a file extension (with or without the
// leading dot, any case). The second result is false for extensions that
// map to no supported language; such files must be skipped entirely.
func Lookup(extension string) (*Grammar, bool) {
	ext := strings.ToLower(extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	g, ok := byExtension[ext]
	return g, ok
}

// Extensions returns all recognized extensions, sorted, with leading dots.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Languages returns the distinct supported grammars sorted by display name.
func Languages() []*Grammar {
	seen := make(map[*Grammar]struct{}, len(byExtension))
	langs := make([]*Grammar, 0, len(byExtension))
	for _, g := range byExtension {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		langs = append(langs, g)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs
}

// ExtensionsFor returns the sorted extensions mapped to the given grammar.
func ExtensionsFor(g *Grammar) []string {
	var exts []string
	for ext, mapped := range byExtension {
		if mapped == g {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
