package config

// Version is the current dtlc version.
var Version = "0.1.0"

const SourceFileExt = ".dtl"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".dtl", ".dep"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// UniverseIdentPrefix is the reserved prefix for universe literals (U0, U1, ...).
const UniverseIdentPrefix = "U"

// AnonymousParamName is the surface-level stand-in for an unnamed binder.
// The elaborator still gives it a fresh internal placeholder so that two
// anonymous binders in the same scope never collide; this is just what a
// user-facing message would call it.
const AnonymousParamName = "_"

// HistoryDBEnvVar, when set, turns on the optional sqlite audit ledger that
// the driver appends one row to per successfully checked item. Unset by
// default so the CLI's external contract (spec.md SS6) is unaffected.
const HistoryDBEnvVar = "DTLC_HISTORY_DB"
