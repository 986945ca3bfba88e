package dbm

import "strings"

// DBExtension is the file extension a collaborator should append when
// a given path lacks one (§6).
const DBExtension = ".dbm"

// Open loads the database at path, or seeds a fresh empty one if the
// path does not yet exist (§6). It is the core's conceptual
// open(path) -> handle entry point; statement execution lives in the
// engine package, which operates on the *Database this returns.
func Open(path string) (*Database, error) {
	return Load(path)
}

// WithExtension appends DBExtension to path if it does not already
// end in it, matching the collaborator CLI's path-defaulting
// behavior described in §6 (the core itself accepts any path).
func WithExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), DBExtension) {
		return path
	}
	return path + DBExtension
}

// Close performs the final full rewrite of d to its backing path
// (§3 Lifecycle: "fully rewritten again on close").
func (d *Database) Close() error {
	return d.Save()
}
