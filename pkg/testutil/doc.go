// Package testutil provides utilities for testing tint components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem behind types.FS
//   - Workspace: a config file, templates directory and output root laid
//     out on an in-memory filesystem
//   - MockFS: testify mock of types.FS for injecting I/O failures
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; use t.TempDir with filesystem.NewOS
//     only where real directory semantics matter
//   - All test data should be defined inline, not in external files
package testutil
