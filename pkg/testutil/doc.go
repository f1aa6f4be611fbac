// Package testutil provides utilities for testing hearth components.
//
// Key components:
//   - TestEnvironment: home directory and hearth home with isolation and cleanup
//   - FakeFetcher: stands in for git, materializing file trees on Clone
//   - ScriptedPrompter: answers confirmations from a fixed script
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when directories are renamed or when code goes
//     through the OS directly (legacy config import, git)
//   - All test data should be defined inline, not in external files
package testutil
