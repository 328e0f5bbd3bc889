// Package logwriter serializes a run's record sequence to a uniquely named
// artifact for offline analysis.
//
// Two writers are provided: [JSON] (the format downstream visualization
// expects) and [YAML] (same content, friendlier for quick eyeballing).
// Both validate the record list against a JSON schema before touching disk,
// so a malformed sequence fails loudly instead of producing a corrupt
// artifact.
//
// Filenames follow logs_<label>_<timestamp>.<ext>, e.g.
//
//	logs_injective_20250419_142551.json
//
// so repeated runs never collide. Writers hold no state between calls; call
// Write once per mode after the corresponding loop has fully terminated.
package logwriter
