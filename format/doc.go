// Package format names the text formats trees are read from and written
// to.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap/parse - Parse text to IR
//   - github.com/signadot/fieldmap/encode - Encode IR to text
package format
