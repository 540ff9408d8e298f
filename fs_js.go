//go:build js

package harlog

// Browser and other js/wasm hosts have no usable filesystem; entries go to
// the console and file destinations are skipped.
const hasFilesystem = false
