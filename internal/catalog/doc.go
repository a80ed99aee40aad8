// Package catalog holds the static rules used to find and classify embedded
// hyperscript.
//
// A Catalog has four parts:
//
//   - carriers: ordered extraction rules, one per markup construct that can
//     hold a snippet (attributes in each quoting style, template tags, script
//     elements), each naming the capture group that holds the code
//   - commands: the closed command vocabulary, matched case-insensitively on
//     word boundaries. Classification treats letters from any script as word
//     characters, so "éshow" holds no command even though \b alone would match
//   - blocks: one detection rule per control-flow block kind; several rules may
//     report the same canonical kind (unless is reported as if)
//   - positional keywords: any match sets a single flag
//
// Catalogs are immutable once built and safe for concurrent use. Extraction
// and classification code treats a Catalog as injected configuration, so new
// carriers or vocabulary only require a new Catalog, built with New or Extend.
//
// # Extensions
//
// Extend layers a YAML-described Extension on top of a base catalog:
//
//	carriers:
//	  - name: x-hs
//	    pattern: 'x-hs="([^"]*)"'
//	    group: 1
//	commands: [morph]
//	blocks:
//	  - kind: tell
//	    pattern: '\btell\b'
//	positional: [random]
//
// Block patterns get the same Unicode-aware boundary check: a match whose
// first or last character continues a word in the surrounding text is ignored.
//
// The Fingerprint of a catalog changes with any rule, so caches keyed by it
// never return one catalog's results to another.
package catalog
