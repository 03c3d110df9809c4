// Package manualgen converts a directory of Markdown manual files into a
// static, single-page HTML website with embedded navigation, syntax
// highlighting, and client-side search. It runs as a single linear pipeline:
// discover files, parse each into a document record, convert Markdown to
// HTML, assemble one page, and write the page plus its fixed assets to disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, fs/).
package manualgen
