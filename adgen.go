// Package adgen generates Google Ads assets for a website and parses the
// model's free-form answer into structured records.
//
// The parser (Segment, ExtractAdCopy, ExtractSnippets, Parse) is pure and
// tolerant: it never fails on malformed model output and degrades to empty
// or opaque structures instead.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, trafilatura/).
package adgen
