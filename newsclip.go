// Package newsclip extracts structured article records from Korean news
// pages. It resolves shortened links, dispatches the landing URL to a
// publisher-specific extractor, and normalizes the extracted fields into one
// canonical Article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, trafilatura/).
package newsclip
