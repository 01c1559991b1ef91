// Package newsprint models a single downloadable, parseable news article and
// the pipeline that turns a URL into structured content: resolved HTML,
// derived DOM views, extracted text, and keyword/summary data.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, readability/).
package newsprint
