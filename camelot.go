// Package camelot extracts tables from PDF documents by splitting a source
// document into self-contained single-page documents, correcting page
// orientation from observed text layout, and running a table parser over
// each corrected page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pdfcpu/, ledongthuc/, sqlite/);
// orchestration lives in extract/.
package camelot
