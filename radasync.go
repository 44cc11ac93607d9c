// Package radasync mirrors the editions of Ukrainian legal documents published
// by the Verkhovna Rada legislative database into a git repository. Every
// edition becomes one markdown revision of the document's file and one commit,
// and a ledger stored in the repository remembers how far each document has
// been synchronized.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/, git/).
package radasync
