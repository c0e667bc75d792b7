// Package projects implements tenant-scoped project storage with
// append-only versioned design documents.
//
// # Overview
//
// A project belongs to exactly one company, and every query in this
// package binds the caller's company id, so cross-tenant rows read as
// missing rather than forbidden.
//
// Design documents are stored in project_data as immutable revisions.
// Saving never updates a row: each save inserts version
// max(version)+1 for the project, and reads return the highest version.
// A project with no saves reports version 0 with a nil document.
//
// Folders group projects into a tree via their parent id, and PDF
// backgrounds attach uploaded plan underlays to a project.
package projects
