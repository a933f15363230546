// Package projects discovers recent JetBrains IDE projects and exposes them
// as searchable items.
//
// JetBrains IDEs keep their recent project list in an XML file below a
// per-version configuration directory, e.g.
//
//	~/.config/JetBrains/IntelliJIdea2024.1/options/recentProjects.xml
//
// Every IDE release creates a fresh directory, so discovery globs the vendor
// directory, parses the version number out of each directory name and reads
// the project list of the newest installed version only.
//
// A project's display name comes from .idea/.name inside the project
// directory when present, falling back to the directory's base name.
// Projects whose directory no longer exists are skipped.
//
// Definitions lists the supported products together with the desktop entry
// that opens their projects and the D-Bus object path suffix their search
// provider is exported at.
package projects
