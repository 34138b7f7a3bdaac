// Package registry provides the lookup from class names used in UI
// definitions (e.g., "Button") to the widget types that implement them.
//
// A Registry is populated once at startup, usually by one or more Modules
// such as a toolkit kit, and is read-only afterwards. Registration checks
// each widget type's descriptor table, so a type declaring a field kind the
// loader cannot coerce is rejected before any definition is loaded.
package registry
