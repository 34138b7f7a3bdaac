/*
Package loader turns a UI definition into a tree of widgets.

Loading happens in three steps:

 1. Parsing: the uidef package splits the source into ordered sections.
    Content before the first section is ignored.

 2. Construction (first pass): every section is resolved to a widget type
    through the injected Resolver, its known attributes are coerced to the
    type's declared field kinds and the widget is constructed. Sections
    without a `parent` attribute are root candidates; all others add a
    pending edge to the named parent.

 3. Attachment (second pass): each parent named by some section receives
    its full, ordered list of children in one assignment. Because every
    widget already exists after the first pass, forward references and
    arbitrarily deep nesting need no extra passes.

The first problem found aborts the load. User-facing problems are returned
as *Error, whose Kind can be matched with errors.Is against the Err*
sentinels and whose Subject points at the offending line. Problems with the
widget catalogue itself (for example a field kind the coercer does not
support) are returned as-is, since they are not caused by the definition.

A Loader holds no state between calls and is safe for concurrent use as
long as its Resolver is.
*/
package loader
