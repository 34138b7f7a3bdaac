/*
Package uidef reads the line-oriented UI definition format into an ordered
list of sections.

A definition looks like this:

	# main window
	[Frame1]
	class: Frame

	[Button1]
	class: Button
	parent: Frame1
	text: Big, red button!

Each `[Name]` header opens a section; every `key: value` line below it adds
an attribute. Names are word characters, optionally prefixed with a dot.
Lines starting with `#` or `;` are comments. Keys end at the first colon.
Keys and values are kept verbatim after trimming, so commas, quotes,
backticks and `#` survive. Content before the first header forms the
preamble, which callers usually ignore.

Every section and attribute carries an hcl.Range so that later stages can
point at the offending line.
*/
package uidef
