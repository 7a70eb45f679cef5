// Package text_adapter implements the plain-text job grammar, where every
// declaration has the form `job => dependency` and the dependency may be
// left empty:
//
//	a =>
//	b => c
//	c =>
//
// Declarations are usually one per line. The literal two-character sequence
// `\n` is accepted as a line break as well, so a whole list can be passed as
// a single shell argument.
package text_adapter
