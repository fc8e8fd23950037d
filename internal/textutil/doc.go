// Package textutil provides filename-oriented text helpers.
//
// Rendered filenames come straight out of user templates fed with container
// metadata, which can carry path separators and other characters a filesystem
// rejects. These helpers are exposed to templates as the sanitize and token
// functions; nothing applies them implicitly, so a template that never calls
// them keeps the raw metadata untouched.
package textutil
