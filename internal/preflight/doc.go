// Package preflight provides readiness checks for the external binary and
// filesystem paths a rename run depends on.
//
// The root command calls RunAll before constructing the pipeline: a missing
// ffprobe binary or an inaccessible target aborts the run before any file is
// probed, so operators see one actionable message instead of a failure per
// file. The individual check functions are also usable on their own.
package preflight
