// Package renamer drives the probe, extract, render, rename pipeline.
//
// ProcessFile handles one file: probe its container metadata, build the
// template context, render the replacement filename, refuse collisions, and
// either execute the rename or record what would happen. ProcessDir applies
// the same treatment to every file under a directory tree, depth first.
// Per-file failures are logged and counted without stopping the walk;
// directory access failures propagate and end the run.
//
// The pipeline plans renames by default and touches the filesystem only
// when Options.Execute is set.
package renamer
