package renamer

// Decision records the outcome the pipeline reached for a single file.
type Decision struct {
	// Source is the path the file was found under.
	Source string
	// NewName is the rendered replacement filename. Empty when the file
	// was skipped.
	NewName string
	// Destination is NewName resolved against the source's directory.
	Destination string
	// SizeBytes is the container size reported by the probe, for display.
	SizeBytes int64
	// Skipped reports that the prober did not recognize the file as media.
	Skipped bool
	// Executed reports that the rename was performed rather than planned.
	Executed bool
}
