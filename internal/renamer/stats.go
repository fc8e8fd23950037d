package renamer

import "fmt"

// Stats aggregates per-file outcomes across a run.
type Stats struct {
	Scanned int // files handed to the prober
	Renamed int // renames executed
	Planned int // renames recorded during a dry run
	Skipped int // files the prober did not recognize as media
	Failed  int // files that errored
}

// String renders the one-line summary reported after a run.
func (s Stats) String() string {
	return fmt.Sprintf("scanned %d, renamed %d, planned %d, skipped %d, failed %d",
		s.Scanned, s.Renamed, s.Planned, s.Skipped, s.Failed)
}

func (s *Stats) merge(other Stats) {
	s.Scanned += other.Scanned
	s.Renamed += other.Renamed
	s.Planned += other.Planned
	s.Skipped += other.Skipped
	s.Failed += other.Failed
}
