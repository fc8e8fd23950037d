package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"metamv/internal/config"
	"metamv/internal/logging"
	"metamv/internal/media/ffprobe"
	"metamv/internal/metadata"
	"metamv/internal/nametpl"
)

// ProbeFunc reads container metadata for path using the given binary. It
// matches ffprobe.Inspect and exists so tests can substitute canned results.
type ProbeFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Options configures a Renamer.
type Options struct {
	// Template is the filename template text. When empty, the configured
	// [rename] template applies.
	Template string
	// DatetimeFormat overrides the configured strftime pattern used to
	// normalize creation_time values.
	DatetimeFormat string
	// Execute performs renames instead of planning them.
	Execute bool
	// Probe overrides the ffprobe invocation. Nil selects ffprobe.Inspect.
	Probe ProbeFunc
}

// Renamer applies one compiled template to files and directory trees.
type Renamer struct {
	cfg      *config.Config
	logger   *slog.Logger
	tpl      *nametpl.Template
	datetime string
	execute  bool
	probe    ProbeFunc
}

// New compiles the template once and returns a Renamer ready for any number
// of ProcessFile and ProcessDir calls.
func New(cfg *config.Config, logger *slog.Logger, opts Options) (*Renamer, error) {
	if cfg == nil {
		return nil, Wrap(ErrConfiguration, "new", "configuration is required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	text := opts.Template
	if strings.TrimSpace(text) == "" {
		text = cfg.Rename.Template
	}
	if strings.TrimSpace(text) == "" {
		return nil, Wrap(ErrConfiguration, "template", "no filename template configured", nil)
	}
	tpl, err := nametpl.Compile(text)
	if err != nil {
		return nil, Wrap(ErrTemplate, "compile", "", err)
	}

	datetime := strings.TrimSpace(opts.DatetimeFormat)
	if datetime == "" {
		datetime = cfg.Rename.DatetimeFormat
	}

	probe := opts.Probe
	if probe == nil {
		probe = ffprobe.Inspect
	}

	return &Renamer{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "renamer"),
		tpl:      tpl,
		datetime: datetime,
		execute:  opts.Execute,
		probe:    probe,
	}, nil
}

// Template returns the compiled template text.
func (r *Renamer) Template() string {
	return r.tpl.Text()
}

// Execute reports whether renames are performed rather than planned.
func (r *Renamer) Execute() bool {
	return r.execute
}

// ProcessFile probes path, renders its replacement name, and either executes
// the rename or records what would happen. Files the prober does not
// recognize as media are skipped without error.
func (r *Renamer) ProcessFile(ctx context.Context, path string) (Decision, error) {
	decision := Decision{Source: path}

	result, err := r.probe(ctx, r.cfg.FFprobeBinary(), path)
	if err != nil {
		if errors.Is(err, ffprobe.ErrNotMedia) {
			decision.Skipped = true
			r.logger.Debug("skipping non-media file",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
			return decision, nil
		}
		return decision, Wrap(ErrProbe, "probe", "", err)
	}
	if err := result.ValidateStreams(); err != nil {
		return decision, Wrap(ErrProbe, "validate streams", "", err)
	}

	tctx, err := metadata.Extract(result, r.datetime)
	if err != nil {
		return decision, Wrap(ErrMetadata, "build context", "", err)
	}
	base := filepath.Base(path)
	tctx["org"] = base
	tctx["original"] = base
	tctx["original_filename"] = base

	name, err := r.tpl.Render(tctx)
	if err != nil {
		return decision, Wrap(ErrTemplate, "render", "", err)
	}
	decision.NewName = name
	decision.SizeBytes = result.SizeBytes()

	dest := filepath.Join(filepath.Dir(path), name)
	decision.Destination = dest

	// Lstat keeps dangling symlinks at the destination counting as
	// occupied. Renaming a file onto its current name is a collision too.
	if _, err := os.Lstat(dest); err == nil {
		return decision, Wrap(ErrCollision, "rename", fmt.Sprintf("destination %s already exists", dest), nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return decision, Wrap(ErrFilesystem, "stat destination", "", err)
	}

	if !r.execute {
		r.logger.Info("rename planned",
			logging.String(logging.FieldPath, path),
			logging.String(logging.FieldDestination, dest))
		return decision, nil
	}

	if err := os.Rename(path, dest); err != nil {
		return decision, Wrap(ErrFilesystem, "rename", "", err)
	}
	decision.Executed = true
	r.logger.Info("renamed",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldDestination, dest))
	return decision, nil
}

// ProcessDir walks dir depth first and processes every file it finds. The
// returned decisions cover planned and executed renames in traversal order.
// Per-file failures are logged and counted in Stats without stopping the
// walk; a directory that cannot be read ends the walk with an error.
func (r *Renamer) ProcessDir(ctx context.Context, dir string) ([]Decision, Stats, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, Stats{}, Wrap(ErrConfiguration, "process directory", "", err)
	}
	if !info.IsDir() {
		return nil, Stats{}, Wrap(ErrConfiguration, "process directory", fmt.Sprintf("%s is not a directory", dir), nil)
	}
	return r.walkDir(ctx, dir)
}

func (r *Renamer) walkDir(ctx context.Context, dir string) ([]Decision, Stats, error) {
	var (
		decisions []Decision
		stats     Stats
	)

	f, err := os.Open(dir)
	if err != nil {
		return nil, stats, Wrap(ErrFilesystem, "read directory", "", err)
	}
	// Snapshot the listing up front so renames in this directory cannot
	// disturb the iteration.
	entries, listErr := f.ReadDir(-1)
	f.Close()
	if listErr != nil {
		r.logger.Warn("directory listing incomplete",
			logging.String(logging.FieldPath, dir),
			logging.Error(listErr))
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		if !isDir && entry.Type()&fs.ModeSymlink != 0 {
			// Symlinked directories are walked like real ones. A failing
			// stat demotes the entry to a file and lets the prober decide.
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				isDir = true
			}
		}

		if isDir {
			childDecisions, childStats, err := r.walkDir(ctx, path)
			decisions = append(decisions, childDecisions...)
			stats.merge(childStats)
			if err != nil {
				return decisions, stats, err
			}
			continue
		}

		decision, err := r.ProcessFile(ctx, path)
		stats.Scanned++
		switch {
		case err != nil:
			stats.Failed++
			r.logger.Error("processing failed",
				logging.String(logging.FieldPath, path),
				logging.String("category", Category(err)),
				logging.Error(err))
		case decision.Skipped:
			stats.Skipped++
		case decision.Executed:
			stats.Renamed++
			decisions = append(decisions, decision)
		default:
			stats.Planned++
			decisions = append(decisions, decision)
		}
	}

	return decisions, stats, nil
}
