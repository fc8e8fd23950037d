package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"metamv/internal/config"
	"metamv/internal/language"
	"metamv/internal/media/ffprobe"
	"metamv/internal/metadata"
)

func newInspectCommand(cmdCtx *commandContext) *cobra.Command {
	var asJSON bool
	var raw bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Probe a media file and show its template context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				out.Write(bytes.TrimRight(result.RawJSON(), "\n"))
				fmt.Fprintln(out)
				return nil
			}

			tctx, err := metadata.Extract(result, cfg.Rename.DatetimeFormat)
			if err != nil {
				return err
			}
			base := filepath.Base(path)
			tctx["org"] = base
			tctx["original"] = base
			tctx["original_filename"] = base

			if asJSON {
				return writeJSON(cmd, tctx)
			}
			renderInspect(out, path, result, tctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the template context as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the unmodified prober output")
	cmd.MarkFlagsMutuallyExclusive("json", "raw")
	return cmd
}

func renderInspect(out io.Writer, path string, result ffprobe.Result, tctx metadata.Context) {
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Format", "Duration", "Size", "Bit Rate", "Streams"},
		[][]string{{
			filepath.Base(path),
			result.Format.FormatName,
			formatDuration(result.DurationSeconds()),
			humanize.IBytes(uint64(result.SizeBytes())),
			formatBitRate(result.BitRate()),
			streamSummary(result),
		}},
		nil,
	))

	if len(result.Streams) > 0 {
		rows := make([][]string, 0, len(result.Streams))
		for _, s := range result.Streams {
			dispositions := strings.Join(s.ActiveDispositions(), "+")
			if dispositions == "" {
				dispositions = "-"
			}
			rows = append(rows, []string{
				strconv.Itoa(s.Index),
				s.CodecType,
				s.CodecName,
				streamDetail(s),
				dispositions,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Type", "Codec", "Detail", "Disposition"},
			rows,
			[]columnAlignment{alignRight},
		))
	}

	keys := make([]string, 0, len(tctx))
	for key := range tctx {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fmt.Fprintf(out, "Template keys: %s\n", strings.Join(keys, ", "))
}

func streamDetail(s ffprobe.Stream) string {
	switch s.CodecType {
	case "video":
		detail := fmt.Sprintf("%dx%d", s.Width, s.Height)
		if s.PixFmt != "" {
			detail += " " + s.PixFmt
		}
		if rate, ok := ffprobe.ParseRational(s.RFrameRate); ok && rate.Float() > 0 {
			detail += fmt.Sprintf(" %.3f fps", rate.Float())
		}
		return detail
	case "audio":
		detail := fmt.Sprintf("%s Hz %dch", s.SampleRate, s.Channels)
		if s.ChannelLayout != "" {
			detail += " " + s.ChannelLayout
		}
		return detail
	default:
		if code := language.FromTags(s.Tags); code != "" {
			return language.DisplayName(code)
		}
		return "-"
	}
}

func formatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		return "unknown"
	}
	d := time.Duration(seconds * float64(time.Second))
	return d.Truncate(time.Second).String()
}

func formatBitRate(bitsPerSecond int64) string {
	if bitsPerSecond <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(bitsPerSecond), 1, "b/s")
}

func streamSummary(result ffprobe.Result) string {
	total := strconv.Itoa(len(result.Streams))
	var kinds []string
	if n := result.VideoStreamCount(); n > 0 {
		kinds = append(kinds, fmt.Sprintf("%d video", n))
	}
	if n := result.AudioStreamCount(); n > 0 {
		kinds = append(kinds, fmt.Sprintf("%d audio", n))
	}
	if n := result.SubtitleStreamCount(); n > 0 {
		kinds = append(kinds, fmt.Sprintf("%d subtitle", n))
	}
	if len(kinds) == 0 {
		return total
	}
	return fmt.Sprintf("%s (%s)", total, strings.Join(kinds, ", "))
}
