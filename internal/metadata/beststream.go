package metadata

import (
	"strings"

	"metamv/internal/media/ffprobe"
)

// BestStream selects the preferred stream of a kind the way ffmpeg's
// automatic stream selection does: video picks the largest frame (attached
// pictures excluded), audio picks the most channels, subtitles take the
// first stream. Between equals a default-disposition stream wins, then the
// lower index. Returns the position in streams and whether a stream of the
// kind exists.
func BestStream(streams []ffprobe.Stream, codecType string) (int, bool) {
	bestPos := -1
	var bestScore int64
	bestDefault := false

	for i, s := range streams {
		if !strings.EqualFold(s.CodecType, codecType) {
			continue
		}
		if codecType == "video" && s.Disposition["attached_pic"] != 0 {
			continue
		}

		var score int64
		switch codecType {
		case "video":
			score = int64(s.Width) * int64(s.Height)
		case "audio":
			score = int64(s.Channels)
		}
		isDefault := s.Disposition["default"] != 0

		better := bestPos == -1 ||
			score > bestScore ||
			(score == bestScore && isDefault && !bestDefault)
		if better {
			bestPos = i
			bestScore = score
			bestDefault = isDefault
		}
	}

	return bestPos, bestPos >= 0
}
