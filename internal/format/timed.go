package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/yt-transcript/internal/model"
)

const (
	webVTTHeader    = "WEBVTT\n\n"
	cueArrow        = " --> "
	srtMillisSep    = ","
	webVTTMillisSep = "."
)

func formatSRT(entries []model.TranscriptEntry) string {
	cues := cueTimes(entries, srtMillisSep)
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = strconv.Itoa(i+1) + "\n" + cues[i] + "\n" + e.Text
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func formatWebVTT(entries []model.TranscriptEntry) string {
	cues := cueTimes(entries, webVTTMillisSep)
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = cues[i] + "\n" + e.Text
	}
	return webVTTHeader + strings.Join(blocks, "\n\n") + "\n"
}

// cueTimes renders "start --> end" for every entry. A cue ends when the next
// one starts if they would otherwise overlap.
func cueTimes(entries []model.TranscriptEntry, millisSep string) []string {
	times := make([]string, len(entries))
	for i, e := range entries {
		end := e.End()
		if i < len(entries)-1 && entries[i+1].Start < end {
			end = entries[i+1].Start
		}
		times[i] = timestamp(e.Start, millisSep) + cueArrow + timestamp(end, millisSep)
	}
	return times
}

// timestamp renders seconds as HH:MM:SS<sep>mmm. Milliseconds are rounded to
// two decimals first and then truncated, so 0.8200000001s yields 820.
func timestamp(seconds float64, millisSep string) string {
	secsRem := math.Mod(seconds, 60)
	minsTotal := (seconds - secsRem) / 60
	mins := math.Mod(minsTotal, 60)
	hours := (minsTotal - mins) / 60

	frac := seconds - math.Trunc(seconds)
	millis := int(math.Round(frac*1000*100) / 100)

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", int(hours), int(mins), int(secsRem), millisSep, millis)
}
