// Package format turns an ordered list of transcript entries into the text of
// one of the supported output formats. Every format is a pure function; the
// output mirrors what the widely used youtube-transcript-api formatters emit so
// files stay interchangeable with tools built around them.
package format
