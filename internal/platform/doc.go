package platform

// Package platform contains OS/platform integration and URL/file glue:
// video and playlist ID extraction, filename sanitizing, transcript file
// writing, playlist expansion via the ytdlp library, and OS open/reveal.
