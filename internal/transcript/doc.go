// Package transcript talks to YouTube: it lists the caption tracks of a video
// through the innertube player, downloads the default-language transcript with
// the youtube-transcript-api-go library and looks up video titles through the
// public oEmbed endpoint. Provider failures are reported as *ProviderError
// carrying the provider's message.
package transcript
