package transcript

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ytget/yt-transcript/internal/model"
)

// Watch page markers
const (
	consentFormSelector  = `form[action="https://consent.youtube.com/s"]`
	consentValueSelector = `input[name="v"]`
	recaptchaSelector    = ".g-recaptcha"
	consentCookieName    = "CONSENT"
	consentCookiePrefix  = "YES+"
)

var innertubeAPIKeyRe = regexp.MustCompile(`"INNERTUBE_API_KEY":\s*"([a-zA-Z0-9_-]+)"`)

type playerRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		Renderer *captionsRenderer `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionsRenderer struct {
	CaptionTracks        []captionTrack        `json:"captionTracks"`
	TranslationLanguages []translationLanguage `json:"translationLanguages"`
}

type captionTrack struct {
	Name           textRuns `json:"name"`
	LanguageCode   string   `json:"languageCode"`
	Kind           string   `json:"kind"`
	IsTranslatable bool     `json:"isTranslatable"`
}

type translationLanguage struct {
	LanguageCode string   `json:"languageCode"`
	LanguageName textRuns `json:"languageName"`
}

// textRuns is YouTube's localized text: either simpleText or a list of runs
type textRuns struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t textRuns) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// fetchTracks resolves the caption tracks of a video through the innertube
// player: manually created tracks first, then generated ones, each group
// keeping provider order.
func (c *Client) fetchTracks(ctx context.Context, videoID string) ([]model.TranscriptTrack, error) {
	html, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	key, err := extractAPIKey(html)
	if err != nil {
		return nil, err
	}

	var req playerRequest
	req.Context.Client.ClientName = innertubeClientName
	req.Context.Client.ClientVersion = innertubeClientVersion
	req.VideoID = videoID

	var resp playerResponse
	playerURL := c.baseURL + fmt.Sprintf(innertubePlayerPath, url.QueryEscape(key))
	if err := c.postJSON(ctx, playerURL, req, &resp); err != nil {
		return nil, err
	}

	if err := checkPlayability(resp); err != nil {
		return nil, err
	}
	if resp.Captions == nil || resp.Captions.Renderer == nil {
		return nil, ErrTranscriptsDisabled
	}

	return buildTracks(resp.Captions.Renderer), nil
}

// fetchWatchPage loads the watch page, accepting the cookie consent form once if shown
func (c *Client) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	pageURL := watchURL(c.baseURL, videoID)

	html, err := c.get(ctx, pageURL, nil)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if doc.Find(consentFormSelector).Length() == 0 {
		return html, nil
	}

	value, ok := doc.Find(consentValueSelector).Attr("value")
	if !ok {
		return nil, ErrConsentCookie
	}
	c.logger.Debug("accepting cookie consent", slog.String("video_id", videoID))

	header := http.Header{}
	header.Set("Cookie", consentCookieName+"="+consentCookiePrefix+value)
	html, err = c.get(ctx, pageURL, header)
	if err != nil {
		return nil, err
	}

	doc, err = goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if doc.Find(consentFormSelector).Length() > 0 {
		return nil, ErrConsentCookie
	}
	return html, nil
}

func extractAPIKey(html []byte) (string, error) {
	if m := innertubeAPIKeyRe.FindSubmatch(html); m != nil {
		return string(m[1]), nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err == nil && doc.Find(recaptchaSelector).Length() > 0 {
		return "", ErrTooManyRequests
	}
	return "", ErrUnparsable
}

func checkPlayability(resp playerResponse) error {
	status := resp.PlayabilityStatus.Status
	if status == "" || status == "OK" {
		return nil
	}

	reason := resp.PlayabilityStatus.Reason
	switch {
	case status == "LOGIN_REQUIRED" && strings.Contains(reason, "not a bot"):
		return ErrTooManyRequests
	case status == "ERROR" && (reason == "" || strings.Contains(reason, "unavailable")):
		return ErrVideoUnavailable
	case reason != "":
		return fmt.Errorf("%w: %s", ErrVideoUnplayable, reason)
	default:
		return ErrVideoUnplayable
	}
}

func buildTracks(r *captionsRenderer) []model.TranscriptTrack {
	var translations []model.TranslationLanguage
	for _, tl := range r.TranslationLanguages {
		translations = append(translations, model.TranslationLanguage{
			Language:     tl.LanguageName.String(),
			LanguageCode: tl.LanguageCode,
		})
	}

	var manual, generated []model.TranscriptTrack
	manualIdx := map[string]int{}
	generatedIdx := map[string]int{}

	for _, ct := range r.CaptionTracks {
		track := model.TranscriptTrack{
			Language:       ct.Name.String(),
			LanguageCode:   ct.LanguageCode,
			IsGenerated:    ct.Kind == "asr",
			IsTranslatable: ct.IsTranslatable,
		}
		if track.IsTranslatable {
			track.TranslationLanguages = translations
		}

		group, idx := &manual, manualIdx
		if track.IsGenerated {
			group, idx = &generated, generatedIdx
		}
		// A later track with the same language replaces the earlier one in place
		if i, seen := idx[track.LanguageCode]; seen {
			(*group)[i] = track
			continue
		}
		idx[track.LanguageCode] = len(*group)
		*group = append(*group, track)
	}

	return append(manual, generated...)
}
