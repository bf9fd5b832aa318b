package meta

import (
	"fmt"
	"strings"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// AdInsights fetches all ad-level insight rows for the account and period
func (s *MetaIntegrator) AdInsights(account config.AdAccount, filters *domain.ReportFilters) ([]metadomain.InsightRow, error) {
	return s.Client.GetAdInsights(account.ID, account.Token, filters)
}

// CreativeDetails resolves and classifies the creative behind an ad: one
// round trip for the creative id, one for its media fields. Every failure
// path yields the unknown default; a single ad's creative never fails a
// report.
func (s *MetaIntegrator) CreativeDetails(adID, token string) *domain.CreativeDetails {
	creativeID, err := s.Client.GetAdCreativeID(adID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("creative: failed to resolve creative id")
		return domain.UnknownCreative()
	}

	if creativeID == "" {
		return domain.UnknownCreative()
	}

	detail, err := s.Client.GetCreativeDetail(creativeID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":       adID,
			"creative_id": creativeID,
			"error":       err.Error(),
		}).Warn("creative: failed to fetch creative detail")
		return domain.UnknownCreative()
	}

	// Instagram-placed creatives carry their own media object and win over
	// every other signal
	if detail.EffectiveInstagramMediaID != "" {
		return s.classifyInstagramMedia(detail.EffectiveInstagramMediaID, token)
	}

	return s.Classify(detail, token)
}

// creativeSignals is the normalized discriminator record extracted from a
// creative detail payload. The classifier cases read only from it.
type creativeSignals struct {
	objectType   string
	imageURL     string
	thumbnailURL string
	videoID      string
	permalink    string
	storyID      string

	feedVideoID   string
	feedThumbnail string
	hasFeedVideos bool

	hasLinkData     bool
	hasLinkImageRef bool
	linkImage       string
	linkLink        string
	linkVideoID     string
}

func extractSignals(detail *metadomain.CreativeDetail) creativeSignals {
	sig := creativeSignals{
		objectType:   detail.ObjectType,
		imageURL:     detail.ImageURL,
		thumbnailURL: detail.ThumbnailURL,
		videoID:      detail.VideoID,
		permalink:    detail.InstagramPermalinkURL,
		storyID:      detail.EffectiveObjectStoryID,
	}

	if len(detail.AssetFeedSpec.Videos) > 0 {
		sig.hasFeedVideos = true
		sig.feedVideoID = detail.AssetFeedSpec.Videos[0].VideoID
		sig.feedThumbnail = detail.AssetFeedSpec.Videos[0].ThumbnailURL
	}

	linkData := detail.ObjectStorySpec.LinkData
	sig.hasLinkData = !linkData.IsZero()
	sig.linkLink = linkData.Link
	sig.linkVideoID = linkData.VideoID
	sig.linkImage = firstNonEmpty(linkData.ImageURL, linkData.Picture)
	sig.hasLinkImageRef = linkData.ImageHash != "" || sig.linkImage != ""

	return sig
}

// classifierCase inspects the signals and either produces a classification
// or falls through to the next case.
type classifierCase func(sig creativeSignals) (*domain.CreativeDetails, bool)

// Classify runs the creative through the ordered priority table. The first
// matching case wins; no case matching means the creative stays unknown.
func (s *MetaIntegrator) Classify(detail *metadomain.CreativeDetail, token string) *domain.CreativeDetails {
	sig := extractSignals(detail)

	cases := []classifierCase{
		s.videoCase(token),
		s.photoCase(),
		s.shareCase(token),
		s.thumbnailCase(),
	}

	for _, classify := range cases {
		if details, ok := classify(sig); ok {
			return details
		}
	}

	return domain.UnknownCreative()
}

// videoCase matches explicit videos: a VIDEO object type or any resolvable
// video id from the top level or the asset feed.
func (s *MetaIntegrator) videoCase(token string) classifierCase {
	return func(sig creativeSignals) (*domain.CreativeDetails, bool) {
		videoID := firstNonEmpty(sig.videoID, sig.feedVideoID)
		if sig.objectType != "VIDEO" && videoID == "" {
			return nil, false
		}

		display := firstNonEmpty(sig.thumbnailURL, sig.feedThumbnail, sig.imageURL)

		return &domain.CreativeDetails{
			ContentType: domain.ContentTypeVideo,
			DisplayURL:  display,
			TargetURL:   s.resolveVideoTarget(videoID, display, token),
		}, true
	}
}

// photoCase matches explicit photos: a PHOTO object type or an image at the
// top level or inside the story link data. It claims SHARE creatives too, so
// the share sub-cases below only see shares without an image URL.
func (s *MetaIntegrator) photoCase() classifierCase {
	return func(sig creativeSignals) (*domain.CreativeDetails, bool) {
		if sig.objectType != "PHOTO" && sig.imageURL == "" && sig.linkImage == "" {
			return nil, false
		}

		display := firstNonEmpty(sig.imageURL, sig.linkImage, sig.thumbnailURL)

		return &domain.CreativeDetails{
			ContentType: domain.ContentTypePhoto,
			DisplayURL:  display,
			TargetURL:   display,
		}, true
	}
}

// shareCase disambiguates SHARE creatives, which can hide a feed video, a
// link-data video or image, an Instagram post, or nothing but a thumbnail.
func (s *MetaIntegrator) shareCase(token string) classifierCase {
	return func(sig creativeSignals) (*domain.CreativeDetails, bool) {
		if sig.objectType != "SHARE" {
			return nil, false
		}

		switch {
		case sig.hasFeedVideos:
			display := firstNonEmpty(sig.feedThumbnail, sig.thumbnailURL)
			return &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  display,
				TargetURL:   s.resolveVideoTarget(sig.feedVideoID, display, token),
			}, true

		case sig.hasLinkData && sig.linkVideoID != "":
			display := firstNonEmpty(sig.thumbnailURL, sig.feedThumbnail, sig.imageURL, sig.linkImage)
			return &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  display,
				TargetURL:   s.resolveVideoTarget(sig.linkVideoID, display, token),
			}, true

		case sig.hasLinkData && sig.hasLinkImageRef:
			display := firstNonEmpty(sig.imageURL, sig.linkImage, sig.thumbnailURL)
			return &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  display,
				TargetURL:   firstNonEmpty(sig.linkLink, display),
			}, true

		case sig.permalink != "":
			contentType := domain.ContentTypePhoto
			if sig.thumbnailURL != "" {
				contentType = domain.ContentTypeVideo
			}
			return &domain.CreativeDetails{
				ContentType: contentType,
				DisplayURL:  firstNonEmpty(sig.thumbnailURL, sig.imageURL),
				TargetURL:   sig.permalink,
			}, true

		case sig.thumbnailURL != "":
			return &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  sig.thumbnailURL,
				TargetURL:   instagramPostURL(sig.storyID, sig.thumbnailURL),
			}, true

		default:
			display := firstNonEmpty(sig.imageURL, sig.thumbnailURL)
			return &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  display,
				TargetURL:   firstNonEmpty(sig.linkLink, display),
			}, true
		}
	}
}

// thumbnailCase is the last resort for creatives whose only signal is a
// thumbnail without any object type.
func (s *MetaIntegrator) thumbnailCase() classifierCase {
	return func(sig creativeSignals) (*domain.CreativeDetails, bool) {
		if sig.thumbnailURL == "" {
			return nil, false
		}

		return &domain.CreativeDetails{
			ContentType: domain.ContentTypePhoto,
			DisplayURL:  sig.thumbnailURL,
			TargetURL:   sig.thumbnailURL,
		}, true
	}
}

// resolveVideoTarget picks the best playable URL for a video: the source
// lookup, then the public watch page, then the display URL when there is no
// video id at all.
func (s *MetaIntegrator) resolveVideoTarget(videoID, displayURL, token string) string {
	if videoID == "" {
		return displayURL
	}

	source, err := s.Client.GetVideoSource(videoID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"video_id": videoID,
			"error":    err.Error(),
		}).Debug("creative: could not fetch video source, using watch page")
	}

	if source != "" {
		return source
	}

	return fmt.Sprintf("https://www.facebook.com/watch/?v=%s", videoID)
}

// instagramPostURL builds a post URL from an effective story id of the form
// "{page}_{post}". The id format is undocumented; anything else falls back
// to the given URL.
func instagramPostURL(storyID, fallback string) string {
	if !strings.Contains(storyID, "_") {
		return fallback
	}

	parts := strings.SplitN(storyID, "_", 2)
	return fmt.Sprintf("https://www.instagram.com/p/%s/", parts[1])
}

func (s *MetaIntegrator) classifyInstagramMedia(mediaID, token string) *domain.CreativeDetails {
	media, err := s.Client.GetInstagramMedia(mediaID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"media_id": mediaID,
			"error":    err.Error(),
		}).Warn("creative: failed to fetch instagram media")
		return domain.UnknownCreative()
	}

	contentType := domain.ContentTypeUnknown
	switch media.MediaType {
	case "VIDEO":
		contentType = domain.ContentTypeVideo
	case "IMAGE":
		contentType = domain.ContentTypePhoto
	}

	return &domain.CreativeDetails{
		ContentType: contentType,
		DisplayURL:  firstNonEmpty(media.ThumbnailURL, media.MediaURL),
		TargetURL:   media.MediaURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
