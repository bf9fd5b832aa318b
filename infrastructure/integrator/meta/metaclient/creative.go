package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
)

// creativeDetailFields selects every signal the classifier inspects
const creativeDetailFields = "object_type,image_url,thumbnail_url,video_id," +
	"effective_object_story_id,object_story_spec,instagram_permalink_url," +
	"asset_feed_spec,effective_instagram_media_id"

// GetAdCreativeID resolves the creative id attached to an ad
func (c *MetaClient) GetAdCreativeID(adID, token string) (string, error) {
	params := url.Values{}
	params.Add("fields", "creative")
	params.Add("access_token", token)

	body, err := c.get(fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, adID, params.Encode()))
	if err != nil {
		return "", err
	}

	var ref metadomain.AdCreativeRef
	if err := json.Unmarshal(body, &ref); err != nil {
		return "", fmt.Errorf("error decoding ad creative reference: %w", err)
	}

	return ref.Creative.ID, nil
}

// GetCreativeDetail fetches the creative's media and story metadata
func (c *MetaClient) GetCreativeDetail(creativeID, token string) (*metadomain.CreativeDetail, error) {
	params := url.Values{}
	params.Add("fields", creativeDetailFields)
	params.Add("access_token", token)

	body, err := c.get(fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, creativeID, params.Encode()))
	if err != nil {
		return nil, err
	}

	var detail metadomain.CreativeDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("error decoding creative detail: %w", err)
	}

	return &detail, nil
}

// GetVideoSource looks up the playable source URL of a video. Permission
// gaps and private videos surface here as errors; callers fall back to the
// public watch page.
func (c *MetaClient) GetVideoSource(videoID, token string) (string, error) {
	params := url.Values{}
	params.Add("fields", "source")
	params.Add("access_token", token)

	body, err := c.get(fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, videoID, params.Encode()))
	if err != nil {
		return "", err
	}

	var video metadomain.VideoSource
	if err := json.Unmarshal(body, &video); err != nil {
		return "", fmt.Errorf("error decoding video source: %w", err)
	}

	return video.Source, nil
}

// GetInstagramMedia fetches the media object behind an Instagram-placed
// creative.
func (c *MetaClient) GetInstagramMedia(mediaID, token string) (*metadomain.InstagramMedia, error) {
	params := url.Values{}
	params.Add("fields", "media_url,media_type,permalink,thumbnail_url")
	params.Add("access_token", token)

	body, err := c.get(fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, mediaID, params.Encode()))
	if err != nil {
		return nil, err
	}

	var media metadomain.InstagramMedia
	if err := json.Unmarshal(body, &media); err != nil {
		return nil, fmt.Errorf("error decoding instagram media: %w", err)
	}

	return &media, nil
}
