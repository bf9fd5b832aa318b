package metadomain

// AdCreativeRef is the ad lookup response carrying the creative id
type AdCreativeRef struct {
	Creative struct {
		ID string `json:"id"`
	} `json:"creative"`
	ID string `json:"id"`
}

// CreativeDetail is the creative lookup response. Which fields are populated
// varies wildly by creative kind (photo, video, share, dynamic, Instagram).
type CreativeDetail struct {
	ObjectType                string        `json:"object_type"`
	ImageURL                  string        `json:"image_url"`
	ThumbnailURL              string        `json:"thumbnail_url"`
	VideoID                   string        `json:"video_id"`
	EffectiveObjectStoryID    string        `json:"effective_object_story_id"`
	InstagramPermalinkURL     string        `json:"instagram_permalink_url"`
	EffectiveInstagramMediaID string        `json:"effective_instagram_media_id"`
	ObjectStorySpec           StorySpec     `json:"object_story_spec"`
	AssetFeedSpec             AssetFeedSpec `json:"asset_feed_spec"`
}

// StorySpec describes how a shared story renders
type StorySpec struct {
	LinkData LinkData `json:"link_data"`
}

// LinkData is the link-rendering part of a story spec
type LinkData struct {
	ImageURL  string `json:"image_url"`
	ImageHash string `json:"image_hash"`
	Picture   string `json:"picture"`
	Link      string `json:"link"`
	VideoID   string `json:"video_id"`
}

// IsZero reports whether no link data came back at all
func (l LinkData) IsZero() bool {
	return l.ImageURL == "" && l.ImageHash == "" && l.Picture == "" && l.Link == "" && l.VideoID == ""
}

// AssetFeedSpec bundles candidate media of a dynamic creative
type AssetFeedSpec struct {
	Videos []FeedVideo `json:"videos"`
}

// FeedVideo is one video candidate in an asset feed
type FeedVideo struct {
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// VideoSource is the video lookup response with the playable source URL
type VideoSource struct {
	Source string `json:"source"`
}

// InstagramMedia is the Instagram media lookup response
type InstagramMedia struct {
	MediaURL     string `json:"media_url"`
	MediaType    string `json:"media_type"`
	Permalink    string `json:"permalink"`
	ThumbnailURL string `json:"thumbnail_url"`
}
