package meta

import (
	"testing"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/meta/mocks"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	return New(&config.Config{}, client), client
}

func TestClassify(t *testing.T) {
	const token = "token-1"

	tests := []struct {
		name     string
		detail   *metadomain.CreativeDetail
		setup    func(client *mocks.MockClient)
		expected *domain.CreativeDetails
	}{
		{
			name: "video wins over image when both are present",
			detail: &metadomain.CreativeDetail{
				ObjectType:   "VIDEO",
				VideoID:      "v1",
				ImageURL:     "https://cdn/image.jpg",
				ThumbnailURL: "https://cdn/thumb.jpg",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetVideoSource("v1", token).
					Return("https://video/source.mp4", nil)
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://video/source.mp4",
			},
		},
		{
			name: "video without source falls back to the watch page",
			detail: &metadomain.CreativeDetail{
				ObjectType:   "VIDEO",
				VideoID:      "v2",
				ThumbnailURL: "https://cdn/thumb.jpg",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetVideoSource("v2", token).
					Return("", nil)
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://www.facebook.com/watch/?v=v2",
			},
		},
		{
			name: "photo uses the image for both urls",
			detail: &metadomain.CreativeDetail{
				ObjectType: "PHOTO",
				ImageURL:   "https://cdn/photo.jpg",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/photo.jpg",
				TargetURL:   "https://cdn/photo.jpg",
			},
		},
		{
			name: "share with feed video classifies as video",
			detail: &metadomain.CreativeDetail{
				ObjectType: "SHARE",
				AssetFeedSpec: metadomain.AssetFeedSpec{
					Videos: []metadomain.FeedVideo{
						{VideoID: "v3", ThumbnailURL: "https://cdn/feed-thumb.jpg"},
					},
				},
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetVideoSource("v3", token).
					Return("https://video/feed.mp4", nil)
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/feed-thumb.jpg",
				TargetURL:   "https://video/feed.mp4",
			},
		},
		{
			name: "share with link data video classifies as video",
			detail: &metadomain.CreativeDetail{
				ObjectType:   "SHARE",
				ThumbnailURL: "https://cdn/thumb.jpg",
				ObjectStorySpec: metadomain.StorySpec{
					LinkData: metadomain.LinkData{VideoID: "v4"},
				},
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetVideoSource("v4", token).
					Return("https://video/link.mp4", nil)
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://video/link.mp4",
			},
		},
		{
			name: "share with a top-level image classifies as photo",
			detail: &metadomain.CreativeDetail{
				ObjectType:             "SHARE",
				ImageURL:               "https://cdn/image.jpg",
				ThumbnailURL:           "https://cdn/thumb.jpg",
				EffectiveObjectStoryID: "123_456",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/image.jpg",
				TargetURL:   "https://cdn/image.jpg",
			},
		},
		{
			name: "share with a link data image classifies as photo",
			detail: &metadomain.CreativeDetail{
				ObjectType: "SHARE",
				ObjectStorySpec: metadomain.StorySpec{
					LinkData: metadomain.LinkData{
						ImageURL: "https://cdn/link-image.jpg",
						Link:     "https://shop.example.com/product/42",
					},
				},
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/link-image.jpg",
				TargetURL:   "https://cdn/link-image.jpg",
			},
		},
		{
			name: "share with only an image hash prefers the link destination",
			detail: &metadomain.CreativeDetail{
				ObjectType:   "SHARE",
				ThumbnailURL: "https://cdn/thumb.jpg",
				ObjectStorySpec: metadomain.StorySpec{
					LinkData: metadomain.LinkData{
						ImageHash: "a1b2c3",
						Link:      "https://shop.example.com/product/42",
					},
				},
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://shop.example.com/product/42",
			},
		},
		{
			name: "share with permalink and thumbnail classifies as video",
			detail: &metadomain.CreativeDetail{
				ObjectType:            "SHARE",
				ThumbnailURL:          "https://cdn/thumb.jpg",
				InstagramPermalinkURL: "https://www.instagram.com/p/abc/",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://www.instagram.com/p/abc/",
			},
		},
		{
			name: "share with permalink and no thumbnail classifies as photo",
			detail: &metadomain.CreativeDetail{
				ObjectType:            "SHARE",
				InstagramPermalinkURL: "https://www.instagram.com/p/def/",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "",
				TargetURL:   "https://www.instagram.com/p/def/",
			},
		},
		{
			name: "share with image and permalink keeps the image target",
			detail: &metadomain.CreativeDetail{
				ObjectType:            "SHARE",
				ImageURL:              "https://cdn/image.jpg",
				InstagramPermalinkURL: "https://www.instagram.com/p/def/",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/image.jpg",
				TargetURL:   "https://cdn/image.jpg",
			},
		},
		{
			name: "share with thumbnail only derives the instagram post url",
			detail: &metadomain.CreativeDetail{
				ObjectType:             "SHARE",
				ThumbnailURL:           "https://cdn/thumb.jpg",
				EffectiveObjectStoryID: "123_456",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://www.instagram.com/p/456/",
			},
		},
		{
			name: "share with thumbnail and malformed story id keeps the thumbnail",
			detail: &metadomain.CreativeDetail{
				ObjectType:             "SHARE",
				ThumbnailURL:           "https://cdn/thumb.jpg",
				EffectiveObjectStoryID: "123456",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypeVideo,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://cdn/thumb.jpg",
			},
		},
		{
			name: "thumbnail without object type classifies as photo",
			detail: &metadomain.CreativeDetail{
				ThumbnailURL: "https://cdn/thumb.jpg",
			},
			expected: &domain.CreativeDetails{
				ContentType: domain.ContentTypePhoto,
				DisplayURL:  "https://cdn/thumb.jpg",
				TargetURL:   "https://cdn/thumb.jpg",
			},
		},
		{
			name:     "no signals stays unknown",
			detail:   &metadomain.CreativeDetail{},
			expected: domain.UnknownCreative(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			if tt.setup != nil {
				tt.setup(client)
			}

			result := integrator.Classify(tt.detail, token)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCreativeDetails(t *testing.T) {
	const token = "token-1"

	t.Run("instagram media wins over every other signal", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().GetAdCreativeID("ad-1", token).Return("cr-1", nil)
		client.EXPECT().GetCreativeDetail("cr-1", token).Return(&metadomain.CreativeDetail{
			ObjectType:                "VIDEO",
			VideoID:                   "v1",
			EffectiveInstagramMediaID: "ig-1",
		}, nil)
		client.EXPECT().GetInstagramMedia("ig-1", token).Return(&metadomain.InstagramMedia{
			MediaType:    "VIDEO",
			MediaURL:     "https://ig/video.mp4",
			ThumbnailURL: "https://ig/thumb.jpg",
		}, nil)

		result := integrator.CreativeDetails("ad-1", token)

		assert.Equal(t, &domain.CreativeDetails{
			ContentType: domain.ContentTypeVideo,
			DisplayURL:  "https://ig/thumb.jpg",
			TargetURL:   "https://ig/video.mp4",
		}, result)
	})

	t.Run("creative id lookup failure yields unknown", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().GetAdCreativeID("ad-1", token).Return("", assert.AnError)

		result := integrator.CreativeDetails("ad-1", token)
		assert.Equal(t, domain.UnknownCreative(), result)
	})

	t.Run("creative detail failure yields unknown", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().GetAdCreativeID("ad-1", token).Return("cr-1", nil)
		client.EXPECT().GetCreativeDetail("cr-1", token).Return(nil, assert.AnError)

		result := integrator.CreativeDetails("ad-1", token)
		assert.Equal(t, domain.UnknownCreative(), result)
	})
}
