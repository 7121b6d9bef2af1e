package ocr

import (
	"context"
	"fmt"

	"github.com/Daemon-Craft/MaplePath/internal/config"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

const textDetection = "TEXT_DETECTION"

type annotator interface {
	Annotate(ctx context.Context, req *vision.BatchAnnotateImagesRequest) (*vision.BatchAnnotateImagesResponse, error)
}

type visionAnnotator struct {
	images *vision.ImagesService
}

func (v *visionAnnotator) Annotate(ctx context.Context, req *vision.BatchAnnotateImagesRequest) (*vision.BatchAnnotateImagesResponse, error) {
	return v.images.Annotate(req).Context(ctx).Do()
}

// Client recognizes text on stored receipt images through the Cloud Vision
// API.
type Client struct {
	annotator annotator
}

func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.VisionAPIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.VisionAPIKey))
	}

	service, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("can't create vision service: %w", err)
	}
	return &Client{annotator: &visionAnnotator{images: service.Images}}, nil
}

// DetectText runs TEXT_DETECTION on the image behind imageURL and returns
// the top annotation's description, or an empty string when the image holds
// no recognizable text.
func (c *Client) DetectText(ctx context.Context, imageURL string) (string, error) {
	resp, err := c.annotator.Annotate(ctx, &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image:    &vision.Image{Source: &vision.ImageSource{ImageUri: imageURL}},
				Features: []*vision.Feature{{Type: textDetection}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("can't annotate image: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}
	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return "", fmt.Errorf("vision api error: %s", annotated.Error.Message)
	}
	if len(annotated.TextAnnotations) == 0 {
		return "", nil
	}
	return annotated.TextAnnotations[0].Description, nil
}
