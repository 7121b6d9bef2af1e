package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	vision "google.golang.org/api/vision/v1"
)

type fakeAnnotator struct {
	req  *vision.BatchAnnotateImagesRequest
	resp *vision.BatchAnnotateImagesResponse
	err  error
}

func (f *fakeAnnotator) Annotate(_ context.Context, req *vision.BatchAnnotateImagesRequest) (*vision.BatchAnnotateImagesResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestDetectText(t *testing.T) {
	tests := []struct {
		name        string
		resp        *vision.BatchAnnotateImagesResponse
		err         error
		expected    string
		expectErr   bool
		errContains string
	}{
		{
			name: "Top annotation returned",
			resp: &vision.BatchAnnotateImagesResponse{
				Responses: []*vision.AnnotateImageResponse{
					{
						TextAnnotations: []*vision.EntityAnnotation{
							{Description: "Walmart\nTOTAL 6.49"},
							{Description: "Walmart"},
						},
					},
				},
			},
			expected: "Walmart\nTOTAL 6.49",
		},
		{
			name: "No annotations defaults to empty text",
			resp: &vision.BatchAnnotateImagesResponse{
				Responses: []*vision.AnnotateImageResponse{{}},
			},
			expected: "",
		},
		{
			name:     "No responses defaults to empty text",
			resp:     &vision.BatchAnnotateImagesResponse{},
			expected: "",
		},
		{
			name: "Annotation-level error surfaces",
			resp: &vision.BatchAnnotateImagesResponse{
				Responses: []*vision.AnnotateImageResponse{
					{Error: &vision.Status{Code: 7, Message: "permission denied"}},
				},
			},
			expectErr:   true,
			errContains: "permission denied",
		},
		{
			name:        "Transport error surfaces",
			err:         errors.New("connection reset"),
			expectErr:   true,
			errContains: "can't annotate image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAnnotator{resp: tt.resp, err: tt.err}
			client := &Client{annotator: fake}

			text, err := client.DetectText(context.Background(), "https://bucket/1/1.jpg")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, text)

			assert.Len(t, fake.req.Requests, 1)
			assert.Equal(t, "https://bucket/1/1.jpg", fake.req.Requests[0].Image.Source.ImageUri)
			assert.Equal(t, textDetection, fake.req.Requests[0].Features[0].Type)
		})
	}
}
