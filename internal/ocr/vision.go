package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// ErrMissingCredentials is returned when neither GOOGLE_APPLICATION_CREDENTIALS
// nor GOOGLE_CREDENTIALS environment variables are configured.
var ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")

// VisionRecognizer implements Recognizer using the Google Cloud Vision API's
// document text detection with default settings.
type VisionRecognizer struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionRecognizer creates a recognizer with credentials from environment.
// It expects either GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS JSON in env.
func NewVisionRecognizer(ctx context.Context) (*VisionRecognizer, error) {
	const op = "NewVisionRecognizer"

	var client *vision.ImageAnnotatorClient
	var err error

	// Check for inline credentials first
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		// Try default credentials as fallback
		client, err = vision.NewImageAnnotatorClient(ctx)
		if err != nil {
			return nil, WrapError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	return &VisionRecognizer{client: client}, nil
}

// NewVisionRecognizerWithClient creates a recognizer with an explicit client (for testing).
func NewVisionRecognizerWithClient(client *vision.ImageAnnotatorClient) *VisionRecognizer {
	return &VisionRecognizer{client: client}
}

// Recognize runs document text detection on a single image.
func (r *VisionRecognizer) Recognize(ctx context.Context, image []byte) (string, bool, error) {
	const op = "Recognize"

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := r.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", false, WrapError(op, err, "Vision API call failed")
	}
	if len(resp.Responses) == 0 {
		return "", false, NewPipelineError(op, ErrProcessingFailed, "no response from Vision API")
	}

	imgResp := resp.Responses[0]
	if imgResp.Error != nil {
		return "", false, NewPipelineError(op, ErrProcessingFailed,
			fmt.Sprintf("Vision API error: %s", imgResp.Error.Message))
	}

	var text string
	if imgResp.FullTextAnnotation != nil {
		text = imgResp.FullTextAnnotation.Text
	}

	return text, strings.TrimSpace(text) != "", nil
}

// Close closes the underlying Vision client.
func (r *VisionRecognizer) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
