package capacitor

import (
	"context"

	"github.com/go-drift/capacitor/pkg/platform"
)

var rateRequestReview = operation("RateApp", "requestReview")

// Rate asks the store to show its in-app review prompt.
var Rate = &RateService{}

// RateService wraps the RateApp plugin.
type RateService struct{}

// RequestReview requests the review prompt. The store decides whether it
// is actually shown.
func (s *RateService) RequestReview(ctx context.Context) error {
	return platform.Call(ctx, rateRequestReview)
}
