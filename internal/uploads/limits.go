// Package uploads computes effective upload size limits.
package uploads

import (
	"context"
	"strconv"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/settings"
)

// DefaultMaxBytes is the site-wide upload cap applied when the settings
// store does not configure one.
const DefaultMaxBytes int64 = 8 * 1024 * 1024

// Interface guard
var _ editor.UploadLimitService = (*Service)(nil)

// Service resolves the effective upload limit for a context: the smallest
// non-zero value of the site-wide cap and the context's own cap.
type Service struct {
	store settings.Store
}

// New creates the upload limit service.
func New(store settings.Store) *Service {
	return &Service{store: store}
}

// MaxUploadSize implements editor.UploadLimitService.
func (s *Service) MaxUploadSize(_ context.Context, ectx editor.Context) int64 {
	limit := s.siteLimit()
	if ectx.MaxBytes > 0 && ectx.MaxBytes < limit {
		limit = ectx.MaxBytes
	}
	return limit
}

func (s *Service) siteLimit() int64 {
	raw, ok := s.store.Get(editor.GlobalNamespace, editor.KeyMaxBytes)
	if !ok {
		return DefaultMaxBytes
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return DefaultMaxBytes
	}
	return n
}
