package spothopper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/spothopper-reserve/internal/config"
	"github.com/example/spothopper-reserve/internal/domain/reservation"
	"github.com/example/spothopper-reserve/internal/internaltypes"
)

// The endpoint wants a form content type even though the body is JSON.
const contentType = "application/x-www-form-urlencoded"

type Provider struct {
	http *http.Client
	log  *zap.Logger

	base string
	ua   string
}

func New(cfg config.Config, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		log:  log,
		base: strings.TrimRight(cfg.BaseURL, "/"),
		ua:   cfg.UserAgent,
	}
}

func (p *Provider) Name() string { return "spothopper" }

// RequestURL is the reservation request endpoint for a spot.
func RequestURL(base string, spotID int64) string {
	return fmt.Sprintf("%s/%d/reservation_requests/add_from_tmt", strings.TrimRight(base, "/"), spotID)
}

func (p *Provider) Submit(ctx context.Context, venue reservation.Venue, payload reservation.Payload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("spothopper encode payload: %w", err)
	}

	url := RequestURL(p.base, venue.SpotID)
	reqID := uuid.NewString()
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	hreq.Header.Set("content-type", contentType)
	hreq.Header.Set("user-agent", p.ua)
	hreq.Header.Set("x-request-id", reqID)

	log := p.log.With(zap.String("venue", venue.Name), zap.String("request_id", reqID))
	log.Debug("submitting reservation request", zap.String("url", url), zap.Int("bytes", len(b)))

	hresp, err := p.http.Do(hreq)
	if err != nil {
		return fmt.Errorf("spothopper request: %w", err)
	}
	defer hresp.Body.Close()

	if hresp.StatusCode < 200 || hresp.StatusCode >= 300 {
		log.Warn("reservation request rejected", zap.Int("status", hresp.StatusCode))
		body, err := io.ReadAll(hresp.Body)
		if err != nil {
			return fmt.Errorf("%w: spothopper http %d: read body: %w", internaltypes.ErrRejected, hresp.StatusCode, err)
		}
		return fmt.Errorf("%w: spothopper http %d: %s", internaltypes.ErrRejected, hresp.StatusCode, string(body))
	}
	log.Debug("reservation request accepted", zap.Int("status", hresp.StatusCode))
	return nil
}

var _ reservation.Submitter = (*Provider)(nil)
