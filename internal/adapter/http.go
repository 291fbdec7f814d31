package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

const (
	activitiesPath    = "/api/activities"
	notesPath         = "/api/notes"
	probePath         = "/api/encryption/probe"
	legacyKeysPath    = "/api/encryption/legacy"
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the REST implementation of
// [BackendAdapter]. Returns an error if cfg.HTTPAddress is empty or cannot be
// parsed as a URL.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBackendAdapter{
		client: client,
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) Token() string {
	return h.token
}

// ── activities ───────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := h.get(ctx, activitiesPath, &activities); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (h *httpBackendAdapter) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	var created models.Activity
	if err := h.send(ctx, resty.MethodPost, activitiesPath, activity, &created); err != nil {
		return models.Activity{}, fmt.Errorf("create activity: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) UpdateActivities(ctx context.Context, activities []models.Activity) error {
	if err := h.send(ctx, resty.MethodPut, activitiesPath, activities, nil); err != nil {
		return fmt.Errorf("update activities: %w", err)
	}
	return nil
}

// ── notes ────────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := h.get(ctx, notesPath, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (h *httpBackendAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note
	if err := h.send(ctx, resty.MethodPost, notesPath, note, &created); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) UpdateNotes(ctx context.Context, notes []models.Note) error {
	if err := h.send(ctx, resty.MethodPut, notesPath, notes, nil); err != nil {
		return fmt.Errorf("update notes: %w", err)
	}
	return nil
}

// ── encryption ───────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ProbeEncryptedData(ctx context.Context) (models.EncryptedDataProbe, error) {
	var probe models.EncryptedDataProbe
	if err := h.get(ctx, probePath, &probe); err != nil {
		return models.EncryptedDataProbe{}, fmt.Errorf("probe encrypted data: %w", err)
	}
	return probe, nil
}

func (h *httpBackendAdapter) ListLegacyKeys(ctx context.Context) ([]models.LegacyKey, error) {
	var legacyKeys []models.LegacyKey
	if err := h.get(ctx, legacyKeysPath, &legacyKeys); err != nil {
		return nil, fmt.Errorf("list legacy keys: %w", err)
	}
	return legacyKeys, nil
}

func (h *httpBackendAdapter) CreateLegacyKey(ctx context.Context, legacyKey models.LegacyKey) error {
	if err := h.send(ctx, resty.MethodPost, legacyKeysPath, legacyKey, nil); err != nil {
		return fmt.Errorf("create legacy key: %w", err)
	}
	return nil
}

// ── plumbing ─────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpBackendAdapter.get").Str("path", path).Msg("request failed")
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) send(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx).
		SetHeader(contentTypeHeader, contentTypeJSON).
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpBackendAdapter.send").Str("method", method).Str("path", path).Msg("request failed")
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
