package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/utils"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/go-resty/resty/v2"
)

// enveloped is satisfied by every response model through the embedded
// models.APIResponse.
type enveloped interface {
	envelope() models.APIResponse
}

type setupResponse struct{ models.SetupResponse }
type statusResponse struct{ models.StatusResponse }
type versionsResponse struct{ models.VersionsResponse }
type installModResponse struct{ models.InstallModResponse }
type launchResponse struct{ models.LaunchResponse }

func (r setupResponse) envelope() models.APIResponse      { return r.APIResponse }
func (r statusResponse) envelope() models.APIResponse     { return r.APIResponse }
func (r versionsResponse) envelope() models.APIResponse   { return r.APIResponse }
func (r installModResponse) envelope() models.APIResponse { return r.APIResponse }
func (r launchResponse) envelope() models.APIResponse     { return r.APIResponse }

type httpLauncherAdapter struct {
	client    *utils.HTTPClient
	apiPrefix string

	logger *logger.Logger
}

// NewHTTPLauncherAdapter constructs an HTTP/REST implementation of
// [LauncherAdapter]. It validates and normalises cfg.BaseURL and binds every
// endpoint under cfg.APIPrefix.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPLauncherAdapter(cfg config.LauncherAdapter, log *logger.Logger) (LauncherAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpLauncherAdapter{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiPrefix: config.NormalizeAPIPrefix(cfg.APIPrefix),
		logger:    log.WithComponent("adapter"),
	}, nil
}

// Setup implements [LauncherAdapter]. It POSTs req to {prefix}/setup.
func (h *httpLauncherAdapter) Setup(ctx context.Context, req models.SetupRequest) (models.SetupResponse, error) {
	resp, err := exchange[setupResponse](ctx, h, http.MethodPost, "/setup", req, nil)
	return resp.SetupResponse, err
}

// Status implements [LauncherAdapter]. It GETs {prefix}/status/{target};
// target is path-escaped.
func (h *httpLauncherAdapter) Status(ctx context.Context, target string) (models.StatusResponse, error) {
	resp, err := exchange[statusResponse](ctx, h, http.MethodGet, "/status/{target}", nil, map[string]string{"target": target})
	return resp.StatusResponse, err
}

// Versions implements [LauncherAdapter]. It GETs {prefix}/versions.
func (h *httpLauncherAdapter) Versions(ctx context.Context) (models.VersionsResponse, error) {
	resp, err := exchange[versionsResponse](ctx, h, http.MethodGet, "/versions", nil, nil)
	return resp.VersionsResponse, err
}

// InstallMod implements [LauncherAdapter]. It POSTs req to {prefix}/install-mod.
func (h *httpLauncherAdapter) InstallMod(ctx context.Context, req models.InstallModRequest) (models.InstallModResponse, error) {
	resp, err := exchange[installModResponse](ctx, h, http.MethodPost, "/install-mod", req, nil)
	return resp.InstallModResponse, err
}

// Launch implements [LauncherAdapter]. It POSTs req to {prefix}/launch.
func (h *httpLauncherAdapter) Launch(ctx context.Context, req models.LaunchRequest) (models.LaunchResponse, error) {
	resp, err := exchange[launchResponse](ctx, h, http.MethodPost, "/launch", req, nil)
	return resp.LaunchResponse, err
}

// exchange performs one request and decodes the enveloped response into T.
// Failure kinds are kept apart: no response → ErrNetwork, error envelope →
// *BackendError, other non-2xx → ErrHTTPStatus, undecodable or non-success
// 2xx body → ErrProtocol.
func exchange[T enveloped](ctx context.Context, h *httpLauncherAdapter, method, path string, body any, pathParams map[string]string) (T, error) {
	var out T

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Execute(method, h.apiPrefix+path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return out, fmt.Errorf("%s %s: %w: %w", method, path, ErrNetwork, err)
	}

	h.logRequest(resp, method, path)

	if err = mapResponseError(resp); err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%s %s: %w: %w", method, path, ErrProtocol, err)
	}
	if status := out.envelope().Status; status != models.StatusSuccess {
		return out, fmt.Errorf("%s %s: %w: unexpected status %q", method, path, ErrProtocol, status)
	}

	return out, nil
}

func (h *httpLauncherAdapter) logRequest(resp *resty.Response, method, path string) {
	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode()).
		Dur("took", resp.Time()).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Msg("launcher backend exchange")
}
