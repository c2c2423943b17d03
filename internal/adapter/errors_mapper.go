package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/go-resty/resty/v2"
)

// mapResponseError classifies a response that arrived. The backend's own
// error envelope takes precedence over the HTTP status, because the launcher
// backend reports validation failures as 400 with {"status":"error"}.
func mapResponseError(resp *resty.Response) error {
	var envelope models.APIResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.IsError() {
		return &BackendError{StatusCode: resp.StatusCode(), Message: envelope.Message}
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrHTTPStatus, resp.StatusCode(), body)
	}
}
