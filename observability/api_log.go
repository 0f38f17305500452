package observability

import (
	"encoding/json"
	"log/slog"
)

// LogAPIRequest logs an outbound call. The body is logged as JSON when it parses.
func LogAPIRequest(log *slog.Logger, method, url, profile string, body []byte) {
	log.Debug("API request",
		"method", method,
		"url", url,
		"profile", profile,
		"body", jsonAttr(body),
	)
}

func LogAPIResponse(log *slog.Logger, method, url, profile string, status int, data []byte) {
	log.Debug("API response",
		"method", method,
		"url", url,
		"profile", profile,
		"status", status,
		"data", jsonAttr(data),
	)
}

func LogAPIError(log *slog.Logger, method, url string, err error) {
	log.Error("API error", "method", method, "url", url, "error", err)
}

func jsonAttr(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
