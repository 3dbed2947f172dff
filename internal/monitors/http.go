package monitors

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// CheckHTTP performs one HTTP availability check. When ExpectedStatus is
// unset, any 2xx or 3xx response counts as up.
func CheckHTTP(ctx context.Context, config *types.HTTPConfig) Result {
	method := config.Method

	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, config.URL, nil)

	if err != nil {
		return failure("", err)
	}

	for key, value := range config.Headers {
		req.Header.Add(key, value)
	}

	resp, err := http.DefaultClient.Do(req)

	if err != nil {
		return failure("", err)
	}

	defer resp.Body.Close()

	details := strconv.Itoa(resp.StatusCode)

	if config.ExpectedStatus != 0 {
		if resp.StatusCode != config.ExpectedStatus {
			return failure(details, fmt.Errorf("expected status %d, got %s", config.ExpectedStatus, resp.Status))
		}

		return success(details)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return failure(details, fmt.Errorf("unexpected status code: %s", resp.Status))
	}

	return success(details)
}
