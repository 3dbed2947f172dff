package utils

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

func GetSiteIdentifier(ctx *gin.Context) (string, error) {
	identifier := ctx.Param("identifier")

	if identifier == "" {
		return "", errors.New("Site identifier not found")
	}

	return identifier, nil
}

func GetMonitorUUID(ctx *gin.Context) (string, error) {
	monitorID := ctx.Param("monitor_id")

	if monitorID == "" {
		return "", errors.New("Monitor ID not found")
	}

	return monitorID, nil
}

func GetSiteMonitorIDs(ctx *gin.Context) (string, string, error) {
	identifier, err := GetSiteIdentifier(ctx)

	if err != nil {
		return "", "", err
	}

	monitorID, err := GetMonitorUUID(ctx)

	if err != nil {
		return "", "", err
	}

	return identifier, monitorID, nil
}

// ExtractRawDomain normalizes user input into a bare domain suitable for
// DNS lookups: URLs are reduced to their hostname, trailing slashes and a
// leading www. are stripped.
func ExtractRawDomain(input string) (string, error) {
	if input == "" {
		return "", errors.New("input cannot be empty")
	}

	domain := strings.TrimSpace(input)

	if strings.Contains(domain, "://") {
		parsedURL, err := url.Parse(domain)
		if err != nil {
			return "", errors.New("invalid URL format")
		}

		if parsedURL.Hostname() == "" {
			return "", errors.New("no hostname found in URL")
		}

		domain = parsedURL.Hostname()
	}

	domain = strings.TrimSuffix(domain, "/")

	if strings.HasPrefix(strings.ToLower(domain), "www.") {
		domain = domain[4:]
	}

	if domain == "" {
		return "", errors.New("invalid domain after processing")
	}

	return domain, nil
}
