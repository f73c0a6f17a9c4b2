package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	ContentTypeNone = ""
	ContentTypeJSON = "application/json"
)

// The error returned when a remote answered with an unexpected status code.
type HttpStatusError struct {
	Url        string
	StatusCode int
	Body       string
}

func (e *HttpStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request to '%s' failed with status code %d", e.Url, e.StatusCode)
	}
	return fmt.Sprintf("request to '%s' failed with status code %d: %s", e.Url, e.StatusCode, e.Body)
}

// Unexported type
type httpUtil struct{}

// exported global variable
var HttpUtil httpUtil

var linkRegex = regexp.MustCompile(`\s*<(.*)>; *rel="(.*)"\s*`)

// Performs a GET request and returns the body. Fails if the status code is not 200.
func (h httpUtil) GetWithBearer(ctx context.Context, client *http.Client, requestUrl string, token string) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", ContentTypeJSON)
	h.AddBearerToRequest(req, token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp, &HttpStatusError{Url: requestUrl, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
	}
	return bodyBytes, resp, nil
}

func (h httpUtil) AddBearerToRequest(request *http.Request, token string) {
	if len(token) > 0 {
		request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

// Gets the "next" link from the "Link" header from a response.
func (h httpUtil) GetNextPageURL(resp *http.Response) (*url.URL, error) {
	// See if we have the link header
	linkHeaderRaw := resp.Header.Get("Link")
	if linkHeaderRaw == "" {
		return nil, nil
	}

	// Make sure we have a request url (needed to resolve the link)
	if resp.Request == nil || resp.Request.URL == nil {
		return nil, nil
	}

	// Split it in case there are multiple links inside the header
	linksRaw := strings.Split(linkHeaderRaw, ",")
	for _, linkRaw := range linksRaw {
		if matches := linkRegex.FindStringSubmatch(linkRaw); matches != nil {
			if matches[2] != "next" {
				continue
			}
			linkURL, err := url.Parse(matches[1])
			if err != nil {
				return nil, err
			}
			// Resolve and return the url
			return resp.Request.URL.ResolveReference(linkURL), nil
		}
	}

	// Nothing found, return
	return nil, nil
}
