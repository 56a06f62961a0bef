package tickpick

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// contains http utils to deal with remote services

// userAgent identifies us to the remote services. Some of them reject the
// default Go user agent outright.
const userAgent = "Mozilla/5.0 (compatible; tkp/1.0)"

// fetchTimeout bounds every remote call. No retry on top of it.
const fetchTimeout = 30 * time.Second

// newClient returns the http client used for all remote calls.
func newClient() *http.Client {
	return &http.Client{Timeout: fetchTimeout}
}

// wget performs an HTTP GET request and returns the decoded response body.
func wget(client *http.Client, addr string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	body, err := wget(client, addr)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(body), data)
}
