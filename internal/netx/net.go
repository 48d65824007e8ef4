// Package netx moves video bytes to and from presigned blob URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultContentType = "application/octet-stream"

// Transferable reports whether url can be reached over HTTP. The in-memory
// blob store hands out memory:// URLs that only name the object.
func Transferable(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// PutPresigned uploads body to a presigned PUT URL. contentType must match
// the one the URL was signed with; empty means application/octet-stream.
func PutPresigned(ctx context.Context, client *http.Client, url, contentType string, body io.Reader) error {
	if client == nil {
		client = http.DefaultClient
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
