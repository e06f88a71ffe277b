package proxy

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Forward relays one request to the tracker REST API. The response body
// streams through untouched on success; a 204 passes through empty; a
// non-JSON upstream body is treated as an upstream failure.
func (p *Proxy) Forward(c *gin.Context) {
	ctx := c.Request.Context()

	if !p.configured() {
		p.l.Error(ctx, "proxy called without tracker credentials")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "tracker credentials are not configured",
		})
		return
	}

	target := p.baseURL() + "/rest/api/3/" + strings.TrimPrefix(c.Param("path"), "/")
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	req, err := http.NewRequestWithContext(ctx, c.Request.Method, target, c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not build upstream request"})
		return
	}
	req.Header.Set("Accept", "application/json")
	if ct := c.GetHeader("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if p.cfg.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.BearerToken)
	} else {
		req.SetBasicAuth(p.cfg.Email, p.cfg.APIToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.l.Errorf(ctx, "forward %s %s: %v", c.Request.Method, target, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not reach the tracker"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		p.l.Warnf(ctx, "tracker returned non-JSON (%s) for %s: %s", contentType, target, string(snippet))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "tracker returned an unexpected response",
		})
		return
	}

	c.DataFromReader(resp.StatusCode, resp.ContentLength, "application/json", resp.Body, nil)
}
