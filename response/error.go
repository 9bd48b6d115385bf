// response/error.go
// This package provides utility functions and structures for handling and categorizing HTTP error responses.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// APIError represents an error response from the JAMF Classic API. The raw body
// is preserved verbatim so callers can surface exactly what the server said.
type APIError struct {
	StatusCode  int    `json:"status_code"`
	Method      string `json:"method"`
	URL         string `json:"url"`
	Message     string `json:"message"`
	RawResponse string `json:"raw_response"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.URL, e.StatusCode, msg)
}

// IsNotFound reports whether err is an APIError for a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// HandleAPIErrorResponse turns a non-2xx HTTP response into an *APIError,
// extracting a message from JSON, XML, HTML or plain-text bodies. The Classic
// API answers most failures with XML, and the Tomcat front end with HTML pages.
func HandleAPIErrorResponse(resp *http.Response) *APIError {
	apiError := &APIError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.RawResponse = "failed to read response body"
		return apiError
	}

	mimeType, _ := ParseContentTypeHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONErrorResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLErrorResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLErrorResponse(bodyBytes, apiError)
	default:
		apiError.RawResponse = string(bodyBytes)
		apiError.Message = strings.TrimSpace(string(bodyBytes))
	}

	return apiError
}

// parseJSONErrorResponse attempts to parse the JSON error response and update the APIError structure.
func parseJSONErrorResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	var payload struct {
		Message     string `json:"message"`
		Error       string `json:"error"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return
	}

	switch {
	case payload.Message != "":
		apiError.Message = payload.Message
	case payload.Error != "":
		apiError.Message = payload.Error
	case payload.Description != "":
		apiError.Message = payload.Description
	}
}

// parseXMLErrorResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLErrorResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// parseHTMLErrorResponse extracts meaningful information from an HTML error page,
// concatenating the text of <p> elements.
func parseHTMLErrorResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var content strings.Builder
			var collect func(*html.Node)
			collect = func(c *html.Node) {
				if c.Type == html.TextNode {
					content.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					collect(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				collect(child)
			}
			if text := strings.TrimSpace(content.String()); text != "" {
				messages = append(messages, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}
