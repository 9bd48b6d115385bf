// response/success.go
/* Responsible for handling successful API responses. It reads the response body,
logs the raw response at debug, and unmarshals the response based on the content
type (JSON or XML). */
package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// contentHandler defines the signature for unmarshaling content from an io.Reader.
type contentHandler func(io.Reader, any, logger.Logger, string) error

// responseUnmarshallers maps MIME types to the corresponding contentHandler functions.
var responseUnmarshallers = map[string]contentHandler{
	"application/json": unmarshalJSON,
	"application/xml":  unmarshalXML,
	"text/xml":         unmarshalXML,
}

// HandleAPISuccessResponse reads the response body and unmarshals it into out
// based on the Content-Type. A nil out or an empty body is accepted as-is: the
// Classic API command-queue and DELETE endpoints answer with no useful payload.
func HandleAPISuccessResponse(resp *http.Response, out any, log logger.Logger) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Failed to read response body", zap.Error(err))
		return err
	}

	log.Debug("Raw HTTP response", zap.Int("status_code", resp.StatusCode), zap.Int("body_bytes", len(bodyBytes)))

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	mimeType, _ := ParseContentTypeHeader(contentType)

	if handler, ok := responseUnmarshallers[mimeType]; ok {
		return handler(bytes.NewReader(bodyBytes), out, log, mimeType)
	}

	// Some Classic API deployments omit or mislabel the Content-Type on JSON
	// payloads; fall back to JSON when the body looks like it.
	if len(bodyBytes) > 0 && (bodyBytes[0] == '{' || bodyBytes[0] == '[') {
		return unmarshalJSON(bytes.NewReader(bodyBytes), out, log, mimeType)
	}

	err = fmt.Errorf("unexpected MIME type: %q", mimeType)
	log.Warn("Unmarshal error", zap.String("content_type", contentType), zap.Error(err))
	return err
}

// unmarshalJSON unmarshals JSON content from an io.Reader into the provided output structure.
func unmarshalJSON(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	if err := json.NewDecoder(reader).Decode(out); err != nil {
		log.Warn("JSON unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled JSON response", zap.String("content_type", mimeType))
	return nil
}

// unmarshalXML unmarshals XML content from an io.Reader into the provided output structure.
func unmarshalXML(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	if err := xml.NewDecoder(reader).Decode(out); err != nil {
		log.Warn("XML unmarshal error", zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled XML response", zap.String("content_type", mimeType))
	return nil
}
