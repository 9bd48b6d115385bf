// response/success_test.go
package response

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

func successResponse(contentType, body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandleAPISuccessResponseJSON(t *testing.T) {
	var out struct {
		Computer struct {
			ID int `json:"id"`
		} `json:"computer"`
	}

	resp := successResponse("application/json; charset=utf-8", `{"computer":{"id":138}}`)
	err := HandleAPISuccessResponse(resp, &out, logger.BuildNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 138, out.Computer.ID)
}

func TestHandleAPISuccessResponseXML(t *testing.T) {
	var out struct {
		Name        string `xml:"command>name"`
		CommandUUID string `xml:"command>command_uuid"`
	}

	body := `<computer_command><command><name>DeviceLock</name><command_uuid>1a2b3c</command_uuid></command></computer_command>`
	resp := successResponse("text/xml", body)
	err := HandleAPISuccessResponse(resp, &out, logger.BuildNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "DeviceLock", out.Name)
	assert.Equal(t, "1a2b3c", out.CommandUUID)
}

func TestHandleAPISuccessResponseEmptyBody(t *testing.T) {
	var out map[string]any
	resp := successResponse("application/json", "")
	assert.NoError(t, HandleAPISuccessResponse(resp, &out, logger.BuildNopLogger()))
}

func TestHandleAPISuccessResponseNilOut(t *testing.T) {
	resp := successResponse("text/plain", "ignored")
	assert.NoError(t, HandleAPISuccessResponse(resp, nil, logger.BuildNopLogger()))
}

func TestHandleAPISuccessResponseMislabelledJSON(t *testing.T) {
	// Some deployments serve JSON with a text/plain label.
	var out map[string]any
	resp := successResponse("text/plain", `{"size":1}`)
	require.NoError(t, HandleAPISuccessResponse(resp, &out, logger.BuildNopLogger()))
	assert.EqualValues(t, 1, out["size"])
}

func TestHandleAPISuccessResponseUnknownMIME(t *testing.T) {
	var out map[string]any
	resp := successResponse("application/octet-stream", "binary")
	assert.Error(t, HandleAPISuccessResponse(resp, &out, logger.BuildNopLogger()))
}

func TestParseContentTypeHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantMain   string
		wantParams map[string]string
	}{
		{
			name:       "ContentTypeWithCharset",
			header:     "application/json; charset=utf-8",
			wantMain:   "application/json",
			wantParams: map[string]string{"charset": "utf-8"},
		},
		{
			name:       "BareContentType",
			header:     "text/xml",
			wantMain:   "text/xml",
			wantParams: map[string]string{},
		},
		{
			name:       "Empty",
			header:     "",
			wantMain:   "",
			wantParams: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			main, params := ParseContentTypeHeader(tt.header)
			assert.Equal(t, tt.wantMain, main)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}
