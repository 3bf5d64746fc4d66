package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarkpage/internal/models"
)

func strptr(s string) *string { return &s }

func TestCreateBookmarkRequestValidate(t *testing.T) {
	t.Run("accepts http and https URLs", func(t *testing.T) {
		for _, u := range []string{"http://example.com", "https://example.com"} {
			req := CreateBookmarkRequest{Title: "Test", URL: u}
			assert.Nil(t, req.Validate(), "url %s should be accepted", u)
		}
	})

	tests := []struct {
		name        string
		req         CreateBookmarkRequest
		wantField   string
		wantMessage string
	}{
		{
			name:        "empty title",
			req:         CreateBookmarkRequest{Title: "", URL: "https://example.com"},
			wantField:   "title",
			wantMessage: models.MsgTitleRequired,
		},
		{
			name:        "missing url",
			req:         CreateBookmarkRequest{Title: "Test", URL: ""},
			wantField:   "url",
			wantMessage: models.MsgURLInvalidFormat,
		},
		{
			name:        "malformed url",
			req:         CreateBookmarkRequest{Title: "Test", URL: "not-a-url"},
			wantField:   "url",
			wantMessage: models.MsgURLInvalidFormat,
		},
		{
			name:        "bare host without scheme",
			req:         CreateBookmarkRequest{Title: "Test", URL: "example.com"},
			wantField:   "url",
			wantMessage: models.MsgURLInvalidFormat,
		},
		{
			name:        "ftp scheme",
			req:         CreateBookmarkRequest{Title: "Test", URL: "ftp://example.com"},
			wantField:   "url",
			wantMessage: models.MsgURLInvalidProto,
		},
		{
			name:        "javascript scheme",
			req:         CreateBookmarkRequest{Title: "Test", URL: "javascript:alert(1)"},
			wantField:   "url",
			wantMessage: models.MsgURLInvalidProto,
		},
		{
			name:        "empty title reported before bad url",
			req:         CreateBookmarkRequest{Title: "", URL: "not-a-url"},
			wantField:   "title",
			wantMessage: models.MsgTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.req.Validate()
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMessage, verr.Message)
		})
	}
}

func TestUpdateBookmarkRequestValidate(t *testing.T) {
	valid := []struct {
		name string
		req  UpdateBookmarkRequest
	}{
		{name: "title only", req: UpdateBookmarkRequest{Title: strptr("Updated")}},
		{name: "url only", req: UpdateBookmarkRequest{URL: strptr("https://example.com")}},
		{name: "both fields", req: UpdateBookmarkRequest{Title: strptr("Updated"), URL: strptr("https://example.com")}},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.req.Validate())
		})
	}

	invalid := []struct {
		name        string
		req         UpdateBookmarkRequest
		wantMessage string
	}{
		{
			name:        "neither field supplied",
			req:         UpdateBookmarkRequest{},
			wantMessage: models.MsgUpdateMinFields,
		},
		{
			name:        "empty title",
			req:         UpdateBookmarkRequest{Title: strptr("")},
			wantMessage: models.MsgTitleMinLength,
		},
		{
			name:        "malformed url",
			req:         UpdateBookmarkRequest{URL: strptr("not-a-url")},
			wantMessage: models.MsgURLInvalidFormat,
		},
		{
			name:        "javascript scheme",
			req:         UpdateBookmarkRequest{URL: strptr("javascript:alert(1)")},
			wantMessage: models.MsgURLInvalidProto,
		},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.req.Validate()
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantMessage, verr.Message)
		})
	}
}
