package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=5"`
	Rating int    `json:"rating" form:"rating"`
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        sampleRequest
		wantErr     bool
	}{
		{name: "json", contentType: "application/json", body: `{"name":"Ann","rating":5}`, want: sampleRequest{Name: "Ann", Rating: 5}},
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: `{"name":"Ann"}`, want: sampleRequest{Name: "Ann"}},
		{name: "form", contentType: "application/x-www-form-urlencoded", body: "name=Ann&rating=4", want: sampleRequest{Name: "Ann", Rating: 4}},
		{name: "no content type", body: `{"name":"Ann"}`, want: sampleRequest{Name: "Ann"}},
		{name: "broken json", contentType: "application/json", body: `{"name":`, wantErr: true},
		{name: "plain text", contentType: "text/plain", body: "Ann", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got sampleRequest
			err := DecodeBody(req, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBody_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Ann"))
	require.NoError(t, mw.WriteField("rating", "5"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var got sampleRequest
	require.NoError(t, DecodeBody(req, &got))
	assert.Equal(t, sampleRequest{Name: "Ann", Rating: 5}, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleRequest{Name: "Ann"}))

	err := Validate(sampleRequest{})
	require.Error(t, err)
	assert.Equal(t, "поле name обязательно", err.Error())

	err = Validate(sampleRequest{Name: "Annabel"})
	require.Error(t, err)
	assert.Equal(t, "поле name длиннее 5 символов", err.Error())
}

func TestRespondError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondNotFound(rr, "нет")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"нет"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	RespondCreated(rr, 7)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"id":7}`, rr.Body.String())
}
