package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/model"
)

var (
	testJar   = cookie.NewJar(false, time.Hour, 24*time.Hour)
	testUser  = model.SessionUser{ID: 2, Email: "ann@x.com", Role: model.RoleUser}
	testAdmin = model.SessionUser{ID: 1, Email: "root@x.com", Role: model.RoleAdmin}
)

type envelope struct {
	Message string          `json:"message"`
	Content json.RawMessage `json:"content"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(r *http.Request, user model.SessionUser) *http.Request {
	return r.WithContext(apicontext.NewManager().WithSessionUser(r.Context(), user))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}
