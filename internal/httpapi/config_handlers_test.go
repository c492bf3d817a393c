package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialscout/internal/config"
)

func configDeps(t *testing.T) Deps {
	t.Helper()
	d := testDeps(t, &fakeSearcher{})
	d.UserCfgPath = filepath.Join(t.TempDir(), "config.yml")
	d.LoadCfg = func() (config.Config, error) {
		return config.Load(d.UserCfgPath)
	}
	return d
}

func TestConfigGet(t *testing.T) {
	rec := doGet(t, configDeps(t), "/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg config.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, 200, cfg.Leads.PageSize)
}

func TestConfigPutRoundTrip(t *testing.T) {
	d := configDeps(t)
	cfg := d.Config()
	cfg.Leads.MinScore = 40

	body, err := json.Marshal(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/config", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	NewMux(d).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// the in-memory config was swapped, so the aggregator picks it up
	assert.Equal(t, 40, d.Config().Leads.MinScore)
	assert.Equal(t, 40, d.Aggregator().Cfg.MinScore)
}

func TestConfigPutRejectsInvalid(t *testing.T) {
	d := configDeps(t)
	cfg := d.Config()
	cfg.Leads.PageSize = 0

	body, err := json.Marshal(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/config", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	NewMux(d).ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var vr config.Validation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vr))
	assert.Contains(t, vr.Errors, "leads.page_size must be > 0")
	// in-memory config unchanged
	assert.Equal(t, 200, d.Config().Leads.PageSize)
}
