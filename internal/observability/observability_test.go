package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestSetup_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "fantasy-draft-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
		UptraceEnabled: true, // no DSN, skipped
	}

	stack, err := Setup(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.Empty(t, stack.Enabled())
	require.NoError(t, stack.Shutdown(context.Background()))
}

func TestSetup_PprofListener(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	stack, err := Setup(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"pprof"}, stack.Enabled())
	require.NoError(t, stack.Shutdown(context.Background()))
	require.Empty(t, stack.Enabled())
}

func TestSetup_PprofBadAddr(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "not-an-addr"}

	if _, err := Setup(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unusable pprof addr")
	}
}

func TestPprofHandlerServesIndex(t *testing.T) {
	ts := httptest.NewServer(pprofHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/pprof/")
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status=%d want=200", resp.StatusCode)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: config.EnvDev, ServiceName: "api", CatalogSource: config.CatalogSourcePostgres})
	require.Equal(t, config.CatalogSourcePostgres, tags["catalog_source"])
	_, hasVersion := tags["version"]
	require.False(t, hasVersion)
}
