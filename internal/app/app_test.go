package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	ds "github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gravity/internal/adapters/datastore"
	"go.trai.ch/gravity/internal/adapters/linear"
	"go.trai.ch/gravity/internal/adapters/metrics"
	"go.trai.ch/gravity/internal/adapters/telemetry/progrock"
	"go.trai.ch/gravity/internal/app"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	bodyA = "# list a\n0.0.0.0 ads.example.com\n0.0.0.0 track.example.com\n"
	bodyB = "127.0.0.1 track.example.com\n127.0.0.1 spy.example.net\n"
)

type listServer struct {
	*httptest.Server
	gets atomic.Int32
}

func newListServer(t *testing.T) *listServer {
	t.Helper()
	s := &listServer{}
	bodies := map[string]string{"/a": bodyA, "/b": bodyB}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("ETag", `"`+r.URL.Path[1:]+`1"`)
		if r.Method == http.MethodGet {
			s.gets.Add(1)
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(s.Close)
	return s
}

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	opener   *mocks.MockStoreOpener
	logger   *mocks.MockLogger
	out      *bytes.Buffer
	cfg      domain.Config
	exported string
}

func newFixture(t *testing.T, sources ...string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		opener:   mocks.NewMockStoreOpener(ctrl),
		logger:   log,
		out:      new(bytes.Buffer),
		exported: filepath.Join(dir, domain.HostsFileName),
	}
	f.cfg = domain.DefaultConfig()
	f.cfg.StorePath = filepath.Join(dir, "store")
	f.cfg.Timeout = 2 * time.Second
	f.cfg.Workers = 2
	f.cfg.Sources = sources
	f.cfg.ExportPath = f.exported
	f.cfg.MetricsPath = filepath.Join(dir, "gravity.prom")

	f.app = app.New(f.loader, f.opener, linear.NewReporter(f.out), progrock.New(), metrics.New(), log)
	t.Cleanup(func() { _ = f.app.Close() })
	return f
}

func TestApp_Update(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a", srv.URL+"/b")

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	f.loader.EXPECT().Load("gravity.yaml").Return(f.cfg, nil).Times(2)
	f.opener.EXPECT().Open(f.cfg.StorePath).Return(store, nil).Times(2)

	summary, err := f.app.Update(context.Background(), app.UpdateOptions{ConfigPath: "gravity.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Fetched())
	assert.Equal(t, 4, summary.Raw)
	assert.Equal(t, 3, summary.Unique)
	assert.Equal(t, 3, summary.Exported)
	assert.True(t, summary.Restarted)
	assert.Equal(t, int32(2), srv.gets.Load())

	data, err := os.ReadFile(f.exported)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0 ads.example.com\n0.0.0.0 spy.example.net\n0.0.0.0 track.example.com\n", string(data))

	prom, err := os.ReadFile(f.cfg.MetricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "pihole_gravity_unique_domains 3")

	assert.Contains(t, f.out.String(), "New list, downloading...")

	// Unchanged validators skip every download on the next run.
	summary, err = f.app.Update(context.Background(), app.UpdateOptions{ConfigPath: "gravity.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Fetched())
	assert.Equal(t, 4, summary.Raw)
	assert.Equal(t, 3, summary.Unique)
	assert.Equal(t, int32(2), srv.gets.Load())
	assert.Contains(t, f.out.String(), "No update!")
}

func TestApp_Update_Force(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a")

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil).Times(2)
	f.opener.EXPECT().Open(gomock.Any()).Return(store, nil).Times(2)

	_, err := f.app.Update(context.Background(), app.UpdateOptions{})
	require.NoError(t, err)
	summary, err := f.app.Update(context.Background(), app.UpdateOptions{Force: true})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Fetched())
	assert.Equal(t, int32(2), srv.gets.Load())
}

func TestApp_Update_RemovedSourceIsPruned(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a", srv.URL+"/b")

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	reduced := f.cfg
	reduced.Sources = []string{srv.URL + "/a"}
	gomock.InOrder(
		f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil),
		f.loader.EXPECT().Load(gomock.Any()).Return(reduced, nil),
	)
	f.opener.EXPECT().Open(gomock.Any()).Return(store, nil).Times(2)

	_, err := f.app.Update(context.Background(), app.UpdateOptions{})
	require.NoError(t, err)
	summary, err := f.app.Update(context.Background(), app.UpdateOptions{})
	require.NoError(t, err)

	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, 2, summary.Unique)

	data, err := os.ReadFile(f.exported)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "spy.example.net")
}

func TestApp_Update_Interactive(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a", srv.URL+"/b")

	var report bytes.Buffer
	f.app.WithOutput(&report).WithTeaOptions(
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(gomock.Any()).Return(store, nil)

	summary, err := f.app.Update(context.Background(), app.UpdateOptions{Interactive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Fetched())
	assert.Equal(t, 3, summary.Unique)

	assert.Empty(t, f.out.String(), "interactive runs do not use the default reporter")
	assert.Contains(t, report.String(), "Initializing pattern buffer for 127.0.0.1...")
	assert.Contains(t, report.String(), "Exporting 3 domains...")
}

type brokenInput struct{}

var errBrokenInput = errors.New("input device unavailable")

func (brokenInput) Read([]byte) (int, error) { return 0, errBrokenInput }

func TestApp_Update_InteractiveViewFailure(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a", srv.URL+"/b")
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f.app.WithOutput(io.Discard).WithTeaOptions(
		tea.WithInput(brokenInput{}),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(gomock.Any()).Return(store, nil)

	_, err := f.app.Update(context.Background(), app.UpdateOptions{Interactive: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBrokenInput)
	assert.Contains(t, err.Error(), "live view failed")
}

func TestApp_Update_FailingSource(t *testing.T) {
	srv := newListServer(t)
	f := newFixture(t, srv.URL+"/a", srv.URL+"/missing")

	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(gomock.Any()).Return(store, nil)

	summary, err := f.app.Update(context.Background(), app.UpdateOptions{})
	require.NoError(t, err)
	require.Len(t, summary.Failed(), 1)
	assert.ErrorIs(t, summary.Failed()[0].Err, domain.ErrNetwork)
	assert.Equal(t, 2, summary.Unique)
	assert.Contains(t, f.out.String(), "1 of 2 sources failed")
}

func TestApp_Update_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("bad.yaml").Return(domain.Config{}, domain.ErrConfigParseFailed)

	_, err := f.app.Update(context.Background(), app.UpdateOptions{ConfigPath: "bad.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Update_StoreOpenError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.cfg, nil)
	f.opener.EXPECT().Open(f.cfg.StorePath).Return(nil, errors.Join(domain.ErrPersistence, domain.ErrStoreOpenFailed))

	_, err := f.app.Update(context.Background(), app.UpdateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreOpenFailed)
}

func TestApp_Sources(t *testing.T) {
	f := newFixture(t)
	store := datastore.New(dssync.MutexWrap(ds.NewMapDatastore()))
	_, err := store.Register(context.Background(), []string{"https://a.example.com/hosts", "https://b.example.com/hosts"})
	require.NoError(t, err)

	f.loader.EXPECT().Load("gravity.yaml").Return(f.cfg, nil)
	f.opener.EXPECT().Open(f.cfg.StorePath).Return(store, nil)

	sources, err := f.app.Sources(context.Background(), "gravity.yaml")
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "https://a.example.com/hosts", sources[0].URI())
	assert.Equal(t, "https://b.example.com/hosts", sources[1].URI())
}
