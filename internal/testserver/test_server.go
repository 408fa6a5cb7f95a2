package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/mcp"
	"github.com/rpggio/worklog/internal/sqlite"
)

// TestServer runs the full stack behind an httptest server: a SQLite file
// database, the domain services and the MCP server in HTTP mode.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	DBPath   string
	Token    string
	Projects *project.Service
	Activity *activity.Service
}

// Options configures a TestServer.
type Options struct {
	// Token enables bearer auth when set.
	Token string
	// DBPath reuses an existing database file. Defaults to a fresh file
	// in a temp dir.
	DBPath string
	Clock  func() time.Time
}

// New starts a TestServer and registers its cleanup with t.
func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	path := opts.DBPath
	if path == "" {
		path = filepath.Join(t.TempDir(), "worklog.db")
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	db, err := sqlite.Open(path)
	require.NoError(t, err)

	projectSvc := project.NewService(sqlite.NewKVRepository(db), commit.NewMockProvider(clock), nil, project.WithClock(clock))
	require.NoError(t, projectSvc.Load(context.Background()))
	activitySvc := activity.NewService(projectSvc, nil, clock)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Activity: activitySvc,
		},
		Token:         opts.Token,
		TransportMode: mcp.TransportHTTP,
	})
	server := httptest.NewServer(mcp.NewHTTPHandler(mcpServer))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		DBPath:   path,
		Token:    opts.Token,
		Projects: projectSvc,
		Activity: activitySvc,
	}

	t.Cleanup(ts.Close)

	return ts
}

// Close stops the server and closes the database. It is safe to call twice.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.DB.Close()
}

// Connect opens an MCP client session that sends token as a bearer token.
func (ts *TestServer) Connect(t *testing.T, token string) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	transport := &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
		HTTPClient: &http.Client{Transport: &bearerTransport{
			token: token,
			base:  http.DefaultTransport,
		}},
	}

	session, err := client.Connect(context.Background(), transport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if b.token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	return b.base.RoundTrip(req)
}
