package e2e

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	serverBuildOnce  sync.Once
	serverBuildError error
	env              *Environment
	envOnce          sync.Once
	envStartErr      error
)

// Environment wraps a testcontainers setup: a stub upstream serving canned
// YouTube API responses plus the youtube-mcp server pointed at it.
type Environment struct {
	server   testcontainers.Container
	upstream testcontainers.Container
	network  *testcontainers.DockerNetwork
	ctx      context.Context
	cancel   context.CancelFunc
	url      string
}

// URL returns the base URL of the running youtube-mcp container.
func (e *Environment) URL() string {
	return e.url
}

// CollectLogs saves container stdout/stderr to dir/.
func (e *Environment) CollectLogs(dir string) {
	if e == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	os.MkdirAll(dir, 0755)

	collectContainerLog := func(c testcontainers.Container, name string) {
		if c == nil {
			return
		}
		reader, err := c.Logs(ctx)
		if err != nil {
			return
		}
		defer reader.Close()

		logs, err := io.ReadAll(reader)
		if err != nil {
			return
		}
		os.WriteFile(filepath.Join(dir, name+".log"), logs, 0644)
	}

	collectContainerLog(e.server, "youtube-mcp")
	collectContainerLog(e.upstream, "upstream")
}

// Cleanup tears down all containers and the network.
// Uses a fresh context for teardown in case the main context expired.
func (e *Environment) Cleanup() {
	if e == nil {
		return
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cleanupCancel()

	if e.server != nil {
		e.server.Terminate(cleanupCtx)
	}
	if e.upstream != nil {
		e.upstream.Terminate(cleanupCtx)
	}
	if e.network != nil {
		e.network.Remove(cleanupCtx)
	}
	if e.cancel != nil {
		e.cancel()
	}
}

// findProjectRoot walks up from the working directory to the module root.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// buildServerImage builds the youtube-mcp:test Docker image once per test run.
func buildServerImage() error {
	serverBuildOnce.Do(func() {
		ctx := context.Background()
		projectRoot := findProjectRoot()

		req := testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    projectRoot,
					Dockerfile: "tests/docker/Dockerfile.server",
					Repo:       "youtube-mcp",
					Tag:        "test",
					KeepImage:  true,
				},
			},
		}

		_, serverBuildError = testcontainers.GenericContainer(ctx, req)
		if serverBuildError != nil {
			// Image may have built successfully even if container creation failed
			if strings.Contains(serverBuildError.Error(), "youtube-mcp:test") {
				serverBuildError = nil
			}
		}
	})
	return serverBuildError
}

// startTestEnvironment creates the 2-container environment:
// stub upstream → youtube-mcp, on a shared Docker network.
func startTestEnvironment() (*Environment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)

	// 1. Create Docker network
	testNet, err := network.New(ctx, network.WithCheckDuplicate())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create docker network: %w", err)
	}

	// 2. Start the stub upstream serving canned YouTube API responses
	projectRoot := findProjectRoot()
	upstreamContainer, err := testcontainers.Run(ctx, "nginx:1.27-alpine",
		testcontainers.WithExposedPorts("80/tcp"),
		network.WithNetwork([]string{"upstream"}, testNet),
		testcontainers.WithFiles(testcontainers.ContainerFile{
			HostFilePath:      filepath.Join(projectRoot, "tests", "docker", "upstream.conf"),
			ContainerFilePath: "/etc/nginx/conf.d/default.conf",
			FileMode:          0644,
		}),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("80/tcp").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("start upstream stub: %w", err)
	}

	// 3. Get upstream container IP (bypass Docker DNS for CGO_ENABLED=0)
	upstreamIP, err := upstreamContainer.ContainerIP(ctx)
	if err != nil {
		upstreamContainer.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get upstream IP: %w", err)
	}

	// 4. Start youtube-mcp
	serverContainer, err := testcontainers.Run(ctx, "youtube-mcp:test",
		testcontainers.WithExposedPorts("4280/tcp"),
		network.WithNetwork([]string{"youtube-mcp"}, testNet),
		testcontainers.WithEnv(map[string]string{
			"YTMCP_API_URL":     fmt.Sprintf("http://%s:80", upstreamIP),
			"YTMCP_SERVER_HOST": "0.0.0.0",
			"YOUTUBE_API_KEY":   "e2e-test-key",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/health").WithPort("4280/tcp").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		upstreamContainer.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("start youtube-mcp: %w", err)
	}

	// 5. Get mapped server URL for the test client
	mappedPort, err := serverContainer.MappedPort(ctx, "4280/tcp")
	if err != nil {
		serverContainer.Terminate(ctx)
		upstreamContainer.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get server mapped port: %w", err)
	}

	host, err := serverContainer.Host(ctx)
	if err != nil {
		serverContainer.Terminate(ctx)
		upstreamContainer.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get server host: %w", err)
	}

	url := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	return &Environment{
		server:   serverContainer,
		upstream: upstreamContainer,
		network:  testNet,
		ctx:      ctx,
		cancel:   cancel,
		url:      url,
	}, nil
}

// StartEnvironment starts the test environment (one per test process).
// Returns nil when YTMCP_TEST_URL is set (manual mode -- tests use the existing server).
func StartEnvironment(t *testing.T) *Environment {
	t.Helper()
	if os.Getenv("YTMCP_TEST_URL") != "" {
		return nil
	}

	envOnce.Do(func() {
		if err := buildServerImage(); err != nil {
			envStartErr = fmt.Errorf("build server image: %w", err)
			return
		}
		var err error
		env, err = startTestEnvironment()
		if err != nil {
			envStartErr = err
		}
	})

	if envStartErr != nil {
		t.Fatalf("Failed to start test environment: %v", envStartErr)
	}
	return env
}

// TestURL returns the base URL tests should target: the manual-mode override
// when set, otherwise the containerized server.
func TestURL(e *Environment) string {
	if url := os.Getenv("YTMCP_TEST_URL"); url != "" {
		return url
	}
	if e != nil {
		return e.URL()
	}
	return "http://localhost:4280"
}
