package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/onsi/gomega"

	filterapp "github.com/ktane-web/filter-server/internal/app"
	"github.com/ktane-web/filter-server/internal/config"
	"github.com/ktane-web/filter-server/internal/service"
)

// ServerTestHelper manages the filter API server lifecycle for testing
type ServerTestHelper struct {
	ctx        context.Context
	configPath string
	address    string
	baseURL    string
	httpClient *http.Client
	app        *filterapp.FilterApp
}

// NewServerTestHelper creates a server helper listening on a free local port
func NewServerTestHelper(ctx context.Context, configPath string) (*ServerTestHelper, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to reserve a port: %w", err)
	}
	address := listener.Addr().String()
	if err := listener.Close(); err != nil {
		return nil, err
	}

	return &ServerTestHelper{
		ctx:        ctx,
		configPath: configPath,
		address:    address,
		baseURL:    "http://" + address,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// StartServer builds the filter app from the config file and serves it in the background
func (s *ServerTestHelper) StartServer() error {
	cfg, err := config.LoadConfig(config.WithConfigPath(s.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := filterapp.NewFilterApp(s.ctx, filterapp.WithConfig(cfg), filterapp.WithAddress(s.address))
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	s.app = app

	go func() {
		if err := app.Start(); err != nil {
			// The test fails when it tries to connect
			fmt.Fprintf(os.Stderr, "Server start failed: %v\n", err)
		}
	}()

	return nil
}

// StopServer gracefully stops the filter API server
func (s *ServerTestHelper) StopServer() error {
	if s.app != nil {
		return s.app.Stop(5 * time.Second)
	}
	return nil
}

// WaitForServerReady waits until the catalog is served
func (s *ServerTestHelper) WaitForServerReady(timeout time.Duration) {
	gomega.Eventually(func() error {
		resp, err := s.httpClient.Get(s.baseURL + "/readiness")
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil
	}, timeout, 100*time.Millisecond).Should(gomega.Succeed(), "Server should be ready")
}

// Get makes a GET request to path with optional headers given as name/value pairs
func (s *ServerTestHelper) Get(path string, headers ...string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return s.httpClient.Do(req)
}

// Search posts a filter state to /api/v1/modules/search
func (s *ServerTestHelper) Search(state string) (*http.Response, error) {
	return s.httpClient.Post(s.baseURL+"/api/v1/modules/search", "application/json", strings.NewReader(state))
}

// SearchModuleIDs posts a filter state and returns the ids of the matching modules
func (s *ServerTestHelper) SearchModuleIDs(state string) []string {
	resp, err := s.Search(state)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	defer func() {
		_ = resp.Body.Close()
	}()
	gomega.Expect(resp.StatusCode).To(gomega.Equal(http.StatusOK))

	var result service.SearchResult
	gomega.Expect(json.NewDecoder(resp.Body).Decode(&result)).To(gomega.Succeed())

	ids := make([]string, 0, len(result.Modules))
	for _, m := range result.Modules {
		ids = append(ids, m.ModuleID)
	}
	return ids
}

// CatalogVersion returns the version reported by /api/v1/catalog
func (s *ServerTestHelper) CatalogVersion() (string, error) {
	resp, err := s.Get("/api/v1/catalog")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var info service.CatalogInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Version, nil
}

// ReadBody reads and closes the response body
func ReadBody(resp *http.Response) string {
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return string(body)
}
