package jobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"jobmatch-engine/internal/domain"
)

// Client fetches job snapshots from the upstream job store over HTTP and
// resolves them into domain.Job at the boundary. The engine core never
// sees the upstream wire shapes.
type Client struct {
	baseURL  string
	pageSize int
	token    string
	hc       *http.Client
	limiter  *HostLimiter
}

type Config struct {
	BaseURL   string
	PageSize  int
	ReqPerSec float64
	Burst     int
	Token     string
}

func New(cfg Config) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
		token:    cfg.Token,
		hc:       &http.Client{Timeout: 20 * time.Second},
		limiter:  NewHostLimiter(cfg.ReqPerSec, cfg.Burst),
	}
}

type pageResponse struct {
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Jobs  []rawJob `json:"jobs"`
}

// Snapshot fetches the full job collection. The first page reveals the
// total; remaining pages are fetched concurrently, rate limited per host.
// Records that fail to resolve are skipped, never fatal.
func (c *Client) Snapshot(ctx context.Context) ([]domain.Job, error) {
	first, err := c.fetchPage(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("jobstore snapshot: %w", err)
	}

	pages := 1
	if first.Total > 0 {
		pages = (first.Total + c.pageSize - 1) / c.pageSize
	}

	byPage := make(map[int][]rawJob, pages)
	byPage[1] = first.Jobs

	if pages > 1 {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(4)

		for p := 2; p <= pages; p++ {
			p := p
			g.Go(func() error {
				res, err := c.fetchPage(ctx, p)
				if err != nil {
					// partial snapshots beat no snapshot
					log.Printf("level=warn msg=\"jobstore page failed\" page=%d err=%v", p, err)
					return nil
				}
				mu.Lock()
				byPage[p] = res.Jobs
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	pageNums := make([]int, 0, len(byPage))
	for p := range byPage {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)

	var out []domain.Job
	seen := make(map[string]bool)
	for _, p := range pageNums {
		for _, r := range byPage[p] {
			j, err := Resolve(r)
			if err != nil {
				log.Printf("level=warn msg=\"job record skipped\" page=%d err=%v", p, err)
				continue
			}
			if seen[j.ID] {
				continue
			}
			seen[j.ID] = true
			out = append(out, j)
		}
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (pageResponse, error) {
	u := fmt.Sprintf("%s/jobs?page=%d&per_page=%d", c.baseURL, page, c.pageSize)

	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return pageResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return pageResponse{}, err
	}
	req.Header.Set("User-Agent", "JobMatch/1.0 (+local)")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return pageResponse{}, fmt.Errorf("get page %d: %w", page, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return pageResponse{}, fmt.Errorf("page %d status %d", page, res.StatusCode)
	}

	var pr pageResponse
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return pageResponse{}, fmt.Errorf("decode page %d: %w", page, err)
	}
	return pr, nil
}
