package fetch

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/orgball2608/story-fixtures/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// Client issues GETs against the base URL captured when it is built.
type Client struct {
	baseURL string
	http    *resty.Client
	logger  logger.Logger
}

func New(opts Opts) *Client {
	return NewClient(opts.Config.Api.BaseURL, opts.Config.Api.Timeout, opts.Logger)
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
		logger:  log.WithComponent("FetchClient"),
	}
	c.http.OnAfterResponse(c.onAfterResponse)
	c.http.OnError(c.onError)
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// get returns the raw body. The status code is not inspected.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	return res.Body(), nil
}

func (c *Client) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	c.logger.Debug("Request finished",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"elapsed", res.Time().String(),
	)
	return nil
}

func (c *Client) onError(req *resty.Request, err error) {
	c.logger.Debug("Request failed", "method", req.Method, "url", req.URL, "error", err)
}
