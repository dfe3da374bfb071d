package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/models"
)

const (
	// Host is the statistics service queried for the unemployment table
	Host = "http://api.scb.se"

	// TablePath is the path of the regional unemployment table, used for both metadata and data
	TablePath = "/OV0104/v1/doris/sv/ssd/START/ME/ME0104/ME0104D/ME0104T4"

	contentTypeJSON = "application/json;charset=utf-8"

	// dataPrefixLen is the number of bytes the service writes before the json of a data response
	dataPrefixLen = 3
)

// Client queries the statistics service for a single table
type Client struct {
	host   string
	client dphttp.Clienter
}

// New creates a Client for the statistics service. Requests are not retried.
func New(timeout time.Duration) *Client {
	c := dphttp.NewClient()
	c.SetTimeout(timeout)
	c.SetMaxRetries(0)
	return NewWithClienter(Host, c)
}

// NewWithClienter creates a Client sending its requests to host through the provided Clienter
func NewWithClienter(host string, c dphttp.Clienter) *Client {
	return &Client{
		host:   host,
		client: c,
	}
}

// URL returns the URL of the table used by this client
func (c *Client) URL() string {
	return c.host + TablePath
}

// GetMetadata returns the description of the table's dimensions
func (c *Client) GetMetadata(ctx context.Context) (meta models.DatasetMetadata, err error) {
	req, err := http.NewRequest(http.MethodGet, c.URL(), http.NoBody)
	if err != nil {
		return meta, err
	}

	log.Info(ctx, "requesting dataset metadata", log.Data{"url": c.URL()})

	b, err := c.do(ctx, req, apierrors.ErrMetadataUnavailable, 0)
	if err != nil {
		return meta, err
	}

	if err = json.Unmarshal(b, &meta); err != nil {
		return meta, errors.Wrap(apierrors.ErrDecode, "metadata: "+err.Error())
	}

	return meta, nil
}

// QueryTable posts the query and returns the table of rows it selects
func (c *Client) QueryTable(ctx context.Context, query models.Query) (table models.Table, err error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return table, errors.Wrap(err, "error while attempting to marshal query")
	}

	req, err := http.NewRequest(http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return table, err
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	log.Info(ctx, "querying table", log.Data{"url": c.URL(), "query": string(payload)})

	b, err := c.do(ctx, req, apierrors.ErrDataUnavailable, dataPrefixLen)
	if err != nil {
		return table, err
	}

	if err = json.Unmarshal(b, &table); err != nil {
		return table, errors.Wrap(apierrors.ErrDecode, "data: "+err.Error())
	}

	log.Info(ctx, "table received", log.Data{"rows": len(table.Data), "comments": len(table.Comments)})

	return table, nil
}

// do sends the request and returns the normalised body of a 200 response. Any transport failure or
// other status is reported as unavailable.
func (c *Client) do(ctx context.Context, req *http.Request, unavailable error, prefixLen int) ([]byte, error) {
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(unavailable, err.Error())
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		log.Warn(ctx, "unexpected response status", log.Data{"url": req.URL.String(), "method": req.Method, "status": resp.StatusCode})
		return nil, errors.Wrapf(unavailable, "received status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(apierrors.ErrDecode, "reading body: "+err.Error())
	}

	return normaliseBody(ctx, b, prefixLen)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}
