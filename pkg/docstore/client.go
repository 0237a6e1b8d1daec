package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"github.com/coralshopping/coral-backend/pkg/config"
	pkgerrors "github.com/coralshopping/coral-backend/pkg/errors"
	"github.com/coralshopping/coral-backend/pkg/logger"
)

// Client wraps the Elasticsearch connection behind the three operations the
// platform needs: insert-one, find-with-filter-and-limit, and collection
// enumeration for diagnostics.
type Client struct {
	es   *elasticsearch.Client
	logg *logger.Logger
}

// New builds a store client. Connectivity is not verified here; the store
// being down degrades individual requests, never boot.
func New(cfg config.StoreConfig, logg *logger.Logger) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating store client")
	}
	if logg != nil {
		logg.Info(logg.WithField(context.Background(), "store_url", cfg.URL), "document store client ready")
	}
	return &Client{es: es, logg: logg}, nil
}

// Insert adds a document to a collection and returns its assigned identifier.
// Writes are refreshed so immediately following reads observe them.
func (c *Client) Insert(ctx context.Context, collection string, doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding document")
	}

	id := uuid.NewString()
	req := esapi.IndexRequest{
		Index:      collection,
		DocumentID: id,
		Body:       bytes.NewReader(payload),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		c.logFailure(ctx, collection, "store insert failed", err)
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "indexing document")
	}
	defer res.Body.Close()

	if res.IsError() {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "store rejected document").
			WithDetails(map[string]any{"collection": collection, "status": res.StatusCode})
	}
	return id, nil
}

// Find runs the filter against a collection and returns up to limit documents
// in insertion order, each carrying its identifier under _id. A nil filter
// matches everything; a collection that does not exist yet yields no results.
func (c *Client) Find(ctx context.Context, collection string, filter Predicate, limit int) ([]Document, error) {
	if filter == nil {
		filter = And{}
	}

	body := map[string]any{
		"query": filter.Query(),
		"size":  limit,
		"sort":  []any{map[string]any{"_doc": "asc"}},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding query")
	}

	req := esapi.SearchRequest{
		Index: []string{collection},
		Body:  &buf,
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		c.logFailure(ctx, collection, "store query failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "searching collection")
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return []Document{}, nil
	}
	if res.IsError() {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "store query failed").
			WithDetails(map[string]any{"collection": collection, "status": res.StatusCode})
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string   `json:"_id"`
				Source Document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding search response")
	}

	docs := make([]Document, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		doc := hit.Source
		if doc == nil {
			doc = Document{}
		}
		doc[IDField] = hit.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

// Collections enumerates the non-system collection names, sorted. Used by the
// diagnostics probe only.
func (c *Client) Collections(ctx context.Context) ([]string, error) {
	req := esapi.CatIndicesRequest{Format: "json"}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing collections")
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "collection listing failed").
			WithDetails(map[string]any{"status": res.StatusCode})
	}

	var rows []struct {
		Index string `json:"index"`
	}
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding collection listing")
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.HasPrefix(row.Index, ".") {
			continue
		}
		names = append(names, row.Index)
	}
	sort.Strings(names)
	return names, nil
}

func (c *Client) logFailure(ctx context.Context, collection, msg string, err error) {
	if c.logg == nil {
		return
	}
	c.logg.Error(c.logg.WithCollection(ctx, collection), msg, err)
}

// Ping verifies the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Info(c.es.Info.WithContext(ctx))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pinging store")
	}
	defer res.Body.Close()

	if res.IsError() {
		return pkgerrors.New(pkgerrors.CodeDependency, "store ping failed").
			WithDetails(map[string]any{"status": res.StatusCode})
	}
	return nil
}
