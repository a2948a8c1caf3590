// Package docstore archives HIGH-labeled leads as documents in
// Elasticsearch, the secondary structured store behind the append-only
// lead log.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/inlethq/leadgate/internal/domain"
)

// Archive indexes leads into a fixed index.
type Archive struct {
	client *es.Client
	index  string
}

// NewArchive creates an Elasticsearch-backed lead archive.
func NewArchive(client *es.Client, index string) *Archive {
	return &Archive{
		client: client,
		index:  index,
	}
}

// IndexLead writes one lead with the lead ID as document ID, so a replayed
// pipeline overwrites rather than duplicates.
func (a *Archive) IndexLead(ctx context.Context, lead domain.Lead) error {
	doc, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead %s: %w", lead.ID, err)
	}

	res, err := a.client.Index(
		a.index,
		bytes.NewReader(doc),
		a.client.Index.WithContext(ctx),
		a.client.Index.WithDocumentID(lead.ID),
	)
	if err != nil {
		return fmt.Errorf("index lead %s: %w", lead.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index lead %s: %s", lead.ID, res.String())
	}

	return nil
}
