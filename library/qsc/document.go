package qsc

import (
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/google/uuid"
)

const (
	ingestAction = "update"
	// timestampZone is the fixed zone every outbound timestamp is rendered in.
	timestampZone = "Europe/Berlin"
)

// Clock returns the current time. It enables deterministic tests.
type Clock func() time.Time

// Document is one outbound payload: arbitrary caller-supplied fields plus the
// system-assigned id and timestamp.
type Document map[string]any

// EnvelopeHeader carries the routing metadata for one ingested document.
type EnvelopeHeader struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Envelope is the wire wrapper sent to the ingestion endpoint. Header.ID always
// equals the payload's id field.
type Envelope struct {
	Header  EnvelopeHeader `json:"header"`
	Payload Document       `json:"payload"`
}

// EnricherOption customises an Enricher during construction.
type EnricherOption func(*Enricher)

// WithClock supplies a deterministic clock, primarily for testing.
func WithClock(clock Clock) EnricherOption {
	return func(e *Enricher) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithIDGenerator overrides the dispatch identifier generator, primarily for testing.
func WithIDGenerator(generate func() string) EnricherOption {
	return func(e *Enricher) {
		if generate != nil {
			e.newID = generate
		}
	}
}

// Enricher stamps outbound documents with identity and dispatch-time metadata
// and wraps them into ingestion envelopes.
type Enricher struct {
	clock    Clock
	newID    func() string
	location *time.Location
}

// NewEnricher constructs an Enricher. It fails when the timestamp zone cannot be
// loaded from the platform zone database.
func NewEnricher(opts ...EnricherOption) (*Enricher, error) {
	location, err := time.LoadLocation(timestampZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load location %q", timestampZone)
	}

	enricher := &Enricher{
		clock:    time.Now,
		newID:    uuid.NewString,
		location: location,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(enricher)
		}
	}

	return enricher, nil
}

// Enrich builds the outbound envelope for one dispatch. A blank id gets a fresh
// UUID; the timestamp reflects the moment of enrichment. System fields win over
// caller-supplied fields of the same name.
func (e *Enricher) Enrich(id string, fields map[string]any) Envelope {
	doc := make(Document, len(fields)+2)
	for key, value := range fields {
		doc[key] = value
	}

	if strings.TrimSpace(id) == "" {
		id = e.newID()
	}
	doc["id"] = id
	doc["timestamp"] = e.clock().In(e.location).Format(time.RFC3339)

	return Envelope{
		Header:  EnvelopeHeader{ID: id, Action: ingestAction},
		Payload: doc,
	}
}
