// Package normalize is the embeddable facade over the normalization core:
// one Session per source file, owning its mapping store and splicing combiner
// output into transformed rows.
package normalize

import (
	"errors"

	"github.com/FernBytes/sheetnorm-cli/internal/combine"
	"github.com/FernBytes/sheetnorm-cli/internal/infer"
	"github.com/FernBytes/sheetnorm-cli/internal/mapping"
	"github.com/FernBytes/sheetnorm-cli/internal/relate"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
	"github.com/FernBytes/sheetnorm-cli/internal/transform"
	"github.com/FernBytes/sheetnorm-cli/internal/validate"
)

// DefaultSampleSize bounds how many rows Analyze inspects per column.
const DefaultSampleSize = 10

// Session holds the per-file processing state. Mappings created through a
// session live in its store until the session is discarded; separate sessions
// never share identifiers.
type Session struct {
	store      *mapping.Store
	matcher    mapping.Strategy
	sampleSize int
}

// Option configures a Session.
type Option func(*Session)

// WithMatcher substitutes the mapping strategy.
func WithMatcher(m mapping.Strategy) Option {
	return func(s *Session) { s.matcher = m }
}

// WithSampleSize overrides the analysis sample size.
func WithSampleSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// NewSession creates a session around its own empty mapping store.
func NewSession(opts ...Option) *Session {
	s := &Session{
		store:      mapping.NewStore(),
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.matcher == nil {
		s.matcher = mapping.KeywordStrategy{SampleSize: s.sampleSize}
	}
	return s
}

// ColumnInfo pairs a source header with its inferred type.
type ColumnInfo struct {
	Header string         `json:"header"`
	Type   schema.TypeTag `json:"type"`
}

// Analysis is the full structural read of a source table: per-column types,
// split/combined relationships, and a suggested mapping with per-field tiers.
type Analysis struct {
	Columns       []ColumnInfo       `json:"columns"`
	Relationships relate.Result      `json:"relationships"`
	Suggestion    mapping.Suggestion `json:"suggestion"`
	SampleIndices []int              `json:"sample_indices"`
}

// Analyze inspects headers and rows. Blank rows are assumed to be filtered
// already (see source.Read); an empty table is an unsupported source.
func (s *Session) Analyze(headers []string, rows [][]string) (*Analysis, error) {
	const op = "analyze"
	if len(headers) == 0 {
		return nil, errf(KindUnsupportedSource, op, "table has no headers")
	}
	if len(rows) == 0 {
		return nil, errf(KindUnsupportedSource, op, "table has no rows")
	}

	indices := infer.SampleIndices(len(rows), s.sampleSize)
	sampleRows := make([][]string, 0, len(indices))
	for _, i := range indices {
		sampleRows = append(sampleRows, rows[i])
	}

	cols := make([]ColumnInfo, len(headers))
	for i, h := range headers {
		cols[i] = ColumnInfo{
			Header: h,
			Type:   infer.InferType(infer.SampleColumn(rows, indices, i)),
		}
	}

	rel := relate.Detect(headers, sampleRows)
	return &Analysis{
		Columns:       cols,
		Relationships: rel,
		Suggestion:    s.matcher.Suggest(headers, rows, rel),
		SampleIndices: indices,
	}, nil
}

// CreateMapping validates selections, attaches combiner component headers
// from the detected relationships (rel may be nil), stores the record, and
// returns its opaque identifier.
func (s *Session) CreateMapping(selections map[string]string, rel *relate.Result) (string, error) {
	const op = "create_mapping"
	rec, err := mapping.NewRecord(selections)
	if err != nil {
		var mfe *mapping.MissingFieldsError
		if errors.As(err, &mfe) {
			return "", errf(KindInvalidMapping, op, "%s", mfe.Error())
		}
		return "", errf(KindInvalidMapping, op, "%s", err.Error())
	}
	if rel != nil {
		rec = rec.WithParts(rel.NameComponents, rel.AddressComponents)
	}
	return s.store.Put(rec), nil
}

// Mapping returns the stored record for an identifier.
func (s *Session) Mapping(id string) (mapping.Record, bool) {
	return s.store.Get(id)
}

// Transform produces canonical rows for the mapping identified by id,
// splicing combined name/address values into sentinel positions.
func (s *Session) Transform(id string, headers []string, rows [][]string) ([][]string, error) {
	const op = "transform"
	if headers == nil || rows == nil {
		return nil, errf(KindInvalidInput, op, "headers and rows must be sequences")
	}
	rec, ok := s.store.Get(id)
	if !ok {
		return nil, errf(KindMappingNotFound, op, "no mapping with id %q", id)
	}

	out := transform.Rows(rec, rows, headers)
	nameIdx := schema.Index(schema.FieldName)
	addrIdx := schema.Index(schema.FieldAddress)
	for r, src := range rows {
		if rec.Fields[schema.FieldName] == mapping.FromCombiner {
			out[r][nameIdx] = combine.Name(
				transform.Cell(src, headers, rec.NameParts[relate.CompFirst]),
				transform.Cell(src, headers, rec.NameParts[relate.CompLast]),
				transform.Cell(src, headers, rec.NameParts[relate.CompMiddle]),
			)
		}
		if rec.Fields[schema.FieldAddress] == mapping.FromCombiner {
			out[r][addrIdx] = combine.Address(
				transform.Cell(src, headers, rec.AddressParts[relate.CompStreet]),
				transform.Cell(src, headers, rec.AddressParts[relate.CompApartment]),
				transform.Cell(src, headers, rec.AddressParts[relate.CompCity]),
				transform.Cell(src, headers, rec.AddressParts[relate.CompState]),
				transform.Cell(src, headers, rec.AddressParts[relate.CompPostal]),
				transform.Cell(src, headers, rec.AddressParts[relate.CompCountry]),
			)
		}
	}
	return out, nil
}

// Validate checks canonical rows and returns the categorized report.
func (s *Session) Validate(rows [][]string) (validate.Report, error) {
	const op = "validate"
	if len(rows) == 0 {
		return validate.Report{}, errf(KindInvalidInput, op, "rows must be a non-empty sequence")
	}
	return validate.Rows(rows), nil
}
