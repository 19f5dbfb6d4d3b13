// Package vector implements tenant-filtered similarity search over a Redis
// vector index (RediSearch HNSW). Cross-tenant leakage is prevented by a
// mandatory tenant tag in every query.
package vector

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Hit is one similarity match.
type Hit struct {
	DocID string
	Score float64 // Cosine distance; lower is closer
}

// Store is the vector store contract.
type Store interface {
	Upsert(ctx context.Context, docID string, embedding []float32, meta Metadata) error
	Query(ctx context.Context, embedding []float32, topK int, filter Filter) ([]Hit, error)
}

// Metadata is stored alongside each vector.
type Metadata struct {
	TenantID       string
	Classification string
}

// Filter restricts a query; TenantID is mandatory.
type Filter struct {
	TenantID          string
	MaxClassification string // Empty = internal
}

// classRank orders classifications for the ≤ filter.
var classRank = map[string]int{
	"public":       0,
	"internal":     1,
	"confidential": 2,
	"restricted":   3,
}

// RedisStore implements Store on a RediSearch index created by the ingestion
// pipeline:
//
//	FT.CREATE <index> ON HASH PREFIX 1 kc: SCHEMA tenant TAG class_rank NUMERIC vec VECTOR HNSW ...
type RedisStore struct {
	rdb   *redis.Client
	index string
}

// NewRedisStore creates a store over an existing index.
func NewRedisStore(rdb *redis.Client, index string) *RedisStore {
	return &RedisStore{rdb: rdb, index: index}
}

func chunkKey(docID string) string { return "kc:" + docID }

// Upsert writes the vector and metadata hash.
func (s *RedisStore) Upsert(ctx context.Context, docID string, embedding []float32, meta Metadata) error {
	if meta.TenantID == "" {
		return fmt.Errorf("vector upsert: tenant id is required")
	}
	rank, ok := classRank[meta.Classification]
	if !ok {
		rank = classRank["internal"]
	}
	err := s.rdb.HSet(ctx, chunkKey(docID), map[string]any{
		"tenant":     meta.TenantID,
		"class_rank": rank,
		"vec":        encodeVector(embedding),
	}).Err()
	if err != nil {
		return fmt.Errorf("vector upsert failed: %w", err)
	}
	return nil
}

// Query runs a KNN search restricted to the filter's tenant and maximum
// classification.
func (s *RedisStore) Query(ctx context.Context, embedding []float32, topK int, filter Filter) ([]Hit, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("vector query: tenant filter is required")
	}
	maxClass := filter.MaxClassification
	if maxClass == "" {
		maxClass = "internal"
	}
	rank, ok := classRank[maxClass]
	if !ok {
		return nil, fmt.Errorf("vector query: unknown classification %q", maxClass)
	}

	query := fmt.Sprintf("(@tenant:{%s} @class_rank:[0 %d])=>[KNN %d @vec $vec AS score]",
		escapeTag(filter.TenantID), rank, topK)

	res, err := s.rdb.Do(ctx,
		"FT.SEARCH", s.index, query,
		"PARAMS", "2", "vec", encodeVector(embedding),
		"SORTBY", "score",
		"RETURN", "1", "score",
		"DIALECT", "2",
	).Result()
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	return parseSearchReply(res)
}

// encodeVector packs float32s little-endian, the layout RediSearch expects.
func encodeVector(vec []float32) string {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return string(buf)
}

// escapeTag escapes RediSearch tag syntax characters in tenant ids.
func escapeTag(tag string) string {
	out := make([]byte, 0, len(tag))
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch c {
		case '-', '{', '}', '|', ' ', '(', ')', '[', ']', '"', '\'', ':', ';', ',', '.', '<', '>', '?', '@', '#', '$', '%', '^', '&', '*', '+', '=', '~', '/':
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}

// parseSearchReply handles both RESP2 (slice) and RESP3 (map) FT.SEARCH
// reply shapes.
func parseSearchReply(res any) ([]Hit, error) {
	switch reply := res.(type) {
	case map[any]any:
		return parseResp3(reply)
	case []any:
		return parseResp2(reply)
	default:
		return nil, fmt.Errorf("unexpected FT.SEARCH reply type %T", res)
	}
}

func parseResp3(reply map[any]any) ([]Hit, error) {
	results, _ := reply["results"].([]any)
	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		doc, ok := r.(map[any]any)
		if !ok {
			continue
		}
		id, _ := doc["id"].(string)
		score := 0.0
		if attrs, ok := doc["extra_attributes"].(map[any]any); ok {
			if s, ok := attrs["score"].(string); ok {
				score, _ = strconv.ParseFloat(s, 64)
			}
		}
		hits = append(hits, Hit{DocID: trimPrefix(id), Score: score})
	}
	return hits, nil
}

func parseResp2(reply []any) ([]Hit, error) {
	if len(reply) == 0 {
		return nil, nil
	}
	hits := make([]Hit, 0, (len(reply)-1)/2)
	// reply[0] is the total count; then alternating id, fields
	for i := 1; i+1 < len(reply); i += 2 {
		id, _ := reply[i].(string)
		score := 0.0
		if fields, ok := reply[i+1].([]any); ok {
			for j := 0; j+1 < len(fields); j += 2 {
				if name, _ := fields[j].(string); name == "score" {
					if s, ok := fields[j+1].(string); ok {
						score, _ = strconv.ParseFloat(s, 64)
					}
				}
			}
		}
		hits = append(hits, Hit{DocID: trimPrefix(id), Score: score})
	}
	return hits, nil
}

func trimPrefix(id string) string {
	if len(id) > 3 && id[:3] == "kc:" {
		return id[3:]
	}
	return id
}
