package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

const (
	BucketSymptoms = "symptom-catalog"
	BucketDiseases = "disease-encyclopedia"
	BucketMetadata = "metadata"
)

// Subject path markers, tested in this order.
var bucketRules = []struct {
	marker string
	bucket string
}{
	{"/koah/symptom/", BucketSymptoms},
	{"/koah/disease/", BucketDiseases},
	{"/koah/", BucketMetadata},
}

// BucketOf classifies a subject URI into exactly one provenance bucket.
func BucketOf(subject string) string {
	for _, r := range bucketRules {
		if strings.Contains(subject, r.marker) {
			return r.bucket
		}
	}
	return BucketMetadata
}

var groundingCleaner = strings.NewReplacer("\r", " ", "\n", " ", "#", "")

// GroundingContext is the set of distinct fact lines found for one keyword.
type GroundingContext struct {
	Keyword string
	Lines   []string
	Buckets map[string]int
}

func (g GroundingContext) Empty() bool { return len(g.Lines) == 0 }

// Text renders the lines as a bulleted block, or "" when nothing was found.
func (g GroundingContext) Text() string {
	if g.Empty() {
		return ""
	}
	var sb strings.Builder
	for i, line := range g.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(line)
	}
	return sb.String()
}

// ContextBuilder assembles chat grounding from a keyword scan of the graph.
type ContextBuilder struct {
	exec    sparql.Executor
	builder *Builder
	log     *logger.Logger
}

func NewContextBuilder(exec sparql.Executor, builder *Builder, log *logger.Logger) *ContextBuilder {
	return &ContextBuilder{
		exec:    exec,
		builder: builder,
		log:     log.With("component", "ContextBuilder"),
	}
}

// Build returns the grounding for keyword. Graph failures are returned to the
// caller; an empty context with a nil error means nothing matched.
func (b *ContextBuilder) Build(ctx context.Context, keyword string) (GroundingContext, error) {
	out := GroundingContext{Keyword: keyword, Buckets: map[string]int{}}
	query, err := b.builder.Build(Intent{Kind: ByProximityKeyword, Text: keyword})
	if err != nil {
		return out, fmt.Errorf("build grounding query: %w", err)
	}
	rows, err := b.exec.Execute(ctx, query)
	if err != nil {
		return out, fmt.Errorf("grounding query: %w", err)
	}

	out = Ground(keyword, rows)
	for bucket, n := range out.Buckets {
		groundingLines.WithLabelValues(bucket).Add(float64(n))
	}
	if out.Empty() {
		groundingEmpty.Inc()
	}
	b.log.Info("grounding built",
		"keyword", keyword,
		"rows", len(rows),
		"lines", len(out.Lines),
		BucketSymptoms, out.Buckets[BucketSymptoms],
		BucketDiseases, out.Buckets[BucketDiseases],
		BucketMetadata, out.Buckets[BucketMetadata],
	)
	return out, nil
}

// Ground turns ?s ?o rows into grounding lines, keeping the first row of each
// subject and the first occurrence of each line.
func Ground(keyword string, rows []sparql.Binding) GroundingContext {
	out := GroundingContext{Keyword: keyword, Buckets: map[string]int{}}
	seen := make(map[string]struct{}, len(rows))
	seenLines := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		subject := NormalizeSubject(row.Get("s"))
		if subject == "" {
			continue
		}
		if _, ok := seen[subject]; ok {
			continue
		}
		seen[subject] = struct{}{}

		text := strings.TrimSpace(groundingCleaner.Replace(row.Get("o")))
		if text == "" {
			continue
		}
		if _, dup := seenLines[text]; dup {
			continue
		}
		seenLines[text] = struct{}{}
		out.Lines = append(out.Lines, text)
		out.Buckets[BucketOf(subject)]++
	}
	return out
}
