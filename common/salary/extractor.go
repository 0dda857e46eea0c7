package salary

const (
	DefaultHighlightsHeading = "## Highlights"
	DefaultPayMarker         = "\U0001F4B0"
)

type Option func(*Extractor)

func WithBounds(b Bounds) Option {
	return func(e *Extractor) {
		e.bounds = b
	}
}

// WithPayMarker sets the line marker the upstream highlights generator puts in
// front of the pay line.
func WithPayMarker(marker string) Option {
	return func(e *Extractor) {
		if marker != "" {
			e.marker = marker
		}
	}
}

func WithHighlightsHeading(heading string) Option {
	return func(e *Extractor) {
		if heading != "" {
			e.heading = heading
		}
	}
}

// Extractor finds a pay figure in job description text. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	bounds   Bounds
	marker   string
	heading  string
	matchers []matcher
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		bounds:  DefaultBounds(),
		marker:  DefaultPayMarker,
		heading: DefaultHighlightsHeading,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.matchers = append(labeledMatchers(), highlightsMatcher(e.heading, e.marker, e.bounds.FallbackHourlyCeiling))
	return e
}

func (e *Extractor) Bounds() Bounds {
	return e.bounds
}

// Extract runs the matchers in priority order. The first matcher that finds
// amounts decides the result: if its amounts fail the bounds check nothing is
// returned, later matchers are not consulted.
func (e *Extractor) Extract(text string) (Salary, bool) {
	for _, m := range e.matchers {
		c, ok := m.match(text)
		if !ok {
			continue
		}
		if c.min > c.max {
			c.min, c.max = c.max, c.min
		}
		if !e.bounds.Accepts(c.min, c.max, c.unit) {
			return Salary{}, false
		}
		return e.bounds.normalize(c.min, c.max, c.unit), true
	}
	return Salary{}, false
}

// Normalize applies the bounds check and derivation to values that came from a
// structured source rather than from text.
func (e *Extractor) Normalize(min, max float64, t Type) (Salary, bool) {
	if min > max {
		min, max = max, min
	}
	if !e.bounds.Accepts(min, max, t) {
		return Salary{}, false
	}
	return e.bounds.normalize(min, max, t), true
}
