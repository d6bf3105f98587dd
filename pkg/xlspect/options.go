// Package xlspect inspects and re-serializes spreadsheet workbooks.
//
// A workbook is loaded once per session into an immutable structural model
// (sheets, tagged cells, formula text, opaque macro payload). Everything
// else — tabular views, formula records, complexity metrics — is derived on
// demand and never cached across sessions.
package xlspect

// DefaultSampleSize is the number of non-empty values inspected per column
// when inferring a TabularView column type.
const DefaultSampleSize = 10

// DefaultComplexityThreshold is the formula text length above which a
// formula counts as "complex". This is a policy constant, not a computed
// heuristic; tests rely on the exact value.
const DefaultComplexityThreshold = 50

// Options configures inspection behavior.
type Options struct {
	// BookName labels the loaded workbook in reports. Optional.
	BookName string
	// SampleSize overrides DefaultSampleSize when positive.
	SampleSize int
	// ComplexityThreshold overrides DefaultComplexityThreshold when positive.
	ComplexityThreshold int
}

// DefaultOptions returns the default inspection options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) sampleSize() int {
	if o.SampleSize > 0 {
		return o.SampleSize
	}
	return DefaultSampleSize
}

func (o Options) complexityThreshold() int {
	if o.ComplexityThreshold > 0 {
		return o.ComplexityThreshold
	}
	return DefaultComplexityThreshold
}
