package generation

import (
	"errors"
	"fmt"
)

// ErrGeneration is the family every fatal generation failure belongs to.
var ErrGeneration = errors.New("program generation failed")

var (
	// ErrGenerationParse: the generator's text is not valid JSON.
	ErrGenerationParse = fmt.Errorf("%w: response is not valid JSON", ErrGeneration)
	// ErrGenerationFormat: the parsed JSON is neither an object nor an array.
	ErrGenerationFormat = fmt.Errorf("%w: response is not an object", ErrGeneration)
	// ErrGenerationEmptyResponse: the generator returned no text.
	ErrGenerationEmptyResponse = fmt.Errorf("%w: empty response", ErrGeneration)
)

// ErrMediaLookup wraps any failure of a single video lookup. It never leaves this package.
var ErrMediaLookup = errors.New("media lookup failed")

var (
	ErrAnalysis              = errors.New("health analysis failed")
	ErrAnalysisEmptyResponse = fmt.Errorf("%w: empty response", ErrAnalysis)
	ErrAnalysisParse         = fmt.Errorf("%w: response is not valid JSON", ErrAnalysis)
)
