package analysis

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textx"
)

// RuneInfo describes one decoded character of the input
type RuneInfo struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Char      string `json:"char" yaml:"char"`
	CodePoint string `json:"code_point" yaml:"code_point"`
	Size      int    `json:"size" yaml:"size"`
}

// Normalization reports whether the input is already in each form
type Normalization struct {
	NFC  bool `json:"nfc" yaml:"nfc"`
	NFD  bool `json:"nfd" yaml:"nfd"`
	NFKC bool `json:"nfkc" yaml:"nfkc"`
	NFKD bool `json:"nfkd" yaml:"nfkd"`
}

// AnalysisResult represents the measurements of one text
type AnalysisResult struct {
	Bytes         int           `json:"bytes" yaml:"bytes"`
	Chars         int           `json:"chars" yaml:"chars"`
	Graphemes     int           `json:"graphemes" yaml:"graphemes"`
	Width         int           `json:"width" yaml:"width"`
	Words         int           `json:"words" yaml:"words"`
	Lines         int           `json:"lines" yaml:"lines"`
	ASCII         bool          `json:"ascii" yaml:"ascii"`
	Normalization Normalization `json:"normalization" yaml:"normalization"`
	Runes         []RuneInfo    `json:"runes,omitempty" yaml:"runes,omitempty"`
}

// Config holds service configuration
type Config struct {
	Logger *tklog.Logger

	// IncludeRunes adds a per-character breakdown to every result
	IncludeRunes bool
}

// Service measures texts
type Service struct {
	logger       *tklog.Logger
	includeRunes bool
}

// NewService creates a new analysis service
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = tklog.GetDefault()
	}
	return &Service{
		logger:       logger.WithName("analysis"),
		includeRunes: cfg.IncludeRunes,
	}
}

// Analyze measures text. The context is checked between the per-character
// passes so very large inputs can be abandoned.
func (s *Service) Analyze(ctx context.Context, text textx.View) (*AnalysisResult, error) {
	timer := s.logger.StartTimer("analyze").WithField("bytes", text.Len())

	result := &AnalysisResult{
		Bytes:     text.Len(),
		Chars:     text.CharCount(),
		Graphemes: text.GraphemeCount(),
		Width:     text.DisplayWidth(),
		ASCII:     text.Len() == text.CharCount(),
	}
	if err := ctx.Err(); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	result.Words = countWords(text)
	result.Lines = countLines(text)
	result.Normalization = Normalization{
		NFC:  textx.IsNormalized(text, textx.NFC),
		NFD:  textx.IsNormalized(text, textx.NFD),
		NFKC: textx.IsNormalized(text, textx.NFKC),
		NFKD: textx.IsNormalized(text, textx.NFKD),
	}

	if s.includeRunes {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		result.Runes = runeTable(text)
	}

	timer.Stop()
	return result, nil
}

func runeTable(text textx.View) []RuneInfo {
	runes := make([]RuneInfo, 0, text.CharCount())
	for i, r := range text.Chars() {
		runes = append(runes, RuneInfo{
			Offset:    i,
			Char:      printable(r),
			CodePoint: fmt.Sprintf("U+%04X", r),
			Size:      utf8.RuneLen(r),
		})
	}
	return runes
}

func printable(r rune) string {
	if unicode.IsPrint(r) {
		return string(r)
	}
	return fmt.Sprintf("%q", r)
}

func countWords(text textx.View) int {
	words := 0
	inWord := false
	for _, r := range text.Chars() {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}
	return words
}

func countLines(text textx.View) int {
	lines := 0
	for range text.Lines() {
		lines++
	}
	return lines
}
