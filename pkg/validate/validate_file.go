package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/holidays/internal/ports"
)

// InputFormat — формат входного файла.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// maxReportedErrors — сколько причин отказа хранить в Summary.
const maxReportedErrors = 50

// Summary — итог проверки файла или потока.
type Summary struct {
	Valid   int
	Invalid int
	Errors  []string // первые причины отказа
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// OK — ни одной отброшенной записи.
func (s Summary) OK() bool { return s.Invalid == 0 }

func (s *Summary) reject(reason string) {
	s.Invalid++
	if len(s.Errors) < maxReportedErrors {
		s.Errors = append(s.Errors, reason)
	}
}

// DetectFormat — формат по расширению: .jsonl → JSONL, иначе документ JSON.
func DetectFormat(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет файл праздников и пишет валидную часть в ow.
// JSON — документ {"countries": {...}}, выводится с отступами; JSONL — запись на строку.
func ValidateFile(ctx context.Context, validator ports.HolidayValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}
	if format != FormatJSON && format != FormatJSONL {
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Summary{}, fmt.Errorf("read file: %w", err)
	}
	doc, sum, err := ValidateDocumentFromJSON(ctx, validator, raw)
	if err != nil {
		return sum, err
	}
	enc := json.NewEncoder(ow)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return sum, fmt.Errorf("write json: %w", err)
	}
	return sum, nil
}
