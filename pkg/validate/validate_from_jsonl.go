package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/holidays/internal/ports"
)

// maxJSONLLine — предел длины одной строки JSONL.
const maxJSONLLine = 1 << 20

// ValidateJSONLStream — построчная проверка JSONL (один праздник на строку).
// Валидные записи пишутся в ow компактным JSON, пустые строки пропускаются.
// Ошибки записи и чтения прерывают обработку, ошибки записей только считаются.
func ValidateJSONLStream(ctx context.Context, validator ports.HolidayValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64<<10), maxJSONLLine)
	enc := json.NewEncoder(ow) // Encode добавляет '\n' сам

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		holiday, err := ValidateHolidayFromJSON(ctx, validator, line)
		if err != nil {
			sum.reject(fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}
		if err := enc.Encode(holiday); err != nil {
			return sum, fmt.Errorf("write line %d: %w", lineNo, err)
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}
