package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/holidays/internal/domain"
)

const documentJSON = `{
  "countries": {
    "US_2025": [
      {"id":"us1","name":"New Year's Day","date":"2025-01-01","country":"US","region":null,"category":"national","description":"d","isPublicHoliday":true},
      {"id":"","name":"Broken","date":"2025-01-02","country":"US","region":null,"category":"national","description":"d","isPublicHoliday":true}
    ],
    "IN_2025": [
      {"id":"in1","name":"Holi","date":"2025-03-14","country":"IN","region":null,"category":"religious","description":"d","isPublicHoliday":false}
    ],
    "bad-key": [
      {"id":"x1","name":"X","date":"2025-01-01","country":"US","region":null,"category":"national","description":"d","isPublicHoliday":true}
    ]
  }
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestValidateFile_JSON_Auto_Mixed(t *testing.T) {
	path := writeTemp(t, "holidays.json", documentJSON)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewHolidayValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "2 valid / 2 invalid" || summary.OK() {
		t.Fatalf("unexpected summary: %s", summary)
	}
	// группы обходятся в порядке ключей
	if len(summary.Errors) != 2 || !strings.HasPrefix(summary.Errors[0], "US_2025[1]") || !strings.HasPrefix(summary.Errors[1], "bad-key[0]") {
		t.Fatalf("unexpected errors: %v", summary.Errors)
	}

	var doc domain.HolidayDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not a document: %v", err)
	}
	if len(doc.Countries["US_2025"]) != 1 || len(doc.Countries["IN_2025"]) != 1 {
		t.Fatalf("unexpected output groups: %+v", doc.Countries)
	}
	if _, ok := doc.Countries["bad-key"]; ok {
		t.Fatalf("group with bad key must be dropped")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	content := `{"id":"us1","name":"A","date":"2025-01-01","country":"US","region":null,"category":"national","description":"","isPublicHoliday":true}` + "\n" +
		"\n" +
		`{"id":"us2","name":"B","date":"2025-01-01","country":"us","region":null,"category":"national","description":"","isPublicHoliday":true}` + "\n" +
		`{"id":"us3","name":"C","date":"2025-02-01","country":"US","region":null,"category":"observance","description":"","isPublicHoliday":false}` + "\n"
	path := writeTemp(t, "list.jsonl", content)

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewHolidayValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	// пустая строка 2 пропущена, но учитывается в нумерации
	if len(summary.Errors) != 1 || !strings.HasPrefix(summary.Errors[0], "line 3:") {
		t.Fatalf("unexpected errors: %v", summary.Errors)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_JSON_UnknownField(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"countries":{},"extra":1}`)

	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), NewHolidayValidator(), path, FormatJSON, &out); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on invalid json")
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), NewHolidayValidator(), filepath.Join(t.TempDir(), "none.json"), FormatAuto, &out); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "x.json", `{}`)
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), NewHolidayValidator(), path, InputFormat("xml"), &out); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestValidateHolidayFromJSON_TrailingData(t *testing.T) {
	raw := `{"id":"us1","name":"A","date":"2025-01-01","country":"US","region":null,"category":"national","description":"","isPublicHoliday":true} {}`
	if _, err := ValidateHolidayFromJSON(context.Background(), NewHolidayValidator(), []byte(raw)); err == nil {
		t.Fatalf("expected trailing data error")
	}
}

func TestSummary_ErrorsAreCapped(t *testing.T) {
	var sum Summary
	for i := 0; i < maxReportedErrors+10; i++ {
		sum.reject("bad")
	}
	if sum.Invalid != maxReportedErrors+10 || len(sum.Errors) != maxReportedErrors {
		t.Fatalf("invalid=%d errors=%d", sum.Invalid, len(sum.Errors))
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]InputFormat{
		"a.jsonl":       FormatJSONL,
		"A.JSONL":       FormatJSONL,
		"holidays.json": FormatJSON,
		"no-extension":  FormatJSON,
	}
	for in, want := range cases {
		if got := DetectFormat(in); got != want {
			t.Fatalf("DetectFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateJSONLStream_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader(`{"id":"us1"}` + "\n")
	var out bytes.Buffer
	if _, err := ValidateJSONLStream(ctx, NewHolidayValidator(), in, &out); err == nil {
		t.Fatalf("expected context error")
	}
}
