package quotes

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/youruser/jashn/internal/logger"
)

// TemplatesFile is the operator-supplied template sheet inside a data dir.
const TemplatesFile = "templates.csv"

// LoadTemplatesCSV reads extra templates from dataDir/templates.csv
// (columns occasion, audience, index, language, text). Rows that do not
// describe a valid template are skipped with a warning.
func LoadTemplatesCSV(dataDir string) ([]Template, error) {
	path := filepath.Join(dataDir, TemplatesFile)
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Template{}
	for n, row := range rows[1:] {
		t, ok := parseTemplateRow(get(row, "occasion"), get(row, "audience"), get(row, "index"), get(row, "language"), get(row, "text"))
		if !ok {
			logger.Warnf("%s: skipping row %d", path, n+2)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func parseTemplateRow(occasion, audience, index, language, text string) (Template, bool) {
	if occasion == "" || text == "" {
		return Template{}, false
	}
	idx, err := strconv.Atoi(index)
	if err != nil || idx < MinIndex || idx > MaxIndex {
		return Template{}, false
	}
	lang := Language(strings.ToLower(language))
	if lang != Hindi && lang != English {
		return Template{}, false
	}
	aud := Other
	if strings.EqualFold(audience, string(Self)) || strings.EqualFold(audience, "forMe") {
		aud = Self
	}
	return Template{
		Key: Key{
			Occasion: Occasion(strings.ToUpper(occasion)),
			Audience: aud,
			Index:    idx,
			Language: lang,
		},
		Text: text,
	}, true
}
