package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
)

func getColumnValue(row []string, colMap map[string]int, key string) string {
	if idx, exists := colMap[key]; exists && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func buildColumnMap(headers []string) map[string]int {
	colMap := make(map[string]int)
	for i, header := range headers {
		key := strings.ToLower(strings.TrimSpace(header))
		colMap[key] = i
	}
	return colMap
}

func splitSheet(rows [][]string) (header []string, data [][]string) {
	if len(rows) == 0 {
		return []string{}, [][]string{}
	}
	return rows[0], rows[1:]
}

// cleanNumericString drops thousands separators and blanks.
func cleanNumericString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' {
			return -1
		}
		return r
	}, s)
}

// parseDimension reads a cell as a metre value. Empty cells are zero.
func parseDimension(s string) (float64, error) {
	s = cleanNumericString(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseFloatPtr(s string) (*float64, error) {
	s = cleanNumericString(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}

func parseIntPtr(s string) (*int, error) {
	f, err := parseFloatPtr(s)
	if err != nil || f == nil {
		return nil, err
	}
	v := int(*f)
	if float64(v) != *f {
		return nil, fmt.Errorf("invalid whole number %q", s)
	}
	return &v, nil
}
