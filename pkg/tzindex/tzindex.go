package tzindex

import (
	"bufio"
	"bytes"
	_ "embed"
	"slices"
	"strings"
	"sync"
)

//go:embed zone.tab
var zoneTab []byte

var (
	once  sync.Once
	index map[string][]string
)

// Lookup returns the time zones of the given country code.
// The code is matched case-insensitively. The returned slice is a copy and
// may be modified by the caller.
func Lookup(code string) []string {
	once.Do(func() {
		index = parse(zoneTab)
	})

	zones, ok := index[strings.ToUpper(code)]
	if !ok {
		return []string{}
	}
	return slices.Clone(zones)
}

// Countries returns all country codes known to the index, sorted.
func Countries() []string {
	once.Do(func() {
		index = parse(zoneTab)
	})

	codes := make([]string, 0, len(index))
	for code := range index {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// parse reads zone.tab rows: country code, coordinates, zone name, comment.
func parse(data []byte) map[string][]string {
	result := make(map[string][]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 || len(fields[0]) != 2 {
			continue
		}

		code := fields[0]
		result[code] = append(result[code], fields[2])
	}

	for code := range result {
		slices.Sort(result[code])
	}

	return result
}
