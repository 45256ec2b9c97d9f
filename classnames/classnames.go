// Package classnames composes CSS class strings from loosely typed inputs and
// resolves Tailwind utility conflicts so the last conflicting class wins.
package classnames

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// CN flattens inputs the way Join does, then resolves Tailwind conflicts:
// CN("p-2 p-4") == "p-4". Surviving classes keep the position of their last
// occurrence in the flattened input.
func CN(inputs ...any) string {
	joined := Join(inputs...)
	if joined == "" {
		return ""
	}
	return inputOrder(strings.Fields(joined), strings.Fields(twmerge.Merge(joined)))
}

// inputOrder sorts the merged classes by where each last appeared in tokens.
// twmerge does not preserve input order.
func inputOrder(tokens, merged []string) string {
	last := make(map[string]int, len(tokens))
	for i, token := range tokens {
		last[token] = i
	}

	seen := make(map[string]bool, len(merged))
	survivors := make([]string, 0, len(merged))
	for _, class := range merged {
		if seen[class] {
			continue
		}
		seen[class] = true
		survivors = append(survivors, class)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return position(last, survivors[i], len(tokens)) < position(last, survivors[j], len(tokens))
	})
	return strings.Join(survivors, " ")
}

func position(last map[string]int, class string, fallback int) int {
	if i, ok := last[class]; ok {
		return i
	}
	return fallback
}

// Join flattens strings, nested slices and conditional maps into one
// space-separated class string. Falsy inputs (false, nil, "", 0) are skipped.
// Map keys are emitted in sorted order when their value is truthy.
func Join(inputs ...any) string {
	var tokens []string
	for _, in := range inputs {
		tokens = appendTokens(tokens, in)
	}
	return strings.Join(tokens, " ")
}

func appendTokens(tokens []string, in any) []string {
	switch v := in.(type) {
	case nil:
		return tokens
	case string:
		return append(tokens, strings.Fields(v)...)
	case bool:
		return tokens
	case int:
		return appendNumber(tokens, int64(v))
	case int64:
		return appendNumber(tokens, v)
	case float64:
		if v == 0 {
			return tokens
		}
		return append(tokens, strconv.FormatFloat(v, 'f', -1, 64))
	case []string:
		for _, s := range v {
			tokens = appendTokens(tokens, s)
		}
		return tokens
	case []any:
		for _, item := range v {
			tokens = appendTokens(tokens, item)
		}
		return tokens
	case map[string]bool:
		for _, key := range sortedKeys(v) {
			if v[key] {
				tokens = appendTokens(tokens, key)
			}
		}
		return tokens
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if truthy(v[key]) {
				tokens = appendTokens(tokens, key)
			}
		}
		return tokens
	case fmt.Stringer:
		return appendTokens(tokens, v.String())
	default:
		return tokens
	}
}

func appendNumber(tokens []string, n int64) []string {
	if n == 0 {
		return tokens
	}
	return append(tokens, strconv.FormatInt(n, 10))
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
