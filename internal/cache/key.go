package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/dshills/filesearch-mcp/pkg/types"
)

// Key computes the canonical cache key for a query and its options.
//
// The key covers only fields that change the result set: query text,
// strategy, file types, max results, case sensitivity, minimum score,
// and excluded directories. Presentation-only fields (IncludeContent)
// are deliberately omitted. Slice-valued fields are sorted so option
// values that differ only in array order address the same entry.
func Key(query string, opts types.SearchOptions) [32]byte {
	var data strings.Builder
	data.WriteString(query)
	data.WriteString("|")
	data.WriteString(string(opts.Strategy))
	data.WriteString("|")
	data.WriteString(strings.Join(opts.SortedFileTypes(), ","))
	data.WriteString("|")
	fmt.Fprintf(&data, "%d", opts.MaxResults)
	data.WriteString("|")
	fmt.Fprintf(&data, "%t", opts.CaseSensitive)
	data.WriteString("|")
	fmt.Fprintf(&data, "%.2f", opts.MinScore)
	data.WriteString("|")
	data.WriteString(strings.Join(opts.SortedExcludeDirs(), ","))

	return sha256.Sum256([]byte(data.String()))
}
