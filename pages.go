package camelot

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultPageSpec selects only the first page and is guaranteed to resolve
// without opening the document.
const DefaultPageSpec = "1"

// ResolvePages parses a comma-separated page-selection expression into a
// sorted, deduplicated list of 1-based page numbers.
//
// Each token is a single integer, a "start-end" range, or a range whose end
// is the literal "end" meaning the document's last page. The literal "all"
// selects every page. The pageCount provider is consulted lazily: the
// literal default spec "1" resolves without it, so a document that may
// require authentication is never opened just to read its first page.
//
// Malformed tokens and inverted ranges (start > end after substitution)
// fail with EINVALID.
func ResolvePages(spec string, pageCount func() (int, error)) ([]int, error) {
	if spec == "" {
		spec = DefaultPageSpec
	}

	type pageRange struct {
		start, end int
	}
	var ranges []pageRange

	switch spec {
	case DefaultPageSpec:
		ranges = append(ranges, pageRange{1, 1})
	case "all":
		n, err := pageCount()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, pageRange{1, n})
	default:
		for _, token := range strings.Split(spec, ",") {
			token = strings.TrimSpace(token)
			if before, after, ok := strings.Cut(token, "-"); ok {
				start, err := strconv.Atoi(strings.TrimSpace(before))
				if err != nil {
					return nil, Errorf(EINVALID, "malformed page range %q", token)
				}
				var end int
				if strings.TrimSpace(after) == "end" {
					if end, err = pageCount(); err != nil {
						return nil, err
					}
				} else if end, err = strconv.Atoi(strings.TrimSpace(after)); err != nil {
					return nil, Errorf(EINVALID, "malformed page range %q", token)
				}
				if start < 1 || start > end {
					return nil, Errorf(EINVALID, "invalid page range %q: start > end", token)
				}
				ranges = append(ranges, pageRange{start, end})
			} else {
				n, err := strconv.Atoi(token)
				if err != nil {
					return nil, Errorf(EINVALID, "malformed page number %q", token)
				}
				if n < 1 {
					return nil, Errorf(EINVALID, "invalid page number %d", n)
				}
				ranges = append(ranges, pageRange{n, n})
			}
		}
	}

	seen := make(map[int]struct{})
	var pages []int
	for _, r := range ranges {
		for p := r.start; p <= r.end; p++ {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages, nil
}
