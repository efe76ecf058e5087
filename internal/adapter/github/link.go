package github

import (
	"net/url"
	"strconv"
	"strings"
)

// lastPage returns page number from rel="last" entry of Link header.
//
//	Link: <https://api.github.com/repositories/1/commits?per_page=1&page=2>; rel="next",
//	      <https://api.github.com/repositories/1/commits?per_page=1&page=250>; rel="last"
func lastPage(header string) (int, bool) {
	for _, link := range strings.Split(header, ",") {
		segments := strings.Split(strings.TrimSpace(link), ";")
		if len(segments) < 2 {
			continue
		}

		rawURL := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(rawURL, "<") || !strings.HasSuffix(rawURL, ">") {
			continue
		}

		isLast := false
		for _, param := range segments[1:] {
			if strings.TrimSpace(param) == `rel="last"` {
				isLast = true
				break
			}
		}
		if !isLast {
			continue
		}

		u, err := url.Parse(rawURL[1 : len(rawURL)-1])
		if err != nil {
			return 0, false
		}
		page, err := strconv.Atoi(u.Query().Get("page"))
		if err != nil || page < 1 {
			return 0, false
		}
		return page, true
	}

	return 0, false
}
