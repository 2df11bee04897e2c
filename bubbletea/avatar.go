package bubbletea

import (
	"strings"

	"github.com/rivo/uniseg"
)

// initial returns the first user-perceived character of the author label,
// upper-cased, so flags and combined emoji stay intact.
func initial(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return "?"
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(author, -1)
	return strings.ToUpper(cluster)
}

// avatar renders the author's initial inside the themed rounded frame.
func (s Styles) avatar(author string) string {
	return s.Avatar.Render(initial(author))
}
