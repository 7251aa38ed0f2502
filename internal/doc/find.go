package doc

import "strings"

// FindNodesByName searches nodes recursively for a dotted-path name query.
// A plain name matches any node at any depth; `a.b` matches a member `b`
// inside a container named `a`, anchored at any depth.
func FindNodesByName(nodes []Node, query string) []Node {
	return findNodes(nodes, strings.Split(query, "."))
}

func findNodes(nodes []Node, parts []string) []Node {
	var found []Node
	for _, n := range nodes {
		if n.Name == parts[0] {
			if len(parts) == 1 {
				found = append(found, n)
				continue
			}
			found = append(found, findNodes(n.Children, parts[1:])...)
			continue
		}
		found = append(found, findNodes(n.Children, parts)...)
	}
	return found
}
