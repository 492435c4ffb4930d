// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

// Walk traverses the tree rooted at n in depth-first preorder,
// calling visit for each node. If visit returns false, the node's
// children are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	switch x := n.(type) {
	case *Root:
		walkList(x.Children, visit)
	case *Emphasis:
		walkList(x.Children, visit)
	case *BlockQuote:
		walkList(x.Children, visit)
	case *Heading:
		walkList(x.Children, visit)
	case *Subtext:
		walkList(x.Children, visit)
	case *List:
		for _, item := range x.Items {
			walkList(item, visit)
		}
	case *Link:
		walkList(x.Label, visit)
	}
}

func walkList(nodes []Node, visit func(Node) bool) {
	for _, c := range nodes {
		Walk(c, visit)
	}
}

// Transform rebuilds the tree rooted at n, calling rewrite on every
// node after its children have been rebuilt. Nodes and subtrees that
// come back unchanged are kept by reference, so untouched parts of
// the result are shared with the original tree.
func Transform(n Node, rewrite func(Node) Node) Node {
	switch x := n.(type) {
	case *Root:
		if c, changed := transformList(x.Children, rewrite); changed {
			n = &Root{Children: c}
		}
	case *Emphasis:
		if c, changed := transformList(x.Children, rewrite); changed {
			n = &Emphasis{Kind: x.Kind, Children: c}
		}
	case *BlockQuote:
		if c, changed := transformList(x.Children, rewrite); changed {
			n = &BlockQuote{Children: c}
		}
	case *Heading:
		if c, changed := transformList(x.Children, rewrite); changed {
			n = &Heading{Level: x.Level, Children: c}
		}
	case *Subtext:
		if c, changed := transformList(x.Children, rewrite); changed {
			n = &Subtext{Children: c}
		}
	case *List:
		var items [][]Node
		for i, item := range x.Items {
			c, changed := transformList(item, rewrite)
			if items == nil && changed {
				items = make([][]Node, i, len(x.Items))
				copy(items, x.Items[:i])
			}
			if items != nil {
				items = append(items, c)
			}
		}
		if items != nil {
			n = &List{Ordered: x.Ordered, Start: x.Start, Items: items}
		}
	case *Link:
		if c, changed := transformList(x.Label, rewrite); changed {
			n = &Link{Label: c, Target: x.Target}
		}
	}
	return rewrite(n)
}

func transformList(nodes []Node, rewrite func(Node) Node) ([]Node, bool) {
	var out []Node
	for i, c := range nodes {
		nc := Transform(c, rewrite)
		if out == nil && nc != c {
			out = make([]Node, i, len(nodes))
			copy(out, nodes[:i])
		}
		if out != nil {
			out = append(out, nc)
		}
	}
	if out == nil {
		return nodes, false
	}
	return out, true
}
