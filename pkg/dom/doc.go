// Package dom provides read-only primitives over parsed golang.org/x/net/html
// trees: attribute and text extraction, pre-order traversal, id lookup, CSS
// selector matching, container validation, and diagnostic snapshot rendering.
// Every query family is built on these helpers; nothing in this package ever
// mutates a node.
package dom
