// Package aria supplies the default accessibility collaborators consumed by
// the role query family and the suggestion engine: an implicit role table
// keyed by tag (and input type), a simplified accessible-name computation,
// and label-text resolution for a single control. Callers with a full
// accessibility-tree implementation can swap these out through query.Config.
package aria
