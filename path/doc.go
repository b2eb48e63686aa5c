// Package path rebuilds a start→finish route from search backlinks.
//
// Reconstruct walks Previous links from the finish back to the start and
// reverses the walk. A finish with no backlink (other than the start itself)
// yields an empty path: "no path" is a normal result, not an error.
//
// Any search result exposing Previous satisfies Backlinks, so alternative
// search algorithms plug in without changes here.
package path
