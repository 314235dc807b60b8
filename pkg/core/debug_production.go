//go:build production

package core

// DescriptiveAnchors controls how mounting point anchors are rendered.
const DescriptiveAnchors = false
