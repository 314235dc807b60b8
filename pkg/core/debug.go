//go:build !production

package core

// DescriptiveAnchors controls how mounting point anchors are rendered.
// Development builds render a comment naming the mounting point so it can be
// spotted in tree dumps. Build with -tags production for empty text anchors.
const DescriptiveAnchors = true
