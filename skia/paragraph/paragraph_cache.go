package paragraph

// ParagraphCache is the layout cache handle held by FontCollection. It
// stores no layout results, and none of its methods has any effect.
//
// Ported from: skia-source/modules/skparagraph/include/ParagraphCache.h
type ParagraphCache struct {
	// TODO: Implement cache logic
}

// NewParagraphCache creates a new ParagraphCache.
func NewParagraphCache() *ParagraphCache {
	return &ParagraphCache{}
}

// Reset has no effect; the cache holds no entries.
func (p *ParagraphCache) Reset() {
	// TODO: Clear cache
}

// PrintStatistics prints nothing.
func (p *ParagraphCache) PrintStatistics() {
	// TODO: Print stats
}

// TurnOn has no effect; nothing is cached either way.
func (p *ParagraphCache) TurnOn() {
	// TODO: Enable cache
}

// TurnOff has no effect; nothing is cached either way.
func (p *ParagraphCache) TurnOff() {
	// TODO: Disable cache
}
