package dispatcher

import "sync"

// Kind is the display mode of the answer region
type Kind int

const (
	KindEmpty Kind = iota
	KindLoading
	KindAnswer
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLoading:
		return "loading"
	case KindAnswer:
		return "answer"
	case KindError:
		return "error"
	}
	return "unknown"
}

// View is the full content of the answer region.
// Content is an HTML fragment and is "" for KindEmpty.
type View struct {
	Kind    Kind
	Content string
}

// Empty reports whether the region holds no rendered content
func (v View) Empty() bool {
	return v.Content == ""
}

// MemoryRegion is a Region that keeps the current view in memory.
// Hosts render from Current.
type MemoryRegion struct {
	mu   sync.Mutex
	view View
}

// NewMemoryRegion creates an empty region
func NewMemoryRegion() *MemoryRegion {
	return &MemoryRegion{}
}

func (r *MemoryRegion) Show(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = v
}

func (r *MemoryRegion) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}
