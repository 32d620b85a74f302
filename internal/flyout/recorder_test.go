package flyout

import (
	"sync"

	"github.com/ytget/storefront/internal/model"
)

// recorder is a Renderer that keeps every frame and the set of live clones
type recorder struct {
	mu      sync.Mutex
	frames  []Frame
	clears  []int
	clones  map[int]Frame
	maxLive int
}

func newRecorder() *recorder {
	return &recorder{clones: make(map[int]Frame)}
}

func (r *recorder) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	r.clones[f.Index] = f
	if len(r.clones) > r.maxLive {
		r.maxLive = len(r.clones)
	}
}

func (r *recorder) Clear(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears = append(r.clears, index)
	delete(r.clones, index)
}

func (r *recorder) live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clones)
}

func (r *recorder) last() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

func testItem(id string) model.CartLineItem {
	return model.CartLineItem{ID: id, Name: "product " + id, Images: []string{id + ".jpg"}}
}
