package mot

// confidenceItem is one frame detection queued for matching, keyed by its
// confidence score and its position in the input slice.
type confidenceItem struct {
	index int
	score float64
}

// Copied from container/heap - https://golang.org/pkg/container/heap/
// Why make copy? Just want to avoid type conversion

// confidenceHeap is a max-heap over detections: highest confidence first,
// ties resolved by input order so ordering is stable and deterministic.
type confidenceHeap []confidenceItem

func (h confidenceHeap) Len() int { return len(h) }
func (h confidenceHeap) Less(i, j int) bool {
	if h[i].score == h[j].score {
		return h[i].index < h[j].index
	}
	return h[i].score > h[j].score
}
func (h confidenceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *confidenceHeap) Push(x confidenceItem) {
	*h = append(*h, x)
	h.up(h.Len() - 1)
}

// Pop removes and returns the best element (according to Less) from the heap.
// The complexity is O(log n) where n = h.Len().
func (h *confidenceHeap) Pop() confidenceItem {
	n := h.Len() - 1
	h.Swap(0, n)
	h.down(0, n)
	heapSize := len(*h)
	lastNode := (*h)[heapSize-1]
	*h = (*h)[0 : heapSize-1]
	return lastNode
}

func (h confidenceHeap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func (h confidenceHeap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}

// orderByConfidence returns indices into detections sorted by descending
// confidence, stable with respect to input order.
func orderByConfidence(detections []Detection) []int {
	pq := make(confidenceHeap, 0, len(detections))
	for i := range detections {
		pq.Push(confidenceItem{index: i, score: detections[i].Score})
	}
	ordered := make([]int, 0, len(detections))
	for pq.Len() > 0 {
		ordered = append(ordered, pq.Pop().index)
	}
	return ordered
}
