package uart

// Fifo is a fixed capacity circular byte queue.
// It is not safe for concurrent use; Port serialises access to its Fifo.
type Fifo struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

// Rewind empties the queue and reallocates the buffer at Capacity.
func (ff *Fifo) Rewind() {
	ff.ReadIndex = 0
	ff.WriteIndex = 0
	ff.Size = 0
	ff.Data = make([]byte, ff.Capacity)
}

// Push appends ch. Returns ErrChannelFull if the queue is at capacity, in
// which case ch is discarded.
func (ff *Fifo) Push(ch byte) (err error) {
	if ff.Size >= ff.Capacity || len(ff.Data) < ff.Capacity {
		err = ErrChannelFull
		return
	}

	ff.Data[ff.WriteIndex] = ch

	ff.WriteIndex++
	if ff.WriteIndex == ff.Capacity {
		ff.WriteIndex = 0
	}
	ff.Size++

	return
}

// Pop removes and returns the oldest byte.
func (ff *Fifo) Pop() (ch byte, ok bool) {
	if ff.Size == 0 {
		return
	}

	ch = ff.Data[ff.ReadIndex]
	ok = true

	ff.ReadIndex++
	if ff.ReadIndex == ff.Capacity {
		ff.ReadIndex = 0
	}
	ff.Size--

	return
}
