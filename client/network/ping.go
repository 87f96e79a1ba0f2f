package network

import (
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"time"
)

// maxRecentRTTs is the number of round trips averaged into the ping.
const maxRecentRTTs = 10

// pingTracker keeps the last round trip times and averages them without outliers.
type pingTracker struct {
	mu         sync.Mutex
	recentRTTs []int64
	ping       float64
}

// encodePingPayload writes the send time of a ping. The server echoes it back.
func encodePingPayload(t time.Time) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.UnixMilli()))
	return b
}

func decodePingPayload(b []byte) (time.Time, error) {
	if len(b) != 8 {
		return time.Time{}, fmt.Errorf("invalid ping payload length %d", len(b))
	}
	return time.UnixMilli(int64(binary.BigEndian.Uint64(b))), nil
}

// record adds a round trip and returns the new average ping in milliseconds.
func (p *pingTracker) record(rtt int64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.recentRTTs = append(p.recentRTTs, rtt)
	for len(p.recentRTTs) > maxRecentRTTs {
		p.recentRTTs = p.recentRTTs[1:]
	}

	sampleRTTs := removeOutlierRTTs(p.recentRTTs)
	ping := 0.0
	for _, rtt := range sampleRTTs {
		ping += float64(rtt)
	}
	if len(sampleRTTs) > 0 {
		ping /= float64(len(sampleRTTs))
	}
	p.ping = ping
	return ping
}

func (p *pingTracker) get() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ping
}

func (p *pingTracker) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recentRTTs = nil
	p.ping = 0
}

// removeOutlierRTTs drops round trips above twice the median that are also above 20ms.
func removeOutlierRTTs(recentRTTs []int64) []int64 {
	result := make([]int64, 0, len(recentRTTs))
	median := medianRTT(recentRTTs)
	for _, rtt := range recentRTTs {
		if rtt > 2*median && rtt > 20 {
			continue
		}
		result = append(result, rtt)
	}
	return result
}

func medianRTT(recentRTTs []int64) int64 {
	if len(recentRTTs) == 0 {
		return 0
	}
	sorted := make([]int64, len(recentRTTs))
	copy(sorted, recentRTTs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
