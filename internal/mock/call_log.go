package mock

import (
	"fmt"
	"sync"

	"github.com/fhuszti/videotube-ms-go/internal/usecase"
)

// CallLog records calls across several mocks, to assert their order.
type CallLog struct {
	mu    sync.Mutex
	Calls []string
}

func (l *CallLog) Record(call string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = append(l.Calls, call)
}

// Index returns the position of the first call named call, or -1.
func (l *CallLog) Index(call string) int {
	if l == nil {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, c := range l.Calls {
		if c == call {
			return i
		}
	}
	return -1
}

func notFound(resource string) error {
	return fmt.Errorf("%w: %s does not exist", usecase.ErrNotFound, resource)
}
