package constant

// Intent Queue Constants
const (
	// IntentQueueSize is the ring buffer capacity, must be a power of 2
	IntentQueueSize = 256

	// IntentBufferMask is used for fast modulo on ring buffer indices
	IntentBufferMask = IntentQueueSize - 1
)
