package monitor

type errExceededMaxLatency struct{}

func (e errExceededMaxLatency) Error() string {
	return "probe: exceeded max latency"
}
