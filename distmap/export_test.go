package distmap

// Partition exposes partition as [lo, hi) pairs.
func Partition(rows, workers int) [][2]int {
	spans := partition(rows, workers)
	out := make([][2]int, len(spans))
	for i, s := range spans {
		out[i] = [2]int{s.lo, s.hi}
	}

	return out
}

// WithRowHook installs a callback run before every row is computed.
func WithRowHook(f func(row int)) Option {
	return func(o *Options) {
		o.rowHook = f
	}
}
