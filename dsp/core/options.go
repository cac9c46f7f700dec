package core

// StreamConfig carries the settings shared by signal generation and
// block-based measurement.
type StreamConfig struct {
	SampleRate float64
	BlockSize  int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// NewStreamConfig applies options on top of the defaults (48 kHz sample
// rate, 1024-sample blocks). Nil options are skipped.
func NewStreamConfig(opts ...StreamOption) StreamConfig {
	cfg := StreamConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSampleRate sets the stream sample rate in Hz. Non-positive rates are
// ignored.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size in samples. Non-positive
// sizes are ignored.
func WithBlockSize(blockSize int) StreamOption {
	return func(cfg *StreamConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}
