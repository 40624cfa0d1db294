package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Particle Field"
	TicksPerSec  = 60

	VisualRingSize = 8192

	// Field parameters
	ParticleCount       = 50
	NarrowParticleCount = 40
	NarrowBreakpoint    = 768
	ConnectionDistance  = 150
	MouseDistance       = 150
	ParticleSpeed       = 0.2
	ParticleSize        = 2
	Repulsion           = 0.05
	ParticleAlpha       = 0.5
	LineWidth           = 1
	LineOpacity         = 0.2

	ThemeStep = 5
)

// DefaultConfig returns a Config populated with the stock values.
func DefaultConfig() *Config {
	return &Config{
		Title:               WindowTitle,
		WindowWidth:         WindowWidth,
		WindowHeight:        WindowHeight,
		TPS:                 TicksPerSec,
		ParticleCount:       ParticleCount,
		NarrowParticleCount: NarrowParticleCount,
		NarrowBreakpoint:    NarrowBreakpoint,
		ConnectionDistance:  ConnectionDistance,
		MouseDistance:       MouseDistance,
		ParticleSpeed:       ParticleSpeed,
		ParticleSize:        ParticleSize,
		Repulsion:           Repulsion,
		ParticleAlpha:       ParticleAlpha,
		LineWidth:           LineWidth,
		LineOpacity:         LineOpacity,
		ThemeStep:           ThemeStep,
		ShowHUD:             false,
		RingSize:            VisualRingSize,
	}
}
