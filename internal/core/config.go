package core

// RuntimeConfig contains configuration passed to drivers at startup.
// Drivers use this to size the display and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display frames per second
	Seed     int64 // RNG seed for deterministic gameplay; 0 picks one from the clock
}
