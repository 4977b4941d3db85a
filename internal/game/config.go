package game

// Config holds game configuration options.
type Config struct {
	// Size is the side length of the square maze.
	Size int
	// Seed for the maze generator. A seed of 0 means a random seed will be generated.
	Seed int64
}
