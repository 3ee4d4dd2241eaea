package gazescreens

var (
	Debug    = false // set to true for verbose debug output
	Parallel = false // set to true to evaluate candidate screens concurrently in each query
	STL      = false // set to true to always export screen meshes as STL
)
