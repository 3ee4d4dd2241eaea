package gazescreens

const (
	DefaultConfig = "scenes/config.json"
	STLOut        = "screens.stl"
	STLCells      = 32 // grid cells per screen side when tessellating for STL
	// tolerance for pixel bounds checks; rays aimed exactly at an edge must still land
	edgeEps = 1e-9
)
